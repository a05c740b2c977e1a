// Package otp contains the one-time-passcode lookup handler.
package otp

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/sim-verify/internal/storage"
	"github.com/aanand-mishra/sim-verify/internal/types"
	"github.com/aanand-mishra/sim-verify/internal/utils/request"
	"github.com/aanand-mishra/sim-verify/internal/utils/response"
)

const (
	msgValidated  = "OTP validated successfully"
	errOtpMissing = "OTP is required"
	errInvalidOtp = "Invalid OTP"
	errInternal   = "Internal server error"
)

// Validate handles POST /api/validate-otp.
//
// Validation is a plain lookup: no expiry, no consumption, no attempt
// counting. Submitting the same OTP twice gives the same answer twice.
func Validate(store storage.Storage, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.OtpDetail
		if err := request.DecodeJSON(w, r, &req); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.Fail(request.ErrInvalidBody.Error()))
			return
		}

		if err := validate.Struct(req); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.Fail(errOtpMissing))
			return
		}

		rows, err := store.FindOtp(r.Context(), req.Otp.String())
		if err != nil {
			slog.Error("error validating otp", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.Fail(errInternal))
			return
		}

		if len(rows) == 0 {
			response.WriteJSON(w, http.StatusNotFound, response.Fail(errInvalidOtp))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.Success(msgValidated, "otpDetails", rows[0]))
	}
}
