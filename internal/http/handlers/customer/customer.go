// Package customer contains the handler that checks a customer's identity
// against the stored CustomerIdentity records.
package customer

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/sim-verify/internal/storage"
	"github.com/aanand-mishra/sim-verify/internal/types"
	"github.com/aanand-mishra/sim-verify/internal/utils/request"
	"github.com/aanand-mishra/sim-verify/internal/utils/response"
	"github.com/aanand-mishra/sim-verify/internal/validation"
)

// Client-facing messages. The wording (including the spacing) is matched
// by existing onboarding clients.
const (
	msgValidated     = "Customer validated successfully"
	errFieldsMissing = "Email adress and Date of birth  value is required"
	errBadDate       = "Invalid date of birth format. Expected yyyy-mm-dd"
	errBadEmail      = "Invalid email"
	errNotFound      = "Invalid customer,this customer does not exist "
	errInternal      = "Internal server error"
)

// Validate handles POST /api/validate-customer.
//
// Checks run in order and the first failure wins: both fields present,
// date of birth shaped YYYY-MM-DD, email shaped local@domain.ext. Only then
// is the store queried, matching on both fields together.
//
//	200 { "message": ..., "customer": <first matching row> }
//	400 { "error": <which check failed> }
//	404 { "error": "Invalid customer,..." }
//	500 { "error": "Internal server error" }
func Validate(store storage.Storage, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.CustomerIdentity
		if err := request.DecodeJSON(w, r, &req); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.Fail(request.ErrInvalidBody.Error()))
			return
		}

		if err := validate.Struct(req); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.Fail(errFieldsMissing))
			return
		}

		if err := validate.Var(req.DateOfBirth.String(), validation.TagDateOnly); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.Fail(errBadDate))
			return
		}

		if err := validate.Var(req.EmailAddress.String(), validation.TagEmailShape); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.Fail(errBadEmail))
			return
		}

		rows, err := store.FindCustomer(r.Context(), req.EmailAddress.String(), req.DateOfBirth.String())
		if err != nil {
			slog.Error("error validating customer", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.Fail(errInternal))
			return
		}

		if len(rows) == 0 {
			response.WriteJSON(w, http.StatusNotFound, response.Fail(errNotFound))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.Success(msgValidated, "customer", rows[0]))
	}
}
