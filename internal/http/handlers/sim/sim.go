// Package sim contains the HTTP handlers for SIM detail records.
//
// Handlers are built by factory functions that receive their dependencies
// once at startup and return the http.HandlerFunc the router calls on every
// request:
//
//	r.Post("/api/validate-sim", sim.New(store, validate))
package sim

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
	msgInserted      = "Sim detail inserted successfully."
	msgListed        = "SIM details retrieved successfully"
	errFieldsMissing = "All fields are required."
	errInsertFailed  = "Failed to insert sim detail."
	errNoneFound     = "No SIM details found"
	errInternal      = "Internal server error"
)

// New handles POST /api/validate-sim.
//
// Request body:
//
//	{ "service_number": "0712345678", "sim_number": "8925...", "sim_status": "active" }
//
// Responses:
//
//	201 { "message": ..., "data": <inserted row> }
//	400 { "error": "All fields are required." }
//	500 { "error": "Failed to insert sim detail.", "details": <store error> }
//
// The 500 body echoes the store error text. That leaks backend detail and
// is a known hardening gap; clients currently read "details".
func New(store storage.Storage, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sim types.SimDetail
		if err := request.DecodeJSON(w, r, &sim); err != nil {
			slog.Debug("rejecting sim detail", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusBadRequest, response.Fail(request.ErrInvalidBody.Error()))
			return
		}

		if err := validate.Struct(sim); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.Fail(errFieldsMissing))
			return
		}

		row, err := store.InsertSimDetail(r.Context(), sim)
		if err != nil {
			slog.Error("insert error", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.FailWithDetails(errInsertFailed, err))
			return
		}

		slog.Info("sim detail inserted", slog.String("sim_number", sim.SimNumber.String()))
		response.WriteJSON(w, http.StatusCreated, response.Success(msgInserted, "data", row))
	}
}

// GetList handles GET /api/sim-details.
//
// An empty table is reported as 404 rather than an empty 200 list. Callers
// branch on that status today, so keep it until product confirms otherwise.
func GetList(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := store.ListSimDetails(r.Context())
		if err != nil {
			slog.Error("error retrieving sim details", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.Fail(errInternal))
			return
		}

		if len(rows) == 0 {
			response.WriteJSON(w, http.StatusNotFound, response.Fail(errNoneFound))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.Success(msgListed, "simDetails", rows))
	}
}
