// Package router builds the HTTP handler for the whole API.
package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aanand-mishra/sim-verify/internal/http/handlers/customer"
	"github.com/aanand-mishra/sim-verify/internal/http/handlers/health"
	"github.com/aanand-mishra/sim-verify/internal/http/handlers/otp"
	"github.com/aanand-mishra/sim-verify/internal/http/handlers/sim"
	"github.com/aanand-mishra/sim-verify/internal/http/middleware"
	"github.com/aanand-mishra/sim-verify/internal/metrics"
	"github.com/aanand-mishra/sim-verify/internal/storage"
)

// Deps are the long-lived collaborators shared by every handler.
type Deps struct {
	Store    storage.Storage
	Validate *validator.Validate
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

// New wires the route table:
//
//	POST /api/validate-sim       insert a SIM record
//	POST /api/validate-customer  match email + date of birth
//	POST /api/validate-otp       look up an OTP
//	GET  /api/sim-details        list SIM records
//	GET  /healthz                store ping
//	GET  /metrics                Prometheus exposition
func New(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(d.Logger))
	r.Use(chimw.Recoverer)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Metrics(d.Metrics))

		r.Post("/api/validate-sim", sim.New(d.Store, d.Validate))
		r.Post("/api/validate-customer", customer.Validate(d.Store, d.Validate))
		r.Post("/api/validate-otp", otp.Validate(d.Store, d.Validate))
		r.Get("/api/sim-details", sim.GetList(d.Store))
	})

	r.Get("/healthz", health.Check(d.Store))
	r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))

	return r
}
