// Package health exposes a readiness probe backed by a store ping.
package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/sim-verify/internal/utils/response"
)

// Pinger is satisfied by storage.Storage.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Check handles GET /healthz.
func Check(p Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := p.Ping(r.Context()); err != nil {
			slog.Warn("health check failed", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		response.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
