package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/yourarttoy/arttoy-backend/api/responses"
	"github.com/yourarttoy/arttoy-backend/pkg/config"
	pkgerrors "github.com/yourarttoy/arttoy-backend/pkg/errors"
	"github.com/yourarttoy/arttoy-backend/pkg/logger"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthLive reports process liveness only.
func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{
			"status":      "live",
			"message":     "YourArtToy API is running",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": cfg.App.Env,
		})
	}
}

// HealthReady reports readiness, checking every backing store.
func HealthReady(cfg *config.Config, logg *logger.Logger, deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := map[string]string{"status": "ready", "environment": cfg.App.Env}
		for name, dep := range deps {
			if dep == nil {
				continue
			}
			if err := dep.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, name+" unavailable"))
				return
			}
			status[name] = "ok"
		}
		responses.WriteSuccess(w, status)
	}
}
