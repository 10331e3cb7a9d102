package controllers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/hurricanehousing/hhh-backend/api/responses"
	pkgerrors "github.com/hurricanehousing/hhh-backend/pkg/errors"
	"github.com/hurricanehousing/hhh-backend/pkg/logger"
	"go.uber.org/multierr"
)

const readinessTimeout = 2 * time.Second

// Pinger is a dependency checked by the readiness check.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(env string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-HHH-Env", env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every named dependency; nil entries are skipped.
func HealthReady(env string, logg *logger.Logger, deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-HHH-Env", env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		var errs error
		failing := make([]string, 0)
		for name, dep := range deps {
			if dep == nil {
				continue
			}
			if err := dep.Ping(ctx); err != nil {
				errs = multierr.Append(errs, pkgerrors.Wrap(pkgerrors.CodeDependency, err, name+" unavailable"))
				failing = append(failing, name)
			}
		}

		if errs != nil {
			sort.Strings(failing)
			if logg != nil {
				logg.Error(logg.WithField(r.Context(), "failing", failing), "health.not_ready", errs)
			}
			responses.WriteError(r.Context(), nil, w, pkgerrors.New(pkgerrors.CodeDependency, "service not ready"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
