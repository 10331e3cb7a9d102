package middleware

import (
	"fmt"
	"net/http"

	"github.com/hurricanehousing/hhh-backend/api/responses"
	pkgerrors "github.com/hurricanehousing/hhh-backend/pkg/errors"
	"github.com/hurricanehousing/hhh-backend/pkg/logger"
)

func Recoverer(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					err := fmt.Errorf("panic: %v", rec)
					ctx := r.Context()
					if logg != nil {
						ctx = logg.WithFields(ctx, map[string]any{"panic": fmt.Sprint(rec)})
						logg.Error(ctx, "panic.recovered", err)
					}
					// the panic value stays in the logs only
					responses.WriteError(ctx, nil, w, pkgerrors.New(pkgerrors.CodeInternal, "internal server error"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
