package controllers

import (
	"net/http"

	"github.com/hurricanehousing/hhh-backend/api/responses"
	pkgerrors "github.com/hurricanehousing/hhh-backend/pkg/errors"
	"github.com/hurricanehousing/hhh-backend/pkg/logger"
)

func writeServiceUnavailable(w http.ResponseWriter, r *http.Request, logg *logger.Logger, name string) {
	responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, name+" service unavailable"))
}
