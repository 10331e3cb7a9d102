package validators

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	pkgerrors "github.com/hurricanehousing/hhh-backend/pkg/errors"
)

// QueryString returns the trimmed query parameter, cut to maxLen bytes.
func QueryString(r *http.Request, key string, maxLen int) string {
	return SanitizeString(r.URL.Query().Get(key), maxLen)
}

// RequiredURLParam reads a chi route parameter and rejects blanks. chi matches
// on the escaped path, so the value is unescaped here.
func RequiredURLParam(r *http.Request, key string, maxLen int) (string, error) {
	raw, err := url.PathUnescape(chi.URLParam(r, key))
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "path parameter is malformed").WithDetails(map[string]any{"field": key})
	}
	value := SanitizeString(raw, maxLen)
	if value == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "path parameter is required").WithDetails(map[string]any{"field": key})
	}
	return value, nil
}
