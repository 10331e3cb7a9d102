package controllers

import (
	"net/http"

	"github.com/hurricanehousing/hhh-backend/api/responses"
	"github.com/hurricanehousing/hhh-backend/api/validators"
	"github.com/hurricanehousing/hhh-backend/internal/members"
	pkgerrors "github.com/hurricanehousing/hhh-backend/pkg/errors"
	"github.com/hurricanehousing/hhh-backend/pkg/logger"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=128"`
}

type loginResponse struct {
	Success bool               `json:"success"`
	User    *members.MemberDTO `json:"user,omitempty"`
}

// Login checks credentials. Credential failures answer 401 with
// {"success": false}; other failures use the error envelope.
func Login(svc members.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			writeServiceUnavailable(w, r, logg, "member")
			return
		}

		var body loginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.Login(r.Context(), body.Email, body.Password)
		if err != nil {
			if pkgerrors.CodeOf(err) == pkgerrors.CodeUnauthorized {
				responses.WriteJSON(w, http.StatusUnauthorized, loginResponse{Success: false})
				return
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, loginResponse{Success: true, User: user})
	}
}
