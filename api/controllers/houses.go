package controllers

import (
	"net/http"

	"github.com/hurricanehousing/hhh-backend/api/responses"
	"github.com/hurricanehousing/hhh-backend/api/validators"
	"github.com/hurricanehousing/hhh-backend/internal/houses"
	"github.com/hurricanehousing/hhh-backend/pkg/logger"
)

type currentAddressRequest struct {
	HouseID  *int64 `json:"houseId" validate:"omitempty,gt=0"`
	RefugeAt *int64 `json:"refugeAt" validate:"omitempty,gt=0"`
}

// AvailableHouses lists houses that are still standing.
func AvailableHouses(svc houses.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			writeServiceUnavailable(w, r, logg, "house")
			return
		}

		list, err := svc.ListAvailable(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// CurrentAddress resolves where a member is currently sheltered and answers
// with the human-readable message.
func CurrentAddress(svc houses.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			writeServiceUnavailable(w, r, logg, "house")
			return
		}

		var body currentAddressRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resolved, err := svc.ResolveCurrentAddress(r.Context(), body.HouseID, body.RefugeAt)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteText(w, http.StatusOK, resolved.Message)
	}
}
