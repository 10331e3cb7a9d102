package controllers

import (
	"net/http"

	"github.com/hurricanehousing/hhh-backend/api/responses"
	"github.com/hurricanehousing/hhh-backend/api/validators"
	"github.com/hurricanehousing/hhh-backend/internal/pairings"
	"github.com/hurricanehousing/hhh-backend/pkg/logger"
)

const (
	maxSearchLength = 100
	maxStatusLength = 200
)

type selectHouseRequest struct {
	SSN        string `json:"ssn" validate:"required,max=11"`
	HouseID    int64  `json:"houseId" validate:"required,gt=0"`
	FamilySize int    `json:"familySize" validate:"gt=0,lte=100"`
}

// SelectHouse places a refugee family in a host house.
func SelectHouse(svc pairings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			writeServiceUnavailable(w, r, logg, "pairing")
			return
		}

		var body selectHouseRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		pairing, err := svc.SelectHouse(r.Context(), pairings.SelectHouseInput{
			SSN:        body.SSN,
			HouseID:    body.HouseID,
			FamilySize: body.FamilySize,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithField(r.Context(), "house_id", pairing.ShelterID), "pairing.created")
		}
		responses.WriteSuccess(w, pairing)
	}
}

// ShelterPairings reports every member with their derived shelter status.
// Optional query parameters: search and status (comma separated).
func ShelterPairings(svc pairings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			writeServiceUnavailable(w, r, logg, "pairing")
			return
		}

		search := validators.QueryString(r, "search", maxSearchLength)
		status := validators.QueryString(r, "status", maxStatusLength)

		rows, err := svc.Report(r.Context(), search, status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}
