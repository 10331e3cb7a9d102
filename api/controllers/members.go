package controllers

import (
	"net/http"

	"github.com/hurricanehousing/hhh-backend/api/responses"
	"github.com/hurricanehousing/hhh-backend/api/validators"
	"github.com/hurricanehousing/hhh-backend/internal/members"
	"github.com/hurricanehousing/hhh-backend/pkg/logger"
	"github.com/hurricanehousing/hhh-backend/pkg/types"
)

const maxEmailLength = 254

type addMemberRequest struct {
	FirstName         string           `json:"firstName" validate:"required,max=100"`
	LastName          string           `json:"lastName" validate:"required,max=100"`
	Email             string           `json:"email" validate:"required,email,max=254"`
	Password          string           `json:"password" validate:"required,max=128"`
	SSN               string           `json:"ssn" validate:"required,max=11"`
	DOB               string           `json:"dob" validate:"required,dob"`
	FamilySize        int              `json:"familySize" validate:"gte=0,lte=100"`
	Street            string           `json:"street" validate:"required,max=200"`
	City              string           `json:"city" validate:"required,max=100"`
	State             string           `json:"state" validate:"required,max=50"`
	ZipCode           string           `json:"zipCode" validate:"required,max=10"`
	HouseTotalSpace   int              `json:"houseTotalSpace" validate:"gte=0,lte=1000"`
	IsHeadOfHousehold bool             `json:"isHeadOfHousehold"`
	Dependents        types.Dependents `json:"dependents" validate:"omitempty,max=50,dive"`
}

type updateMemberRequest struct {
	SSN               string           `json:"ssn" validate:"required,max=11"`
	FirstName         string           `json:"firstName" validate:"required,max=100"`
	LastName          string           `json:"lastName" validate:"required,max=100"`
	Email             string           `json:"email" validate:"required,email,max=254"`
	Password          *string          `json:"password" validate:"omitempty,max=128"`
	DOB               string           `json:"dob" validate:"required,dob"`
	FamilySize        int              `json:"familySize" validate:"gte=0,lte=100"`
	Street            string           `json:"street" validate:"required,max=200"`
	City              string           `json:"city" validate:"required,max=100"`
	State             string           `json:"state" validate:"required,max=50"`
	ZipCode           string           `json:"zipCode" validate:"required,max=10"`
	HouseTotalSpace   int              `json:"houseTotalSpace" validate:"gte=0,lte=1000"`
	IsHeadOfHousehold bool             `json:"isHeadOfHousehold"`
	Dependents        types.Dependents `json:"dependents" validate:"omitempty,max=50,dive"`
}

type toggleDisplacedRequest struct {
	SSN         string `json:"ssn" validate:"required,max=11"`
	IsDisplaced *bool  `json:"isDisplaced" validate:"required"`
}

type deleteMemberRequest struct {
	SSN     string `json:"ssn" validate:"required,max=11"`
	HouseID *int64 `json:"houseId" validate:"omitempty,gt=0"`
}

// AddMember registers a member together with their house.
func AddMember(svc members.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			writeServiceUnavailable(w, r, logg, "member")
			return
		}

		var body addMemberRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		member, err := svc.Register(r.Context(), members.RegisterInput{
			FirstName:         body.FirstName,
			LastName:          body.LastName,
			Email:             body.Email,
			Password:          body.Password,
			SSN:               body.SSN,
			DOB:               body.DOB,
			FamilySize:        body.FamilySize,
			Street:            body.Street,
			City:              body.City,
			State:             body.State,
			ZipCode:           body.ZipCode,
			HouseTotalSpace:   body.HouseTotalSpace,
			IsHeadOfHousehold: body.IsHeadOfHousehold,
			Dependents:        body.Dependents,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithField(r.Context(), "house_id", member.HouseID), "member.registered")
		}
		responses.WriteText(w, http.StatusOK, "Member and house added successfully!")
	}
}

// ToggleDisplaced flips the displaced flag of a member and their house.
func ToggleDisplaced(svc members.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			writeServiceUnavailable(w, r, logg, "member")
			return
		}

		var body toggleDisplacedRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.ToggleDisplaced(r.Context(), body.SSN, *body.IsDisplaced); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteText(w, http.StatusOK, "Displaced status updated successfully!")
	}
}

// UserByEmail returns the member profile joined with their house.
func UserByEmail(svc members.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			writeServiceUnavailable(w, r, logg, "member")
			return
		}

		email, err := validators.RequiredURLParam(r, "email", maxEmailLength)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile, err := svc.GetByEmail(r.Context(), email)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, profile)
	}
}

// UpdateMember overwrites a member profile and their house.
func UpdateMember(svc members.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			writeServiceUnavailable(w, r, logg, "member")
			return
		}

		var body updateMemberRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		password := body.Password
		if password != nil && *password == "" {
			password = nil
		}

		err := svc.Update(r.Context(), members.UpdateInput{
			SSN:               body.SSN,
			FirstName:         body.FirstName,
			LastName:          body.LastName,
			Email:             body.Email,
			Password:          password,
			DOB:               body.DOB,
			FamilySize:        body.FamilySize,
			Street:            body.Street,
			City:              body.City,
			State:             body.State,
			ZipCode:           body.ZipCode,
			HouseTotalSpace:   body.HouseTotalSpace,
			IsHeadOfHousehold: body.IsHeadOfHousehold,
			Dependents:        body.Dependents,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteText(w, http.StatusOK, "Member updated successfully!")
	}
}

// DeleteMember removes a member and the house they guard.
func DeleteMember(svc members.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			writeServiceUnavailable(w, r, logg, "member")
			return
		}

		var body deleteMemberRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), body.SSN, body.HouseID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteText(w, http.StatusOK, "Member deleted successfully!")
	}
}
