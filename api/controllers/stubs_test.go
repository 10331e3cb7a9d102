package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/hurricanehousing/hhh-backend/internal/houses"
	"github.com/hurricanehousing/hhh-backend/internal/members"
	"github.com/hurricanehousing/hhh-backend/internal/pairings"
	"github.com/hurricanehousing/hhh-backend/pkg/types"
)

type stubMemberService struct {
	member  *members.MemberDTO
	profile *members.ProfileDTO
	err     error

	registered *members.RegisterInput
	updated    *members.UpdateInput
	toggled    *bool
	deletedSSN string
	deletedID  *int64
}

func (s *stubMemberService) Register(ctx context.Context, input members.RegisterInput) (*members.MemberDTO, error) {
	s.registered = &input
	return s.member, s.err
}

func (s *stubMemberService) ToggleDisplaced(ctx context.Context, ssn string, displaced bool) error {
	s.toggled = &displaced
	return s.err
}

func (s *stubMemberService) Login(ctx context.Context, email, password string) (*members.MemberDTO, error) {
	return s.member, s.err
}

func (s *stubMemberService) GetByEmail(ctx context.Context, email string) (*members.ProfileDTO, error) {
	return s.profile, s.err
}

func (s *stubMemberService) Update(ctx context.Context, input members.UpdateInput) error {
	s.updated = &input
	return s.err
}

func (s *stubMemberService) Delete(ctx context.Context, ssn string, houseID *int64) error {
	s.deletedSSN = ssn
	s.deletedID = houseID
	return s.err
}

type stubHouseService struct {
	list     []houses.AvailableHouseDTO
	resolved *houses.CurrentAddressDTO
	err      error

	houseID  *int64
	refugeAt *int64
}

func (s *stubHouseService) ListAvailable(ctx context.Context) ([]houses.AvailableHouseDTO, error) {
	return s.list, s.err
}

func (s *stubHouseService) ResolveCurrentAddress(ctx context.Context, houseID, refugeAt *int64) (*houses.CurrentAddressDTO, error) {
	s.houseID = houseID
	s.refugeAt = refugeAt
	return s.resolved, s.err
}

type stubPairingService struct {
	pairing *pairings.PairingDTO
	rows    []pairings.ReportRowDTO
	err     error

	selected *pairings.SelectHouseInput
	search   string
	status   string
}

func (s *stubPairingService) SelectHouse(ctx context.Context, input pairings.SelectHouseInput) (*pairings.PairingDTO, error) {
	s.selected = &input
	return s.pairing, s.err
}

func (s *stubPairingService) Report(ctx context.Context, search, status string) ([]pairings.ReportRowDTO, error) {
	s.search = search
	s.status = status
	return s.rows, s.err
}

func doJSON(t *testing.T, handler http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) types.APIError {
	t.Helper()
	var env types.ErrorEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	return env.Error
}
