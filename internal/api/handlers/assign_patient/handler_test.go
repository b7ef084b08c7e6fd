package assign_patient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HBT-OccupancyService/internal/api/middleware"
	"github.com/m04kA/HBT-OccupancyService/internal/domain"
	"github.com/m04kA/HBT-OccupancyService/internal/integrations/userservice"
	assignPatient "github.com/m04kA/HBT-OccupancyService/internal/usecase/assign_patient"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeValidator struct {
	session *userservice.Session
}

func (v *fakeValidator) ValidateToken(ctx context.Context, token string) (*userservice.Session, error) {
	if v.session == nil {
		return nil, userservice.ErrInvalidToken
	}
	return v.session, nil
}

type fakeUseCase struct {
	resp *assignPatient.Response
	err  error

	gotReq   *assignPatient.Request
	gotScope domain.HospitalScope
}

func (uc *fakeUseCase) Execute(ctx context.Context, req *assignPatient.Request, scope domain.HospitalScope) (*assignPatient.Response, error) {
	uc.gotReq = req
	uc.gotScope = scope
	if uc.err != nil {
		return nil, uc.err
	}
	return uc.resp, nil
}

func newTestServer(uc AssignPatientUseCase, validator middleware.TokenValidator) *mux.Router {
	handler := NewHandler(uc, nopLogger{})

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth(validator, nopLogger{}))
	protected.HandleFunc("/rooms/assign", handler.Handle).Methods(http.MethodPost)
	return r
}

func doAssign(t *testing.T, router *mux.Router, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/rooms/assign", bytes.NewReader(payload))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func validSession() *userservice.Session {
	return &userservice.Session{
		ReceptionistID: 7,
		HospitalID:     10,
		Username:       "reception-1",
		Role:           domain.RoleReceptionist,
		Valid:          true,
	}
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{
		resp: &assignPatient.Response{
			RoomID:        1,
			RoomNumber:    "101",
			TotalBeds:     2,
			OccupiedBeds:  1,
			AvailableBeds: 1,
		},
	}
	router := newTestServer(uc, &fakeValidator{session: validSession()})

	rec := doAssign(t, router, "token", AssignPatientRequest{PatientID: 100, RoomID: 1})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RoomOccupancyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.RoomID)
	assert.Equal(t, 1, resp.OccupiedBeds)
	assert.Equal(t, 1, resp.AvailableBeds)

	// Scope пришёл из сессии, а не из тела запроса
	assert.Equal(t, int64(10), uc.gotScope.HospitalID)
	assert.Equal(t, int64(7), uc.gotScope.ReceptionistID)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(100), uc.gotReq.PatientID)
}

func TestHandle_MissingToken(t *testing.T) {
	router := newTestServer(&fakeUseCase{}, &fakeValidator{session: validSession()})

	rec := doAssign(t, router, "", AssignPatientRequest{PatientID: 100, RoomID: 1})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_InvalidToken(t *testing.T) {
	router := newTestServer(&fakeUseCase{}, &fakeValidator{session: nil})

	rec := doAssign(t, router, "bad-token", AssignPatientRequest{PatientID: 100, RoomID: 1})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		useCaseErr error
		wantStatus int
	}{
		{"room full", assignPatient.ErrRoomFull, http.StatusConflict},
		{"already admitted", assignPatient.ErrAlreadyAdmitted, http.StatusConflict},
		{"patient not found", assignPatient.ErrPatientNotFound, http.StatusNotFound},
		{"room not found", assignPatient.ErrRoomNotFound, http.StatusNotFound},
		{"scope violation", assignPatient.ErrScopeViolation, http.StatusForbidden},
		{"invalid input", assignPatient.ErrInvalidInput, http.StatusBadRequest},
		{"internal error", assignPatient.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestServer(&fakeUseCase{err: tt.useCaseErr}, &fakeValidator{session: validSession()})

			rec := doAssign(t, router, "token", AssignPatientRequest{PatientID: 100, RoomID: 1})
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	router := newTestServer(&fakeUseCase{}, &fakeValidator{session: validSession()})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/rooms/assign", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Authorization", "Bearer token")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
