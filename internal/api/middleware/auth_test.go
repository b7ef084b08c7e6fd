package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HBT-OccupancyService/internal/domain"
	"github.com/m04kA/HBT-OccupancyService/internal/integrations/userservice"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeValidator struct {
	session *userservice.Session
	err     error
}

func (v *fakeValidator) ValidateToken(ctx context.Context, token string) (*userservice.Session, error) {
	if v.err != nil {
		return nil, v.err
	}
	return v.session, nil
}

func newProtectedServer(validator TokenValidator, next http.HandlerFunc) *mux.Router {
	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(Auth(validator, nopLogger{}))
	protected.HandleFunc("/rooms", next).Methods(http.MethodGet)
	return r
}

func doRequest(router *mux.Router, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuth_ScopeFromSession(t *testing.T) {
	validator := &fakeValidator{session: &userservice.Session{
		ReceptionistID: 7,
		HospitalID:     10,
		Role:           domain.RoleReceptionist,
		Valid:          true,
	}}

	var gotScope domain.HospitalScope
	router := newProtectedServer(validator, func(w http.ResponseWriter, r *http.Request) {
		scope, ok := ScopeFromContext(r.Context())
		require.True(t, ok)
		gotScope = scope
		w.WriteHeader(http.StatusOK)
	})

	rec := doRequest(router, "token")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, int64(10), gotScope.HospitalID)
	assert.Equal(t, int64(7), gotScope.ReceptionistID)
	assert.Equal(t, domain.RoleReceptionist, gotScope.Role)
}

func TestAuth_AdminRoleAllowed(t *testing.T) {
	validator := &fakeValidator{session: &userservice.Session{
		ReceptionistID: 1,
		HospitalID:     10,
		Role:           domain.RoleAdmin,
		Valid:          true,
	}}

	router := newProtectedServer(validator, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := doRequest(router, "token")
	assert.Equal(t, http.StatusOK, rec.Code)
}

// Валидная сессия с посторонней ролью не проходит к операциям занятости
func TestAuth_ForeignRoleForbidden(t *testing.T) {
	validator := &fakeValidator{session: &userservice.Session{
		ReceptionistID: 3,
		HospitalID:     10,
		Role:           "USER",
		Valid:          true,
	}}

	reached := false
	router := newProtectedServer(validator, func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	rec := doRequest(router, "token")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached, "handler must not be reached with a foreign role")
}

func TestAuth_MissingToken(t *testing.T) {
	router := newProtectedServer(&fakeValidator{}, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	validator := &fakeValidator{err: userservice.ErrInvalidToken}

	router := newProtectedServer(validator, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := doRequest(router, "bad-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
