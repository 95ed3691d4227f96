package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"prenatal-care-api/config"
	"prenatal-care-api/internal/domain/entity"
	"prenatal-care-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

type fixedTokenStore struct {
	allowed map[string]bool
}

func (s fixedTokenStore) Store(context.Context, uuid.UUID, jwt.TokenType, string, time.Duration) error {
	return nil
}

func (s fixedTokenStore) Exists(_ context.Context, _ uuid.UUID, _ jwt.TokenType, tokenID string) (bool, error) {
	return s.allowed[tokenID], nil
}

func (s fixedTokenStore) Delete(context.Context, uuid.UUID, jwt.TokenType, string) error {
	return nil
}

func (s fixedTokenStore) RevokeAll(context.Context, uuid.UUID) error {
	return nil
}

func newJWT() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "middleware-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})
}

func TestAuthenticate(t *testing.T) {
	svc := newJWT()
	userID := uuid.New()

	access, accessID, err := svc.GenerateAccessToken(userID, "nurse@example.com", entity.RoleIDStaff)
	require.NoError(t, err)
	refresh, refreshID, err := svc.GenerateRefreshToken(userID, "nurse@example.com", entity.RoleIDStaff)
	require.NoError(t, err)
	revoked, _, err := svc.GenerateAccessToken(userID, "nurse@example.com", entity.RoleIDStaff)
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	m := NewAuthMiddleware(svc, fixedTokenStore{allowed: map[string]bool{accessID: true, refreshID: true}}, log)

	var seen uuid.UUID
	var seenRole int
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetUserIDFromContext(r.Context())
		seenRole, _ = GetRoleIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Token " + access, http.StatusUnauthorized},
		{"garbage token", "Bearer abc", http.StatusUnauthorized},
		{"refresh token", "Bearer " + refresh, http.StatusUnauthorized},
		{"revoked token", "Bearer " + revoked, http.StatusUnauthorized},
		{"valid", "Bearer " + access, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			m.Authenticate(next).ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}

	assert.Equal(t, userID, seen)
	assert.Equal(t, entity.RoleIDStaff, seenRole)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name    string
		guard   func(http.Handler) http.Handler
		roleID  *int
		allowed int
	}{
		{"staff on staff route", RequireStaff, intPtr(entity.RoleIDStaff), http.StatusOK},
		{"admin on staff route", RequireStaff, intPtr(entity.RoleIDAdmin), http.StatusOK},
		{"patient on staff route", RequireStaff, intPtr(entity.RoleIDPatient), http.StatusForbidden},
		{"staff on admin route", RequireAdmin, intPtr(entity.RoleIDStaff), http.StatusForbidden},
		{"no role", RequireAdmin, nil, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.roleID != nil {
				req = req.WithContext(context.WithValue(req.Context(), RoleIDKey, *tt.roleID))
			}
			rec := httptest.NewRecorder()
			tt.guard(okHandler).ServeHTTP(rec, req)
			assert.Equal(t, tt.allowed, rec.Code)
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	m := NewCORSMiddleware("https://portal.example.com")

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/portal", nil)
	rec := httptest.NewRecorder()
	m.Handle(okHandler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://portal.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestLogging_RecoversPanic(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
	rec := httptest.NewRecorder()
	NewLoggingMiddleware(log).Handle(panicking).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "boom")
	assert.Contains(t, buf.String(), `"status":500`)
}

func TestLogging_RecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})

	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rec := httptest.NewRecorder()
	NewLoggingMiddleware(log).Handle(notFound).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, buf.String(), `"status":404`)
	assert.Contains(t, buf.String(), `"path":"/missing"`)
}

func intPtr(v int) *int {
	return &v
}
