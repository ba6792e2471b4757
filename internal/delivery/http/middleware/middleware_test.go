package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"healthcare-backend/config"
	"healthcare-backend/internal/domain/entity"
	"healthcare-backend/internal/testutil"
	"healthcare-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc.def", "abc.def", true},
		{"", "", false},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"Bearer a b", "", false},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", tt.header)
		got, ok := bearerToken(r)
		assert.Equal(t, tt.ok, ok, tt.header)
		assert.Equal(t, tt.want, got, tt.header)
	}
}

func TestAuthenticateAndRequireUserType(t *testing.T) {
	mr, client := testutil.NewRedis(t)
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "s", AccessExpiry: time.Minute, RefreshExpiry: time.Hour})
	auth := NewAuthMiddleware(jwtService, client)

	userID := uuid.New()
	token, tokenID, err := jwtService.GenerateAccessToken(userID, "doc@example.com", string(entity.UserTypeDoctor))
	require.NoError(t, err)
	require.NoError(t, mr.Set(jwt.SessionKey(jwt.AccessToken, userID, tokenID), "valid"))

	var seen uuid.UUID
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	serve := func(h http.Handler) int {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, serve(auth.Authenticate(RequireDoctor(ok))))
	assert.Equal(t, userID, seen)
	assert.Equal(t, http.StatusForbidden, serve(auth.Authenticate(RequireAdmin(ok))))
	assert.Equal(t, http.StatusNoContent, serve(auth.Authenticate(RequireUserType(entity.UserTypeAdmin, entity.UserTypeDoctor)(ok))))

	// without Authenticate there is no user type in the context
	assert.Equal(t, http.StatusUnauthorized, serve(RequireDoctor(ok)))

	mr.Del(jwt.SessionKey(jwt.AccessToken, userID, tokenID))
	assert.Equal(t, http.StatusUnauthorized, serve(auth.Authenticate(ok)))
}

func TestCORS_AllowedOrigins(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	cors := NewCORSMiddleware([]string{"https://app.example.com"}).Handle(next)

	serve := func(method, origin string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(method, "/", nil)
		r.Header.Set("Origin", origin)
		rec := httptest.NewRecorder()
		cors.ServeHTTP(rec, r)
		return rec
	}

	rec := serve(http.MethodGet, "https://app.example.com")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", rec.Header().Get("Vary"))

	rec = serve(http.MethodGet, "https://evil.example.com")
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	rec = serve(http.MethodOptions, "https://app.example.com")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")

	wildcard := NewCORSMiddleware([]string{"*"}).Handle(next)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	wildcard.ServeHTTP(rec, r)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
