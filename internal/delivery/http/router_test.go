package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"healthcare-backend/config"
	"healthcare-backend/internal/delivery/http/handler"
	"healthcare-backend/internal/delivery/http/middleware"
	"healthcare-backend/internal/domain/entity"
	"healthcare-backend/internal/repository"
	"healthcare-backend/internal/testutil"
	"healthcare-backend/internal/usecase"
	"healthcare-backend/pkg/jwt"
	"healthcare-backend/pkg/response"
	"healthcare-backend/pkg/validator"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testServer struct {
	handler    http.Handler
	db         *gorm.DB
	jwtService *jwt.JWTService
	redis      *miniredis.Miniredis
}

// newTestServer wires the todo stack for real. The other handlers are nil and
// must not be reached by these tests.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db := testutil.NewDB(t)
	mr, redisClient := testutil.NewRedis(t)
	log := testutil.NewLogger()

	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: time.Hour,
	})

	toDoUsecase := usecase.NewToDoUsecase(db, log, repository.NewToDoRepository())
	toDoHandler := handler.NewToDoHandler(toDoUsecase, validator.NewValidator())

	router := NewRouter(
		nil, nil, nil, nil, nil,
		toDoHandler,
		nil, nil,
		middleware.NewAuthMiddleware(jwtService, redisClient),
		middleware.NewCORSMiddleware(nil),
	)

	return &testServer{handler: router.Setup(), db: db, jwtService: jwtService, redis: mr}
}

// login issues an access token for user and registers it the way the auth flow does.
func (s *testServer) login(t *testing.T, user *entity.User, userType entity.UserType) string {
	t.Helper()
	token, tokenID, err := s.jwtService.GenerateAccessToken(user.ID, user.Email, string(userType))
	require.NoError(t, err)
	require.NoError(t, s.redis.Set(jwt.SessionKey(jwt.AccessToken, user.ID, tokenID), "1"))
	return token
}

func (s *testServer) createUser(t *testing.T, username string) *entity.User {
	t.Helper()
	user := &entity.User{Username: username, Email: username + "@example.com", Password: "x", IsActive: true}
	require.NoError(t, s.db.Create(user).Error)
	return user
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestRouter_Health(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/v1/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_Preflight(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodOptions, "/api/v1/todos", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestRouter_Authentication(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/v1/todos", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/todos", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// signed but never registered, as after logout
	user := &entity.User{ID: uuid.New(), Email: "jane@example.com"}
	token, _, err := s.jwtService.GenerateAccessToken(user.ID, user.Email, string(entity.UserTypePatient))
	require.NoError(t, err)
	rec = s.do(http.MethodGet, "/api/v1/todos", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token has been revoked", decode(t, rec).Message)

	refresh, _, err := s.jwtService.GenerateRefreshToken(user.ID, user.Email, string(entity.UserTypePatient))
	require.NoError(t, err)
	rec = s.do(http.MethodGet, "/api/v1/todos", refresh, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_UserTypeGuards(t *testing.T) {
	s := newTestServer(t)
	user := s.createUser(t, "jane")
	token := s.login(t, user, entity.UserTypePatient)

	rec := s.do(http.MethodGet, "/api/v1/admin/audit-logs", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/doctor/appointments", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_ToDos(t *testing.T) {
	s := newTestServer(t)
	user := s.createUser(t, "jane")
	token := s.login(t, user, entity.UserTypePatient)

	rec := s.do(http.MethodPost, "/api/v1/todos", token, map[string]string{"notes": "no title"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]interface{}{"title": "title is required"}, decode(t, rec).Error)

	rec = s.do(http.MethodPost, "/api/v1/todos", token, map[string]string{"title": "Drink water"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/todos", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Drink water")

	rec = s.do(http.MethodPatch, "/api/v1/todos/not-a-uuid", token, map[string]bool{"completed": true})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodDelete, "/api/v1/todos/"+uuid.New().String(), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
