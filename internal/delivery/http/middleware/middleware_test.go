package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jobboard-backend/internal/delivery/http/middleware"
	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/usecase"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/auth"
	"jobboard-backend/pkg/security"
	"jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type authFixture struct {
	repo   *MockUserRepo
	tokens *auth.TokenManager
	audit  *security.AuditLogger
	logs   *observer.ObservedLogs
	router *gin.Engine
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zapcore.InfoLevel)
	f := &authFixture{
		repo:   new(MockUserRepo),
		tokens: auth.NewTokenManager("test-secret", time.Hour),
		audit:  security.NewAuditLogger(zap.New(core), "jobboard-backend", "test"),
		logs:   logs,
	}
	authUC := usecase.NewAuthUsecase(f.repo, f.tokens, f.audit, validation.New())

	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/employer/ping", middleware.AuthMiddleware(authUC, f.audit, domain.RoleEmployer), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId":   c.GetString(string(domain.KeyUserID)),
			"username": c.GetString(string(domain.KeyUsername)),
			"ctxId":    c.Request.Context().Value(domain.KeyUserID),
		})
	})
	f.router = r
	return f
}

func (f *authFixture) do(authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/employer/ping", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	f := newAuthFixture(t)

	w := f.do("")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Unauthorized", body["error"])
	assert.NotEmpty(t, body["request_id"])
	f.repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	f.repo.AssertNotCalled(t, "GetByUsername", mock.Anything, mock.Anything)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	f := newAuthFixture(t)

	w := f.do("Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthorized", decodeBody(t, w)["error"])
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	f := newAuthFixture(t)

	w := f.do("Bearer not-a-jwt")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token", decodeBody(t, w)["error"])
	require.Equal(t, 1, f.logs.FilterField(zap.String("event", string(security.EventUnauthorizedAccess))).Len())
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	f := newAuthFixture(t)
	other := auth.NewTokenManager("other-secret", time.Hour)
	token, _, err := other.Issue("u1", "acme", domain.RoleEmployer)
	require.NoError(t, err)

	w := f.do("Bearer " + token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token", decodeBody(t, w)["error"])
}

func TestAuthMiddleware_RoleMismatch(t *testing.T) {
	f := newAuthFixture(t)
	token, _, err := f.tokens.Issue("u1", "acme", "SEEKER")
	require.NoError(t, err)

	w := f.do("Bearer " + token)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Forbidden", decodeBody(t, w)["error"])
}

func TestAuthMiddleware_Success(t *testing.T) {
	f := newAuthFixture(t)
	token, _, err := f.tokens.Issue("u1", "acme", domain.RoleEmployer)
	require.NoError(t, err)

	w := f.do("Bearer " + token)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "u1", body["userId"])
	assert.Equal(t, "acme", body["username"])
	assert.Equal(t, "u1", body["ctxId"])
	f.repo.AssertExpectations(t)
}

func newErrorRouter(err error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler())
	r.GET("/fail", func(c *gin.Context) {
		c.Error(err)
	})
	return r
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"app error", apperror.BadRequest("Title is required"), http.StatusBadRequest, "Title is required"},
		{"wrapped app error", errors.Join(errors.New("ctx"), apperror.Conflict("Username already taken")), http.StatusConflict, "Username already taken"},
		{"domain not found", domain.ErrNotFound, http.StatusNotFound, "Not found"},
		{"unknown", errors.New("pq: connection refused"), http.StatusInternalServerError, "Server error"},
		{"internal", apperror.Internal(errors.New("boom")), http.StatusInternalServerError, "Server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/fail", nil)
			req.Header.Set(middleware.RequestIDHeader, "req-123")
			w := httptest.NewRecorder()
			newErrorRouter(tt.err).ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, tt.wantMsg, body["error"])
			assert.Equal(t, "req-123", body["request_id"])
			assert.NotContains(t, w.Body.String(), "connection refused")
		})
	}
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "%v", c.Request.Context().Value(domain.KeyRequestID))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	id := w.Header().Get(middleware.RequestIDHeader)
	assert.Len(t, id, 36)
	assert.Equal(t, id, w.Body.String())
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CORSMiddleware([]string{"https://jobs.example.com"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("allowed preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "https://jobs.example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://jobs.example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	})

	t.Run("rejected preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard", func(t *testing.T) {
		wr := gin.New()
		wr.Use(middleware.CORSMiddleware([]string{"*"}))
		wr.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://anywhere.example.com")
		w := httptest.NewRecorder()
		wr.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.SecurityHeadersMiddleware(true))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer x")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "imagedelivery.net")
	assert.Contains(t, w.Header().Get("Cache-Control"), "no-store")
}

func TestSecurityHeadersMiddleware_Development(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.SecurityHeadersMiddleware(false))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
	assert.Empty(t, w.Header().Get("Cache-Control"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := middleware.NewMetrics()
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/vacancies", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", m.Handler())

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/vacancies", nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	out := w.Body.String()
	assert.True(t, strings.Contains(out, `jobboard_http_requests_total{method="GET",route="/api/vacancies",status="200"} 1`), out)
	assert.Contains(t, out, "jobboard_http_request_duration_seconds")
}
