package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"jobboard-backend/config"
	v1 "jobboard-backend/internal/delivery/http/v1"
	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/usecase"
	"jobboard-backend/pkg/auth"
	"jobboard-backend/pkg/security"
	"jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Mock repositories and usecases

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

type MockVacancyUC struct {
	mock.Mock
}

func (m *MockVacancyUC) ListAll(ctx context.Context) ([]domain.Vacancy, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Vacancy), args.Error(1)
}

func (m *MockVacancyUC) ListMine(ctx context.Context, ownerID string) ([]domain.Vacancy, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Vacancy), args.Error(1)
}

func (m *MockVacancyUC) Create(ctx context.Context, ownerID string, input domain.VacancyInput) (*domain.Vacancy, error) {
	args := m.Called(ctx, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vacancy), args.Error(1)
}

func (m *MockVacancyUC) Update(ctx context.Context, id int64, ownerID string, patch domain.VacancyPatch) (*domain.Vacancy, error) {
	args := m.Called(ctx, id, ownerID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vacancy), args.Error(1)
}

func (m *MockVacancyUC) Delete(ctx context.Context, id int64, ownerID string) error {
	return m.Called(ctx, id, ownerID).Error(0)
}

type MockApplicationUC struct {
	mock.Mock
}

func (m *MockApplicationUC) Submit(ctx context.Context, input domain.ApplicationInput) (*domain.Application, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationUC) Update(ctx context.Context, id int64, employerID string, patch domain.ApplicationPatch) (*domain.Application, error) {
	args := m.Called(ctx, id, employerID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationUC) ListForEmployer(ctx context.Context, employerID string) ([]domain.Application, error) {
	args := m.Called(ctx, employerID)
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationUC) CreateManual(ctx context.Context, employerID string, input domain.ManualCandidateInput) (*domain.Application, error) {
	args := m.Called(ctx, employerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationUC) Export(ctx context.Context, employerID string, req domain.ApplicationExportRequest) (*domain.ExportFile, error) {
	args := m.Called(ctx, employerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExportFile), args.Error(1)
}

type MockImageUC struct {
	mock.Mock
}

func (m *MockImageUC) DirectUpload(ctx context.Context) (*domain.DirectUpload, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DirectUpload), args.Error(1)
}

func (m *MockImageUC) Info(ctx context.Context, imageID string) (*domain.ImageInfo, error) {
	args := m.Called(ctx, imageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImageInfo), args.Error(1)
}

func (m *MockImageUC) Debug(ctx context.Context, imageID string) (*domain.ImageDebug, error) {
	args := m.Called(ctx, imageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImageDebug), args.Error(1)
}

type MockHealthUC struct {
	mock.Mock
}

func (m *MockHealthUC) Check(ctx context.Context) map[string]string {
	return m.Called(ctx).Get(0).(map[string]string)
}

func (m *MockHealthUC) Redis(ctx context.Context) (*domain.RedisHealth, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RedisHealth), args.Error(1)
}

func (m *MockHealthUC) Database(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// Fixture

const (
	employerID   = "11111111-1111-1111-1111-111111111111"
	employerName = "acme"
)

type fixture struct {
	userRepo  *MockUserRepo
	vacancyUC *MockVacancyUC
	appUC     *MockApplicationUC
	imageUC   *MockImageUC
	healthUC  *MockHealthUC
	tokens    *auth.TokenManager
	router    *gin.Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &fixture{
		userRepo:  new(MockUserRepo),
		vacancyUC: new(MockVacancyUC),
		appUC:     new(MockApplicationUC),
		imageUC:   new(MockImageUC),
		healthUC:  new(MockHealthUC),
		tokens:    auth.NewTokenManager("test-secret", time.Hour),
	}
	audit := security.NewAuditLogger(zap.NewNop(), "jobboard-backend", "test")

	f.router = v1.NewRouter(v1.RouterDeps{
		AuthUC:        usecase.NewAuthUsecase(f.userRepo, f.tokens, audit, validation.New()),
		VacancyUC:     f.vacancyUC,
		ApplicationUC: f.appUC,
		ImageUC:       f.imageUC,
		HealthUC:      f.healthUC,
		AuditLogger:   audit,
		Config:        &config.Config{AllowedOrigins: []string{"*"}},
	})
	return f
}

func (f *fixture) employerToken(t *testing.T) string {
	t.Helper()
	token, _, err := f.tokens.Issue(employerID, employerName, domain.RoleEmployer)
	require.NoError(t, err)
	return token
}

func (f *fixture) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]any](t, w)["error"].(string)
}
