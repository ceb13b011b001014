package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/usecase"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/auth"
	"jobboard-backend/pkg/security"
	"jobboard-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Mock Repositories
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

type MockVacancyRepo struct {
	mock.Mock
}

func (m *MockVacancyRepo) Create(ctx context.Context, v *domain.Vacancy) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVacancyRepo) GetByID(ctx context.Context, id int64) (*domain.Vacancy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vacancy), args.Error(1)
}

func (m *MockVacancyRepo) FetchAll(ctx context.Context) ([]domain.Vacancy, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Vacancy), args.Error(1)
}

func (m *MockVacancyRepo) FetchByOwner(ctx context.Context, ownerID string) ([]domain.Vacancy, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Vacancy), args.Error(1)
}

func (m *MockVacancyRepo) Update(ctx context.Context, v *domain.Vacancy) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVacancyRepo) DeleteWithApplications(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockVacancyRepo) FirstOrCreateForOwner(ctx context.Context, ownerID string, placeholder *domain.Vacancy) (*domain.Vacancy, error) {
	args := m.Called(ctx, ownerID, placeholder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vacancy), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) FetchByOwner(ctx context.Context, ownerID string) ([]domain.Application, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) Update(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}

func requireAppError(t *testing.T, err error, code int) *apperror.AppError {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
	return appErr
}

func newAuth(repo *MockUserRepo) (domain.AuthUsecase, *auth.TokenManager) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	audit := security.NewAuditLogger(zap.NewNop(), "jobboard-backend", "test")
	return usecase.NewAuthUsecase(repo, tokens, audit, validation.New()), tokens
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestRegister_Success(t *testing.T) {
	repo := new(MockUserRepo)
	uc, _ := newAuth(repo)
	ctx := context.Background()

	repo.On("GetByUsername", ctx, "employer1").Return(nil, domain.ErrNotFound)
	repo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "employer1" &&
			u.Role == domain.RoleEmployer &&
			u.ID != "" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret")) == nil
	})).Return(nil)

	user, err := uc.Register(ctx, "employer1", "secret")

	require.NoError(t, err)
	assert.Equal(t, "employer1", user.Username)
	assert.Equal(t, domain.RoleEmployer, user.Role)
	repo.AssertExpectations(t)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := new(MockUserRepo)
	uc, _ := newAuth(repo)
	ctx := context.Background()

	repo.On("GetByUsername", ctx, "employer1").Return(&domain.User{ID: "u-1", Username: "employer1"}, nil)

	_, err := uc.Register(ctx, "employer1", "other")

	appErr := requireAppError(t, err, http.StatusConflict)
	assert.Equal(t, "Username already taken", appErr.Message)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_RaceLostIsConflict(t *testing.T) {
	repo := new(MockUserRepo)
	uc, _ := newAuth(repo)
	ctx := context.Background()

	repo.On("GetByUsername", ctx, "employer1").Return(nil, domain.ErrNotFound)
	repo.On("Create", ctx, mock.Anything).Return(apperror.Conflict("Username already taken"))

	_, err := uc.Register(ctx, "employer1", "secret")

	requireAppError(t, err, http.StatusConflict)
}

func TestRegister_BlankFields(t *testing.T) {
	repo := new(MockUserRepo)
	uc, _ := newAuth(repo)

	for _, tc := range []struct{ username, password string }{
		{"", "secret"},
		{"employer1", ""},
		{"   ", "secret"},
	} {
		_, err := uc.Register(context.Background(), tc.username, tc.password)
		requireAppError(t, err, http.StatusBadRequest)
	}
	repo.AssertNotCalled(t, "GetByUsername", mock.Anything, mock.Anything)
}

func TestRegister_WhitespacePasswordAccepted(t *testing.T) {
	repo := new(MockUserRepo)
	uc, _ := newAuth(repo)
	ctx := context.Background()

	repo.On("GetByUsername", ctx, "employer1").Return(nil, domain.ErrNotFound)
	repo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("   ")) == nil
	})).Return(nil)

	_, err := uc.Register(ctx, "employer1", "   ")

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestLogin_Success(t *testing.T) {
	repo := new(MockUserRepo)
	uc, tokens := newAuth(repo)
	ctx := context.Background()

	repo.On("GetByUsername", ctx, "employer1").Return(&domain.User{
		ID: "u-1", Username: "employer1", Role: domain.RoleEmployer, PasswordHash: hashed(t, "secret"),
	}, nil)

	res, err := uc.Login(ctx, "employer1", "secret")

	require.NoError(t, err)
	assert.Equal(t, "u-1", res.User.ID)

	claims, err := tokens.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "employer1", claims.Username)
	assert.Equal(t, domain.RoleEmployer, claims.Role)
}

func TestLogin_UnknownUserAndWrongPasswordLookTheSame(t *testing.T) {
	repo := new(MockUserRepo)
	uc, _ := newAuth(repo)
	ctx := context.Background()

	repo.On("GetByUsername", ctx, "ghost").Return(nil, domain.ErrNotFound)
	repo.On("GetByUsername", ctx, "employer1").Return(&domain.User{
		ID: "u-1", Username: "employer1", Role: domain.RoleEmployer, PasswordHash: hashed(t, "secret"),
	}, nil)

	_, unknownErr := uc.Login(ctx, "ghost", "secret")
	_, wrongErr := uc.Login(ctx, "employer1", "nope")

	unknown := requireAppError(t, unknownErr, http.StatusUnauthorized)
	wrong := requireAppError(t, wrongErr, http.StatusUnauthorized)
	assert.Equal(t, "Invalid credentials", unknown.Message)
	assert.Equal(t, unknown.Message, wrong.Message)
}

func TestLogin_RepositoryFailureIsInternal(t *testing.T) {
	repo := new(MockUserRepo)
	uc, _ := newAuth(repo)

	repo.On("GetByUsername", mock.Anything, "employer1").Return(nil, errors.New("connection reset"))

	_, err := uc.Login(context.Background(), "employer1", "secret")
	requireAppError(t, err, http.StatusInternalServerError)
}

func TestVerifyToken(t *testing.T) {
	repo := new(MockUserRepo)
	uc, tokens := newAuth(repo)

	token, _, err := tokens.Issue("u-1", "employer1", domain.RoleEmployer)
	require.NoError(t, err)

	identity, err := uc.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", identity.UserID)
	assert.Equal(t, domain.RoleEmployer, identity.Role)

	other := auth.NewTokenManager("another-secret", time.Hour)
	forged, _, err := other.Issue("u-1", "employer1", domain.RoleEmployer)
	require.NoError(t, err)

	_, err = uc.VerifyToken(context.Background(), forged)
	appErr := requireAppError(t, err, http.StatusUnauthorized)
	assert.Equal(t, "Invalid token", appErr.Message)
}
