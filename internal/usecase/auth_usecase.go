package usecase

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/auth"
	"jobboard-backend/pkg/security"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

const (
	msgCredentialsRequired = "username and password required"
	msgUsernameTaken       = "Username already taken"
	msgInvalidCredentials  = "Invalid credentials"
	msgInvalidToken        = "Invalid token"
)

// dummyHash is compared against when the username is unknown, so both
// failure paths pay for one bcrypt comparison.
var dummyHash = sync.OnceValue(func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcryptCost)
	if err != nil {
		panic(err)
	}
	return h
})

type credentials struct {
	Username string `validate:"notblank"`
	Password string `validate:"required"`
}

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenManager
	audit    *security.AuditLogger
	validate *validator.Validate
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.TokenManager, audit *security.AuditLogger, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		audit:    audit,
		validate: validate,
	}
}

func (u *authUsecase) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if err := u.validate.Struct(credentials{Username: username, Password: password}); err != nil {
		return nil, apperror.BadRequest(msgCredentialsRequired)
	}

	existing, err := u.userRepo.GetByUsername(ctx, username)
	if err == nil && existing != nil {
		u.audit.LogRegisterConflict(ctx, username)
		return nil, apperror.Conflict(msgUsernameTaken)
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleEmployer,
		CreatedAt:    time.Now().UTC(),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusConflict {
			u.audit.LogRegisterConflict(ctx, username)
			return nil, apperror.Conflict(msgUsernameTaken)
		}
		return nil, err
	}

	u.audit.LogRegistered(ctx, user.ID, user.Username)
	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, username, password string) (*domain.LoginResult, error) {
	if err := u.validate.Struct(credentials{Username: username, Password: password}); err != nil {
		return nil, apperror.BadRequest(msgCredentialsRequired)
	}

	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Internal(err)
		}
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		u.audit.LogLoginFailed(ctx, username, "unknown_user")
		return nil, apperror.Unauthorized(msgInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		u.audit.LogLoginFailed(ctx, username, "wrong_password")
		return nil, apperror.Unauthorized(msgInvalidCredentials)
	}

	token, _, err := u.tokens.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	u.audit.LogLoginSuccess(ctx, user.ID, user.Username)
	return &domain.LoginResult{Token: token, User: user}, nil
}

func (u *authUsecase) VerifyToken(ctx context.Context, token string) (*domain.Identity, error) {
	claims, err := u.tokens.Parse(token)
	if err != nil {
		return nil, apperror.New(http.StatusUnauthorized, msgInvalidToken, err)
	}
	return &domain.Identity{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}
