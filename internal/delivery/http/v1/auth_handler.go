package v1

import (
	"net/http"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/register", handler.Register)
		publicAuth.POST("/login", handler.Login)
	}
}

type CredentialsRequest struct {
	Username string `json:"username" example:"acme"`
	Password string `json:"password" example:"pw123"`
}

// Register godoc
// @Summary      Register an employer
// @Description  Creates an EMPLOYER account. Usernames are unique.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      CredentialsRequest  true  "Username and password"
// @Success      200          {object}  domain.User
// @Failure      400          {object}  response.ErrorResponse
// @Failure      409          {object}  response.ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authUC.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// Login godoc
// @Summary      Log in
// @Description  Exchanges credentials for a bearer token valid for 7 days.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      CredentialsRequest  true  "Username and password"
// @Success      200          {object}  domain.LoginResult
// @Failure      400          {object}  response.ErrorResponse
// @Failure      401          {object}  response.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, result)
}
