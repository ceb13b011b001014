package middleware

import (
	"context"
	"net/http"
	"strings"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// AuthMiddleware admits requests carrying a valid bearer token, and when
// requiredRole is set, only callers holding that role. It never touches
// storage. audit may be nil.
func AuthMiddleware(authUC domain.AuthUsecase, audit *security.AuditLogger, requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			response.Error(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		identity, err := authUC.VerifyToken(c.Request.Context(), tokenString)
		if err != nil {
			audit.LogUnauthorizedAccess(c.Request.Context(), c.Request.URL.Path, "invalid_token")
			response.Error(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		if requiredRole != "" && identity.Role != requiredRole {
			audit.LogUnauthorizedAccess(c.Request.Context(), c.Request.URL.Path, "role_mismatch")
			response.Error(c, http.StatusForbidden, "Forbidden")
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), identity.UserID)
		c.Set(string(domain.KeyUsername), identity.Username)
		c.Set(string(domain.KeyUserRole), identity.Role)

		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, identity.UserID)
		ctx = context.WithValue(ctx, domain.KeyUsername, identity.Username)
		ctx = context.WithValue(ctx, domain.KeyUserRole, identity.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
