package v1

import (
	"strconv"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidID   = "Invalid ID format"
	msgInvalidBody = "Invalid request body"
)

// parseID reads the :id path parameter. On failure the error is already
// pushed onto the context.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.Error(apperror.BadRequest(msgInvalidID))
		return 0, false
	}
	return id, true
}

// bindJSON decodes the request body, reporting malformed JSON as a 400.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.Error(apperror.BadRequest(msgInvalidBody))
		return false
	}
	return true
}

func currentUserID(c *gin.Context) string {
	return c.GetString(string(domain.KeyUserID))
}

// imagesOf keeps an images value only when it was sent as an array.
func imagesOf(f domain.Field[[]string]) []string {
	if !f.Present() {
		return nil
	}
	return *f.Value
}
