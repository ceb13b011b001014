package response

import (
	"net/http"

	"jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// OKResponse is returned by endpoints with nothing else to report
type OKResponse struct {
	OK bool `json:"ok"`
}

// Success writes data as the bare JSON body
func Success(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{
		Error:     message,
		RequestID: c.GetString(string(domain.KeyRequestID)),
	})
}

// Attachment sends a file download
func Attachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}
