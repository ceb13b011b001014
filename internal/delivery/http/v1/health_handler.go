package v1

import (
	"net/http"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC domain.HealthUsecase
}

type HealthErrorResponse struct {
	Status string `json:"status" example:"error"`
	Error  string `json:"error"`
}

func NewHealthHandler(public *gin.RouterGroup, healthUC domain.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}

	health := public.Group("/health")
	{
		health.GET("", handler.Check)
		health.GET("/redis", handler.Redis)
		health.GET("/db", handler.Database)
	}
}

// Check godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	response.Success(c, http.StatusOK, h.healthUC.Check(c.Request.Context()))
}

// Redis godoc
// @Summary      Redis round trip
// @Tags         health
// @Produce      json
// @Success      200  {object}  domain.RedisHealth
// @Failure      500  {object}  HealthErrorResponse
// @Router       /health/redis [get]
func (h *HealthHandler) Redis(c *gin.Context) {
	result, err := h.healthUC.Redis(c.Request.Context())
	if err != nil {
		logger.Log.Warn("Redis health check failed", "error", err)
		c.JSON(http.StatusInternalServerError, HealthErrorResponse{Status: "error", Error: "Redis not available"})
		return
	}
	response.Success(c, http.StatusOK, result)
}

// Database godoc
// @Summary      Database ping
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      500  {object}  HealthErrorResponse
// @Router       /health/db [get]
func (h *HealthHandler) Database(c *gin.Context) {
	if err := h.healthUC.Database(c.Request.Context()); err != nil {
		logger.Log.Warn("Database health check failed", "error", err)
		c.JSON(http.StatusInternalServerError, HealthErrorResponse{Status: "error", Error: "Database not available"})
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": "ok"})
}
