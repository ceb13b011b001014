package v1

import (
	"jobboard-backend/config"
	"jobboard-backend/internal/delivery/http/middleware"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/security"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	VacancyUC     domain.VacancyUsecase
	ApplicationUC domain.ApplicationUsecase
	ImageUC       domain.ImageUsecase
	HealthUC      domain.HealthUsecase
	AuditLogger   *security.AuditLogger
	Metrics       *middleware.Metrics
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	metrics := deps.Metrics
	if metrics == nil {
		metrics = middleware.NewMetrics()
	}

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(metrics.Middleware())
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config.IsProduction()))
	r.Use(middleware.ErrorHandler())

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	employerOnly := middleware.AuthMiddleware(deps.AuthUC, deps.AuditLogger, domain.RoleEmployer)

	NewHealthHandler(api, deps.HealthUC)
	NewAuthHandler(api, deps.AuthUC)
	NewVacancyHandler(api, employerOnly, deps.VacancyUC)
	NewApplicationHandler(api, employerOnly, deps.ApplicationUC)
	NewImageHandler(api, employerOnly, deps.ImageUC)

	return r
}
