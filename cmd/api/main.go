package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobboard-backend/config"
	_ "jobboard-backend/docs" // Important for Swagger
	"jobboard-backend/internal/delivery/http/middleware"
	v1 "jobboard-backend/internal/delivery/http/v1"
	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/repository/cache"
	"jobboard-backend/internal/repository/postgres"
	"jobboard-backend/internal/usecase"
	"jobboard-backend/pkg/auth"
	"jobboard-backend/pkg/database"
	"jobboard-backend/pkg/imageprovider"
	"jobboard-backend/pkg/logger"
	pkgredis "jobboard-backend/pkg/redis"
	"jobboard-backend/pkg/security"
	"jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// @title           Job Board API
// @version         1.0
// @description     Vacancies, applications and candidate management for employers.
// @host            localhost:3010
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting job board backend", "port", cfg.Port, "env", cfg.Environment)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	auditLogger := security.InitAuditLogger("jobboard-backend", cfg.Environment)
	defer func() { _ = auditLogger.Sync() }()

	ctx := context.Background()

	// 3. Setup Database
	if cfg.AutoMigrate {
		if err := database.Migrate(cfg.DBUrl); err != nil {
			logger.Log.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional)
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = pkgredis.New(ctx, pkgredis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
		if err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory vacancy cache", "error", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	vacancyRepo := newVacancyRepository(postgres.NewVacancyRepository(dbPool), redisClient, cfg.VacancyCacheTTL)

	// 6. Setup Image Provider
	images, err := imageprovider.New(ctx, imageprovider.Config{
		Provider: cfg.ImageProvider,
		Cloudflare: imageprovider.CloudflareConfig{
			AccountID:   cfg.CFAccountID,
			Token:       cfg.CFImagesToken,
			AccountHash: cfg.CFImagesAccountHash,
			Variant:     cfg.CFImagesVariant,
		},
		S3: imageprovider.S3Config{
			Provider:        cfg.S3Provider,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			PublicBaseURL:   cfg.S3PublicBaseURL,
			WasabiEndpoint:  cfg.WasabiEndpoint,
		},
	})
	if err != nil {
		logger.Log.Error("Failed to set up image provider", "error", err)
		os.Exit(1)
	}
	logger.Log.Info("Image provider ready", "provider", images.Name())

	// 7. Setup UseCases
	validate := validation.New()
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	authUC := usecase.NewAuthUsecase(userRepo, tokens, auditLogger, validate)
	vacancyUC := usecase.NewVacancyUsecase(vacancyRepo, validate)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, vacancyRepo, validate)
	imageUC := usecase.NewImageUsecase(images)
	healthUC := usecase.NewHealthUsecase(dbPool, redisClient)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		VacancyUC:     vacancyUC,
		ApplicationUC: applicationUC,
		ImageUC:       imageUC,
		HealthUC:      healthUC,
		AuditLogger:   auditLogger,
		Metrics:       middleware.NewMetrics(),
		Config:        cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

// newVacancyRepository puts the public list cache in front of repo, backed by
// Redis when available and process memory otherwise.
func newVacancyRepository(repo domain.VacancyRepository, rdb *redis.Client, ttl time.Duration) domain.VacancyRepository {
	if rdb != nil {
		return cache.NewVacancyCache(repo, cache.NewRedisStore(rdb), ttl)
	}
	return cache.NewVacancyCache(repo, cache.NewMemoryStore(ttl), ttl)
}
