// Command seed creates employer accounts and optional demo vacancies.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"jobboard-backend/config"
	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/repository/postgres"
	"jobboard-backend/internal/usecase"
	"jobboard-backend/pkg/auth"
	"jobboard-backend/pkg/database"
	"jobboard-backend/pkg/logger"
	"jobboard-backend/pkg/security"
	"jobboard-backend/pkg/validation"
)

func main() {
	username := flag.String("username", "", "Employer username to create")
	password := flag.String("password", "", "Employer password")
	vacancies := flag.Int("vacancies", 0, "Number of demo vacancies to post for the employer")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("usage: seed -username NAME -password PASS [-vacancies N]")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Init(cfg.LogLevel)

	if cfg.AutoMigrate {
		if err := database.Migrate(cfg.DBUrl); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
	}

	ctx := context.Background()
	pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	validate := validation.New()
	audit := security.InitAuditLogger("jobboard-seed", cfg.Environment)
	authUC := usecase.NewAuthUsecase(postgres.NewUserRepository(pool), auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL), audit, validate)
	vacancyUC := usecase.NewVacancyUsecase(postgres.NewVacancyRepository(pool), validate)

	user, err := authUC.Register(ctx, *username, *password)
	if err != nil {
		log.Fatalf("User seeding failed: %v", err)
	}
	log.Printf("Created employer %s (%s)", user.Username, user.ID)

	for i := 1; i <= *vacancies; i++ {
		v, err := vacancyUC.Create(ctx, user.ID, domain.VacancyInput{
			Title:  fmt.Sprintf("Demo vacancy %d", i),
			Text:   "Seeded vacancy for local development",
			Region: "Chisinau",
		})
		if err != nil {
			log.Fatalf("Vacancy seeding failed: %v", err)
		}
		log.Printf("Posted vacancy #%d %q", v.ID, v.Title)
	}
}
