package postgres

import (
	"context"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const applicationWithOfferColumns = `
			a.id, a.offer_id, a.name, a.phone, a.region, a.interest, a.applicant_id, a.status,
			a.contract, a.age, a.experience, a.salary_worker, a.images, a.created_at, a.updated_at,
			v.id, v.owner_id, v.title, v.text, v.region, v.salary, v.profession, v.images,
			v.created_at, v.updated_at`

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func scanApplicationWithOffer(row rowScanner) (*domain.Application, error) {
	var app domain.Application
	var offer domain.Vacancy
	var appImages, offerImages []string

	err := row.Scan(
		&app.ID, &app.OfferID, &app.Name, &app.Phone, &app.Region, &app.Interest, &app.ApplicantID, &app.Status,
		&app.Contract, &app.Age, &app.Experience, &app.SalaryWorker, pq.Array(&appImages), &app.CreatedAt, &app.UpdatedAt,
		&offer.ID, &offer.OwnerID, &offer.Title, &offer.Text, &offer.Region, &offer.Salary, &offer.Profession,
		pq.Array(&offerImages), &offer.CreatedAt, &offer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	app.Images = nonNil(appImages)
	offer.Images = nonNil(offerImages)
	app.Offer = &offer
	return &app, nil
}

// Create inserts a new application
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (offer_id, name, phone, region, interest, applicant_id, status,
			contract, age, experience, salary_worker, images, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`

	now := time.Now().UTC()
	app.CreatedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.ApplicationStatusNew
	}
	app.Images = nonNil(app.Images)

	err := r.db.QueryRow(ctx, query,
		app.OfferID,
		app.Name,
		app.Phone,
		app.Region,
		app.Interest,
		app.ApplicantID,
		app.Status,
		app.Contract,
		app.Age,
		app.Experience,
		app.SalaryWorker,
		pq.Array(app.Images),
		app.CreatedAt,
		app.UpdatedAt,
	).Scan(&app.ID)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return apperror.NotFound("Vacancy not found")
		}
		return err
	}
	return nil
}

// GetByID retrieves an application joined with its vacancy
func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `
		SELECT ` + applicationWithOfferColumns + `
		FROM applications a
		JOIN vacancies v ON a.offer_id = v.id
		WHERE a.id = $1`

	app, err := scanApplicationWithOffer(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	return app, nil
}

// FetchByOwner lists applications for every vacancy the owner holds
func (r *applicationRepo) FetchByOwner(ctx context.Context, ownerID string) ([]domain.Application, error) {
	query := `
		SELECT ` + applicationWithOfferColumns + `
		FROM applications a
		JOIN vacancies v ON a.offer_id = v.id
		WHERE v.owner_id = $1
		ORDER BY a.created_at DESC, a.id DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := []domain.Application{}
	for rows.Next() {
		app, err := scanApplicationWithOffer(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}

// Update writes every mutable column back
func (r *applicationRepo) Update(ctx context.Context, app *domain.Application) error {
	query := `
		UPDATE applications
		SET name = $2, phone = $3, region = $4, interest = $5, applicant_id = $6, status = $7,
			contract = $8, age = $9, experience = $10, salary_worker = $11, images = $12, updated_at = $13
		WHERE id = $1`

	app.UpdatedAt = time.Now().UTC()
	app.Images = nonNil(app.Images)

	tag, err := r.db.Exec(ctx, query,
		app.ID,
		app.Name,
		app.Phone,
		app.Region,
		app.Interest,
		app.ApplicantID,
		app.Status,
		app.Contract,
		app.Age,
		app.Experience,
		app.SalaryWorker,
		pq.Array(app.Images),
		app.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
