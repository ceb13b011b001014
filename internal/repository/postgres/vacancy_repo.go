package postgres

import (
	"context"
	"errors"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const vacancyColumns = `id, owner_id, title, text, region, salary, profession, images, created_at, updated_at`

// rowScanner is satisfied by pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanVacancy(row rowScanner) (*domain.Vacancy, error) {
	var v domain.Vacancy
	var images []string
	err := row.Scan(
		&v.ID, &v.OwnerID, &v.Title, &v.Text, &v.Region, &v.Salary, &v.Profession,
		pq.Array(&images), &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.Images = nonNil(images)
	return &v, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

type vacancyRepo struct {
	db *pgxpool.Pool
}

func NewVacancyRepository(db *pgxpool.Pool) domain.VacancyRepository {
	return &vacancyRepo{db: db}
}

func (r *vacancyRepo) Create(ctx context.Context, vacancy *domain.Vacancy) error {
	return insertVacancy(ctx, r.db, vacancy)
}

type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertVacancy(ctx context.Context, q queryRower, vacancy *domain.Vacancy) error {
	query := `INSERT INTO vacancies (owner_id, title, text, region, salary, profession, images, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`

	now := time.Now().UTC()
	vacancy.CreatedAt = now
	vacancy.UpdatedAt = now
	vacancy.Images = nonNil(vacancy.Images)

	err := q.QueryRow(ctx, query,
		vacancy.OwnerID, vacancy.Title, vacancy.Text, vacancy.Region, vacancy.Salary, vacancy.Profession,
		pq.Array(vacancy.Images), vacancy.CreatedAt, vacancy.UpdatedAt,
	).Scan(&vacancy.ID)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return apperror.NotFound("User not found")
		}
		return err
	}
	return nil
}

func (r *vacancyRepo) GetByID(ctx context.Context, id int64) (*domain.Vacancy, error) {
	query := `SELECT ` + vacancyColumns + ` FROM vacancies WHERE id = $1`
	v, err := scanVacancy(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	return v, nil
}

func (r *vacancyRepo) FetchAll(ctx context.Context) ([]domain.Vacancy, error) {
	query := `SELECT ` + vacancyColumns + ` FROM vacancies ORDER BY created_at DESC, id DESC`
	return r.fetch(ctx, query)
}

func (r *vacancyRepo) FetchByOwner(ctx context.Context, ownerID string) ([]domain.Vacancy, error) {
	query := `SELECT ` + vacancyColumns + ` FROM vacancies WHERE owner_id = $1 ORDER BY created_at DESC, id DESC`
	return r.fetch(ctx, query, ownerID)
}

func (r *vacancyRepo) fetch(ctx context.Context, query string, args ...any) ([]domain.Vacancy, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vacancies := []domain.Vacancy{}
	for rows.Next() {
		v, err := scanVacancy(rows)
		if err != nil {
			return nil, err
		}
		vacancies = append(vacancies, *v)
	}
	return vacancies, rows.Err()
}

func (r *vacancyRepo) Update(ctx context.Context, vacancy *domain.Vacancy) error {
	query := `UPDATE vacancies
              SET title = $2, text = $3, region = $4, salary = $5, profession = $6, images = $7, updated_at = $8
              WHERE id = $1`

	vacancy.UpdatedAt = time.Now().UTC()
	vacancy.Images = nonNil(vacancy.Images)

	tag, err := r.db.Exec(ctx, query,
		vacancy.ID, vacancy.Title, vacancy.Text, vacancy.Region, vacancy.Salary, vacancy.Profession,
		pq.Array(vacancy.Images), vacancy.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteWithApplications locks the vacancy row first so no application can
// be inserted against it between the two deletes.
func (r *vacancyRepo) DeleteWithApplications(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var locked int64
	err = tx.QueryRow(ctx, `SELECT id FROM vacancies WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err != nil {
		return notFound(err)
	}

	if _, err = tx.Exec(ctx, `DELETE FROM applications WHERE offer_id = $1`, id); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `DELETE FROM vacancies WHERE id = $1`, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// FirstOrCreateForOwner serialises callers per owner with a transaction
// scoped advisory lock, so at most one placeholder is ever inserted.
func (r *vacancyRepo) FirstOrCreateForOwner(ctx context.Context, ownerID string, placeholder *domain.Vacancy) (*domain.Vacancy, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if _, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1::text))`, ownerID); err != nil {
		return nil, err
	}

	query := `SELECT ` + vacancyColumns + ` FROM vacancies WHERE owner_id = $1 ORDER BY created_at ASC, id ASC LIMIT 1`
	existing, err := scanVacancy(tx.QueryRow(ctx, query, ownerID))
	switch {
	case err == nil:
		if err := tx.Commit(ctx); err != nil {
			return nil, err
		}
		return existing, nil
	case !errors.Is(err, pgx.ErrNoRows):
		return nil, err
	}

	created := *placeholder
	created.OwnerID = ownerID
	if err := insertVacancy(ctx, tx, &created); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &created, nil
}
