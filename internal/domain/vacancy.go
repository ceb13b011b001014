package domain

import (
	"context"
	"time"
)

// Placeholder vacancy used to hold candidates entered by hand.
const (
	PlaceholderVacancyTitle = "Candidat manual adăugat"
	PlaceholderVacancyText  = "Candidat adăugat manual de angajator"
)

type Vacancy struct {
	ID         int64     `json:"id"`
	OwnerID    string    `json:"ownerId"`
	Title      string    `json:"title"`
	Text       string    `json:"text"`
	Region     string    `json:"region"`
	Salary     *string   `json:"salary"`
	Profession *string   `json:"profession"`
	Images     []string  `json:"images"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type VacancyInput struct {
	Title      string `validate:"notblank"`
	Text       string `validate:"notblank"`
	Region     string `validate:"notblank"`
	Salary     *string
	Profession *string
	Images     []string
}

// VacancyPatch holds the fields a PUT may change. Absent fields are kept.
type VacancyPatch struct {
	Title      Field[string]   `json:"title"`
	Text       Field[string]   `json:"text"`
	Region     Field[string]   `json:"region"`
	Salary     Field[string]   `json:"salary"`
	Profession Field[string]   `json:"profession"`
	Images     Field[[]string] `json:"images"`
}

type VacancyRepository interface {
	Create(ctx context.Context, vacancy *Vacancy) error
	GetByID(ctx context.Context, id int64) (*Vacancy, error)
	FetchAll(ctx context.Context) ([]Vacancy, error)
	FetchByOwner(ctx context.Context, ownerID string) ([]Vacancy, error)
	Update(ctx context.Context, vacancy *Vacancy) error
	// DeleteWithApplications removes the vacancy and every application
	// referencing it in a single transaction.
	DeleteWithApplications(ctx context.Context, id int64) error
	// FirstOrCreateForOwner returns the owner's oldest vacancy, inserting
	// placeholder when the owner has none.
	FirstOrCreateForOwner(ctx context.Context, ownerID string, placeholder *Vacancy) (*Vacancy, error)
}

type VacancyUsecase interface {
	ListAll(ctx context.Context) ([]Vacancy, error)
	ListMine(ctx context.Context, ownerID string) ([]Vacancy, error)
	Create(ctx context.Context, ownerID string, input VacancyInput) (*Vacancy, error)
	Update(ctx context.Context, id int64, ownerID string, patch VacancyPatch) (*Vacancy, error)
	Delete(ctx context.Context, id int64, ownerID string) error
}
