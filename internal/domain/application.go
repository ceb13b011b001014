package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	ApplicationStatusNew       = "new"
	ApplicationStatusReviewed  = "reviewed"
	ApplicationStatusContacted = "contacted"
	ApplicationStatusRejected  = "rejected"
	ApplicationStatusHired     = "hired"
)

// IsValidApplicationStatus reports whether s is one of the known statuses.
// Any status may follow any other.
func IsValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusNew, ApplicationStatusReviewed, ApplicationStatusContacted,
		ApplicationStatusRejected, ApplicationStatusHired:
		return true
	}
	return false
}

// Application is a candidacy against a vacancy (the "offer").
type Application struct {
	ID           int64     `json:"id"`
	OfferID      int64     `json:"offerId"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Region       string    `json:"region"`
	Interest     *string   `json:"interest"`
	ApplicantID  *string   `json:"applicantId"`
	Status       string    `json:"status"`
	Contract     *string   `json:"contract"`
	Age          *int      `json:"age"`
	Experience   *string   `json:"experience"`
	SalaryWorker *string   `json:"salaryWorker"`
	Images       []string  `json:"images"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Joined data for employer responses
	Offer *Vacancy `json:"offer,omitempty"`
}

// ApplicationInput is a seeker submission.
type ApplicationInput struct {
	OfferID      int64  `validate:"required"`
	Name         string `validate:"notblank"`
	Phone        string `validate:"notblank"`
	Region       string `validate:"notblank"`
	Interest     *string
	ApplicantID  *string
	Contract     *string
	Age          *int
	Experience   *string
	SalaryWorker *string
	Images       []string
}

// ManualCandidateInput is a candidate typed in by an employer.
type ManualCandidateInput struct {
	Name         string `validate:"notblank"`
	Phone        string `validate:"notblank"`
	Region       string `validate:"notblank"`
	Interest     *string
	Contract     *string
	Age          *int
	Experience   *string
	SalaryWorker *string
	Status       string
	Images       []string
}

type ApplicationPatch struct {
	Name         Field[string]   `json:"name"`
	Phone        Field[string]   `json:"phone"`
	Region       Field[string]   `json:"region"`
	Interest     Field[string]   `json:"interest"`
	ApplicantID  Field[string]   `json:"applicantId"`
	Status       Field[string]   `json:"status"`
	Contract     Field[string]   `json:"contract"`
	Age          Field[int]      `json:"age"`
	Experience   Field[string]   `json:"experience"`
	SalaryWorker Field[string]   `json:"salaryWorker"`
	Images       Field[[]string] `json:"images"`
}

// Export formats for the employer candidate download
const (
	ExportFormatXLSX = "xlsx"
	ExportFormatCSV  = "csv"
)

// ExportableApplicationColumns lists the columns a download may contain, in
// default order.
var ExportableApplicationColumns = []string{
	"id", "vacancy", "name", "phone", "region", "interest", "status",
	"contract", "age", "experience", "salary_worker", "created_at",
}

type ApplicationExportRequest struct {
	Format  string
	Columns []string
}

type ExportFile struct {
	Data        []byte
	Filename    string
	ContentType string
}

// ApplicationRepository defines data access methods for applications
type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	// GetByID returns the application with Offer populated.
	GetByID(ctx context.Context, id int64) (*Application, error)
	FetchByOwner(ctx context.Context, ownerID string) ([]Application, error)
	Update(ctx context.Context, app *Application) error
}

// ApplicationUsecase defines business logic for applications
type ApplicationUsecase interface {
	// Seeker operations
	Submit(ctx context.Context, input ApplicationInput) (*Application, error)

	// Employer operations
	Update(ctx context.Context, id int64, employerID string, patch ApplicationPatch) (*Application, error)
	ListForEmployer(ctx context.Context, employerID string) ([]Application, error)
	CreateManual(ctx context.Context, employerID string, input ManualCandidateInput) (*Application, error)
	Export(ctx context.Context, employerID string, req ApplicationExportRequest) (*ExportFile, error)
}
