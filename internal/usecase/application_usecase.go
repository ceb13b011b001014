package usecase

import (
	"context"
	"errors"
	"strings"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const (
	msgVacancyNotFound = "Vacancy not found"
	msgForbidden       = "Forbidden"
	msgInvalidStatus   = "status must be one of: new, reviewed, contacted, rejected, hired"
)

type applicationUsecase struct {
	appRepo     domain.ApplicationRepository
	vacancyRepo domain.VacancyRepository
	validate    *validator.Validate
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(appRepo domain.ApplicationRepository, vacancyRepo domain.VacancyRepository, validate *validator.Validate) domain.ApplicationUsecase {
	return &applicationUsecase{
		appRepo:     appRepo,
		vacancyRepo: vacancyRepo,
		validate:    validate,
	}
}

// Submit records a seeker's application. Status always starts as new.
func (uc *applicationUsecase) Submit(ctx context.Context, input domain.ApplicationInput) (*domain.Application, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	if _, err := uc.vacancyRepo.GetByID(ctx, input.OfferID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(msgVacancyNotFound)
		}
		return nil, err
	}

	app := &domain.Application{
		OfferID:      input.OfferID,
		Name:         input.Name,
		Phone:        input.Phone,
		Region:       input.Region,
		Interest:     input.Interest,
		ApplicantID:  input.ApplicantID,
		Status:       domain.ApplicationStatusNew,
		Contract:     input.Contract,
		Age:          input.Age,
		Experience:   input.Experience,
		SalaryWorker: input.SalaryWorker,
		Images:       input.Images,
	}
	if err := uc.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// Update applies an employer's edits. Unlike vacancies, a foreign owner gets
// 403 rather than 404.
func (uc *applicationUsecase) Update(ctx context.Context, id int64, employerID string, patch domain.ApplicationPatch) (*domain.Application, error) {
	app, err := uc.appRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(msgNotFound)
		}
		return nil, err
	}
	if app.Offer == nil || app.Offer.OwnerID != employerID {
		return nil, apperror.Forbidden(msgForbidden)
	}

	for _, f := range []struct {
		dst   *string
		field domain.Field[string]
		label string
	}{
		{&app.Name, patch.Name, "name"},
		{&app.Phone, patch.Phone, "phone"},
		{&app.Region, patch.Region, "region"},
	} {
		if !f.field.Present() {
			continue
		}
		if strings.TrimSpace(*f.field.Value) == "" {
			return nil, apperror.BadRequest(f.label + " is required")
		}
		*f.dst = *f.field.Value
	}

	if patch.Status.Present() {
		if !domain.IsValidApplicationStatus(*patch.Status.Value) {
			return nil, apperror.BadRequest(msgInvalidStatus)
		}
		app.Status = *patch.Status.Value
	}

	applyOptional(&app.Interest, patch.Interest)
	applyOptional(&app.ApplicantID, patch.ApplicantID)
	applyOptional(&app.Contract, patch.Contract)
	applyOptional(&app.Age, patch.Age)
	applyOptional(&app.Experience, patch.Experience)
	applyOptional(&app.SalaryWorker, patch.SalaryWorker)
	if patch.Images.Present() {
		app.Images = *patch.Images.Value
	}

	if err := uc.appRepo.Update(ctx, app); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(msgNotFound)
		}
		return nil, err
	}
	return app, nil
}

// ListForEmployer returns candidates across every vacancy the employer owns
func (uc *applicationUsecase) ListForEmployer(ctx context.Context, employerID string) ([]domain.Application, error) {
	return uc.appRepo.FetchByOwner(ctx, employerID)
}

// CreateManual files a candidate the employer typed in. It is attached to
// the employer's oldest vacancy, or to a placeholder created on first use.
func (uc *applicationUsecase) CreateManual(ctx context.Context, employerID string, input domain.ManualCandidateInput) (*domain.Application, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	status := input.Status
	if status == "" {
		status = domain.ApplicationStatusNew
	}
	if !domain.IsValidApplicationStatus(status) {
		return nil, apperror.BadRequest(msgInvalidStatus)
	}

	emptySalary := ""
	placeholder := &domain.Vacancy{
		Title:  domain.PlaceholderVacancyTitle,
		Text:   domain.PlaceholderVacancyText,
		Region: input.Region,
		Salary: &emptySalary,
	}
	vacancy, err := uc.vacancyRepo.FirstOrCreateForOwner(ctx, employerID, placeholder)
	if err != nil {
		return nil, err
	}

	app := &domain.Application{
		OfferID:      vacancy.ID,
		Name:         input.Name,
		Phone:        input.Phone,
		Region:       input.Region,
		Interest:     input.Interest,
		Status:       status,
		Contract:     input.Contract,
		Age:          input.Age,
		Experience:   input.Experience,
		SalaryWorker: input.SalaryWorker,
		Images:       input.Images,
	}
	if err := uc.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}
	app.Offer = vacancy
	return app, nil
}
