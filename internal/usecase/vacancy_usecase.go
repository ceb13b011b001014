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

const msgNotFound = "Not found"

type vacancyUsecase struct {
	vacancyRepo domain.VacancyRepository
	validate    *validator.Validate
}

func NewVacancyUsecase(vacancyRepo domain.VacancyRepository, validate *validator.Validate) domain.VacancyUsecase {
	return &vacancyUsecase{
		vacancyRepo: vacancyRepo,
		validate:    validate,
	}
}

func (u *vacancyUsecase) ListAll(ctx context.Context) ([]domain.Vacancy, error) {
	return u.vacancyRepo.FetchAll(ctx)
}

func (u *vacancyUsecase) ListMine(ctx context.Context, ownerID string) ([]domain.Vacancy, error) {
	return u.vacancyRepo.FetchByOwner(ctx, ownerID)
}

func (u *vacancyUsecase) Create(ctx context.Context, ownerID string, input domain.VacancyInput) (*domain.Vacancy, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	vacancy := &domain.Vacancy{
		OwnerID:    ownerID,
		Title:      input.Title,
		Text:       input.Text,
		Region:     input.Region,
		Salary:     input.Salary,
		Profession: input.Profession,
		Images:     input.Images,
	}
	if err := u.vacancyRepo.Create(ctx, vacancy); err != nil {
		return nil, err
	}
	return vacancy, nil
}

// ownedVacancy hides other owners' vacancies behind the same 404 as a
// missing id.
func (u *vacancyUsecase) ownedVacancy(ctx context.Context, id int64, ownerID string) (*domain.Vacancy, error) {
	vacancy, err := u.vacancyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(msgNotFound)
		}
		return nil, err
	}
	if vacancy.OwnerID != ownerID {
		return nil, apperror.NotFound(msgNotFound)
	}
	return vacancy, nil
}

func (u *vacancyUsecase) Update(ctx context.Context, id int64, ownerID string, patch domain.VacancyPatch) (*domain.Vacancy, error) {
	vacancy, err := u.ownedVacancy(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if err := applyRequired(&vacancy.Title, patch.Title, "title"); err != nil {
		return nil, err
	}
	if err := applyRequired(&vacancy.Text, patch.Text, "text"); err != nil {
		return nil, err
	}
	if err := applyRequired(&vacancy.Region, patch.Region, "region"); err != nil {
		return nil, err
	}
	applyOptional(&vacancy.Salary, patch.Salary)
	applyOptional(&vacancy.Profession, patch.Profession)
	if patch.Images.Present() {
		vacancy.Images = derefSlice(patch.Images.Value)
	}

	if err := u.vacancyRepo.Update(ctx, vacancy); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(msgNotFound)
		}
		return nil, err
	}
	return vacancy, nil
}

func (u *vacancyUsecase) Delete(ctx context.Context, id int64, ownerID string) error {
	if _, err := u.ownedVacancy(ctx, id, ownerID); err != nil {
		return err
	}
	if err := u.vacancyRepo.DeleteWithApplications(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound(msgNotFound)
		}
		return err
	}
	return nil
}

// applyRequired copies a present value into dst. Null and blank strings are
// rejected since the column cannot be empty.
func applyRequired(dst *string, f domain.Field[string], label string) error {
	if !f.Set {
		return nil
	}
	if f.Value == nil || strings.TrimSpace(*f.Value) == "" {
		return apperror.BadRequest(label + " is required")
	}
	*dst = *f.Value
	return nil
}

// applyOptional copies a present value, or clears dst on null.
func applyOptional[T any](dst **T, f domain.Field[T]) {
	if !f.Set {
		return
	}
	if f.Value == nil {
		*dst = nil
		return
	}
	v := *f.Value
	*dst = &v
}

func derefSlice(s *[]string) []string {
	if s == nil {
		return []string{}
	}
	return *s
}
