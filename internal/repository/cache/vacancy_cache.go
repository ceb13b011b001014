package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/logger"
)

// VacancyListKey holds the serialized public vacancy list.
const VacancyListKey = "vacancies:all"

const DefaultTTL = 30 * time.Second

type vacancyCache struct {
	domain.VacancyRepository
	store Store
	ttl   time.Duration
}

// NewVacancyCache wraps repo so FetchAll is served from store. Writes go to
// repo and then drop the cached list.
func NewVacancyCache(repo domain.VacancyRepository, store Store, ttl time.Duration) domain.VacancyRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &vacancyCache{VacancyRepository: repo, store: store, ttl: ttl}
}

func (c *vacancyCache) FetchAll(ctx context.Context) ([]domain.Vacancy, error) {
	raw, err := c.store.Get(ctx, VacancyListKey)
	if err == nil {
		var cached []domain.Vacancy
		if jsonErr := json.Unmarshal(raw, &cached); jsonErr == nil {
			return cached, nil
		}
		logger.Log.Warn("vacancy cache: corrupt entry, falling back", "key", VacancyListKey)
	} else if !errors.Is(err, ErrMiss) {
		logger.Log.Warn("vacancy cache: read failed", "error", err)
	}

	vacancies, err := c.VacancyRepository.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(vacancies); err == nil {
		if err := c.store.Set(ctx, VacancyListKey, payload, c.ttl); err != nil {
			logger.Log.Warn("vacancy cache: write failed", "error", err)
		}
	}
	return vacancies, nil
}

func (c *vacancyCache) Create(ctx context.Context, vacancy *domain.Vacancy) error {
	if err := c.VacancyRepository.Create(ctx, vacancy); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *vacancyCache) Update(ctx context.Context, vacancy *domain.Vacancy) error {
	if err := c.VacancyRepository.Update(ctx, vacancy); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *vacancyCache) DeleteWithApplications(ctx context.Context, id int64) error {
	if err := c.VacancyRepository.DeleteWithApplications(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *vacancyCache) FirstOrCreateForOwner(ctx context.Context, ownerID string, placeholder *domain.Vacancy) (*domain.Vacancy, error) {
	v, err := c.VacancyRepository.FirstOrCreateForOwner(ctx, ownerID, placeholder)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return v, nil
}

// invalidate runs after the write committed, even if the caller went away.
func (c *vacancyCache) invalidate(ctx context.Context) {
	if err := c.store.Delete(context.WithoutCancel(ctx), VacancyListKey); err != nil {
		logger.Log.Warn("vacancy cache: invalidate failed", "error", err)
	}
}
