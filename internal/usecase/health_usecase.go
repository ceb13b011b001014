package usecase

import (
	"context"
	"errors"

	"jobboard-backend/internal/domain"
	pkgredis "jobboard-backend/pkg/redis"

	"github.com/redis/go-redis/v9"
)

// DBPinger is satisfied by *pgxpool.Pool.
type DBPinger interface {
	Ping(ctx context.Context) error
}

type healthUsecase struct {
	db    DBPinger
	redis *redis.Client
}

// NewHealthUsecase accepts a nil redis client when Redis is not configured.
func NewHealthUsecase(db DBPinger, rdb *redis.Client) domain.HealthUsecase {
	return &healthUsecase{db: db, redis: rdb}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	return map[string]string{
		"status": "ok",
	}
}

func (u *healthUsecase) Redis(ctx context.Context) (*domain.RedisHealth, error) {
	pong, elapsed, err := pkgredis.Ping(ctx, u.redis)
	if err != nil {
		return nil, err
	}
	return &domain.RedisHealth{
		Status: "ok",
		Pong:   pong,
		Ms:     elapsed.Milliseconds(),
	}, nil
}

func (u *healthUsecase) Database(ctx context.Context) error {
	if u.db == nil {
		return errors.New("database not configured")
	}
	return u.db.Ping(ctx)
}
