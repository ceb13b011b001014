package domain

import "context"

type RedisHealth struct {
	Status string `json:"status"`
	Pong   string `json:"pong"`
	Ms     int64  `json:"ms"`
}

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
	Redis(ctx context.Context) (*RedisHealth, error)
	Database(ctx context.Context) error
}
