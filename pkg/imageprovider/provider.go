package imageprovider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jobboard-backend/internal/domain"
)

const (
	NameCloudflare = "cloudflare"
	NameS3         = "s3"
)

var (
	// ErrNotConfigured means the provider is missing credentials.
	ErrNotConfigured = errors.New("image provider not configured")
	// ErrUpstream wraps a failed or rejected provider call.
	ErrUpstream = errors.New("image provider error")
)

// Config selects and configures a provider.
type Config struct {
	Provider   string
	Cloudflare CloudflareConfig
	S3         S3Config
}

// New builds the provider named by cfg.Provider. A provider with missing
// credentials is still returned; its calls fail with ErrNotConfigured.
func New(ctx context.Context, cfg Config) (domain.ImageProvider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", NameCloudflare:
		return NewCloudflare(cfg.Cloudflare), nil
	case NameS3:
		return NewS3(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unknown image provider %q", cfg.Provider)
	}
}
