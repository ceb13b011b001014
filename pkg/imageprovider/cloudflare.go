package imageprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jobboard-backend/internal/domain"
)

const (
	defaultCloudflareAPI      = "https://api.cloudflare.com/client/v4"
	defaultCloudflareDelivery = "https://imagedelivery.net"
	defaultVariant            = "public"
)

// CloudflareConfig holds Cloudflare Images credentials.
type CloudflareConfig struct {
	AccountID   string
	Token       string
	AccountHash string
	Variant     string

	// Overridable for tests
	APIBase      string
	DeliveryBase string
	HTTPClient   *http.Client
}

// Cloudflare issues direct creator upload URLs from Cloudflare Images.
type Cloudflare struct {
	cfg    CloudflareConfig
	client *http.Client
}

func NewCloudflare(cfg CloudflareConfig) *Cloudflare {
	if cfg.APIBase == "" {
		cfg.APIBase = defaultCloudflareAPI
	}
	if cfg.DeliveryBase == "" {
		cfg.DeliveryBase = defaultCloudflareDelivery
	}
	if cfg.Variant == "" {
		cfg.Variant = defaultVariant
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Cloudflare{cfg: cfg, client: client}
}

func (c *Cloudflare) Name() string {
	return NameCloudflare
}

type cloudflareResponse struct {
	Success bool `json:"success"`
	Result  struct {
		ID        string `json:"id"`
		UploadURL string `json:"uploadURL"`
	} `json:"result"`
	Errors []struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

func (c *Cloudflare) DirectUpload(ctx context.Context) (*domain.DirectUpload, error) {
	if c.cfg.AccountID == "" || c.cfg.Token == "" {
		return nil, ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/accounts/%s/images/v2/direct_upload",
		strings.TrimRight(c.cfg.APIBase, "/"), url.PathEscape(c.cfg.AccountID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUpstream, err)
	}

	var parsed cloudflareResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: status %d: invalid response", ErrUpstream, resp.StatusCode)
	}
	if !parsed.Success || parsed.Result.UploadURL == "" {
		msgs := make([]string, 0, len(parsed.Errors))
		for _, e := range parsed.Errors {
			msgs = append(msgs, fmt.Sprintf("%d %s", e.Code, e.Message))
		}
		return nil, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, strings.Join(msgs, "; "))
	}

	return &domain.DirectUpload{
		UploadURL: parsed.Result.UploadURL,
		ID:        parsed.Result.ID,
	}, nil
}

// DeliveryURL returns https://imagedelivery.net/<hash>/<id>/<variant>.
func (c *Cloudflare) DeliveryURL(imageID string) (string, error) {
	if c.cfg.AccountHash == "" {
		return "", ErrNotConfigured
	}
	return fmt.Sprintf("%s/%s/%s/%s",
		strings.TrimRight(c.cfg.DeliveryBase, "/"),
		url.PathEscape(c.cfg.AccountHash),
		url.PathEscape(imageID),
		url.PathEscape(c.cfg.Variant),
	), nil
}

func (c *Cloudflare) Delivery() domain.ImageDelivery {
	return domain.ImageDelivery{
		Provider:    NameCloudflare,
		AccountHash: c.cfg.AccountHash,
		Variant:     c.cfg.Variant,
		BaseURL:     c.cfg.DeliveryBase,
	}
}
