package imageprovider

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"jobboard-backend/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const (
	S3ProviderAWS    = "aws"
	S3ProviderWasabi = "wasabi"

	defaultPresignExpiry = 15 * time.Minute
	objectPrefix         = "images/"
)

// WasabiEndpoints maps regions to Wasabi endpoints
var WasabiEndpoints = map[string]string{
	"us-east-1":      "s3.us-east-1.wasabisys.com",
	"us-east-2":      "s3.us-east-2.wasabisys.com",
	"us-west-1":      "s3.us-west-1.wasabisys.com",
	"eu-central-1":   "s3.eu-central-1.wasabisys.com",
	"eu-west-1":      "s3.eu-west-1.wasabisys.com",
	"eu-west-2":      "s3.eu-west-2.wasabisys.com",
	"ap-northeast-1": "s3.ap-northeast-1.wasabisys.com",
	"ap-northeast-2": "s3.ap-northeast-2.wasabisys.com",
	"ap-southeast-1": "s3.ap-southeast-1.wasabisys.com",
	"ap-southeast-2": "s3.ap-southeast-2.wasabisys.com",
}

// S3Config holds configuration for S3-compatible storage
type S3Config struct {
	Provider        string // "aws" or "wasabi"
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
	PublicBaseURL   string // optional CDN or bucket website in front of the bucket

	// Wasabi-specific settings
	WasabiEndpoint string // e.g., "s3.ap-southeast-1.wasabisys.com"

	Expiry time.Duration
}

// S3 hands out presigned PUT URLs for a bucket.
type S3 struct {
	cfg     S3Config
	presign *s3.PresignClient
	baseURL string
	newKey  func() string
}

// NewS3 prepares a presign client. Missing credentials are not an error;
// the provider then answers every call with ErrNotConfigured.
func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	if cfg.Expiry <= 0 {
		cfg.Expiry = defaultPresignExpiry
	}
	if cfg.Provider == S3ProviderWasabi && cfg.WasabiEndpoint == "" {
		if endpoint, ok := WasabiEndpoints[cfg.Region]; ok {
			cfg.WasabiEndpoint = endpoint
		} else {
			// Default to ap-southeast-1 if region not found
			cfg.WasabiEndpoint = "s3.ap-southeast-1.wasabisys.com"
		}
	}

	p := &S3{
		cfg:     cfg,
		baseURL: publicBaseURL(cfg),
		newKey: func() string {
			return objectPrefix + uuid.NewString()
		},
	}
	if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" || cfg.Bucket == "" || cfg.Region == "" {
		return p, nil
	}

	client, err := newS3Client(ctx, cfg)
	if err != nil {
		return nil, err
	}
	p.presign = s3.NewPresignClient(client)
	return p, nil
}

func newS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	switch cfg.Provider {
	case S3ProviderWasabi:
		// Wasabi requires custom endpoint and path-style addressing
		return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String("https://" + cfg.WasabiEndpoint)
			o.UsePathStyle = true
		}), nil
	default:
		return s3.NewFromConfig(awsCfg), nil
	}
}

func publicBaseURL(cfg S3Config) string {
	if cfg.PublicBaseURL != "" {
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	}
	if cfg.Bucket == "" {
		return ""
	}
	if cfg.Provider == S3ProviderWasabi {
		return "https://" + cfg.WasabiEndpoint + "/" + cfg.Bucket
	}
	if cfg.Region == "" {
		return ""
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}

func (p *S3) Name() string {
	return NameS3
}

func (p *S3) DirectUpload(ctx context.Context) (*domain.DirectUpload, error) {
	if p.presign == nil {
		return nil, ErrNotConfigured
	}

	key := p.newKey()
	req, err := p.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(p.cfg.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(p.cfg.Expiry))
	if err != nil {
		return nil, fmt.Errorf("%w: presign: %v", ErrUpstream, err)
	}

	return &domain.DirectUpload{UploadURL: req.URL, ID: key}, nil
}

// DeliveryURL maps an object key to its public URL.
func (p *S3) DeliveryURL(imageID string) (string, error) {
	if p.baseURL == "" {
		return "", ErrNotConfigured
	}
	segments := strings.Split(strings.TrimLeft(imageID, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return p.baseURL + "/" + strings.Join(segments, "/"), nil
}

func (p *S3) Delivery() domain.ImageDelivery {
	return domain.ImageDelivery{
		Provider: NameS3,
		BaseURL:  p.baseURL,
	}
}
