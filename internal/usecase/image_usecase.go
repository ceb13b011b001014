package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/imageprovider"
)

const (
	msgProviderNotConfigured = "Image provider not configured"
	msgProviderError         = "Image provider error"
	imageInfoStatus          = "Use this URL to access the image"
	imageDebugNote           = "Make sure the public variant is configured in Cloudflare Images dashboard"
)

type imageUsecase struct {
	provider domain.ImageProvider
}

func NewImageUsecase(provider domain.ImageProvider) domain.ImageUsecase {
	return &imageUsecase{provider: provider}
}

func providerError(err error) error {
	if errors.Is(err, imageprovider.ErrNotConfigured) {
		return apperror.New(http.StatusInternalServerError, msgProviderNotConfigured, err)
	}
	return apperror.New(http.StatusInternalServerError, msgProviderError, err)
}

// DirectUpload asks the provider for a one-time upload URL. No retries.
func (u *imageUsecase) DirectUpload(ctx context.Context) (*domain.DirectUpload, error) {
	upload, err := u.provider.DirectUpload(ctx)
	if err != nil {
		return nil, providerError(err)
	}
	return upload, nil
}

func (u *imageUsecase) Info(ctx context.Context, imageID string) (*domain.ImageInfo, error) {
	if strings.TrimSpace(imageID) == "" {
		return nil, apperror.BadRequest("imageId is required")
	}
	imageURL, err := u.provider.DeliveryURL(imageID)
	if err != nil {
		return nil, providerError(err)
	}
	return &domain.ImageInfo{
		ImageID:  imageID,
		ImageURL: imageURL,
		Status:   imageInfoStatus,
	}, nil
}

func (u *imageUsecase) Debug(ctx context.Context, imageID string) (*domain.ImageDebug, error) {
	if strings.TrimSpace(imageID) == "" {
		return nil, apperror.BadRequest("imageId is required")
	}
	imageURL, err := u.provider.DeliveryURL(imageID)
	if err != nil {
		return nil, providerError(err)
	}

	delivery := u.provider.Delivery()
	note := imageDebugNote
	if delivery.Provider != imageprovider.NameCloudflare {
		note = "Make sure the bucket or its CDN allows public reads"
	}
	return &domain.ImageDebug{
		ImageID:     imageID,
		Provider:    delivery.Provider,
		AccountHash: delivery.AccountHash,
		Variant:     delivery.Variant,
		ImageURL:    imageURL,
		Note:        note,
	}, nil
}
