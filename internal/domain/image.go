package domain

import "context"

// ImageProvider hands out one-time upload URLs. Image bytes never pass
// through this service.
type ImageProvider interface {
	Name() string
	DirectUpload(ctx context.Context) (*DirectUpload, error)
	DeliveryURL(imageID string) (string, error)
	Delivery() ImageDelivery
}

// ImageDelivery describes how uploaded images are served.
type ImageDelivery struct {
	Provider    string `json:"provider"`
	AccountHash string `json:"accountHash,omitempty"`
	Variant     string `json:"variant,omitempty"`
	BaseURL     string `json:"baseUrl,omitempty"`
}

// DirectUpload is a one-time URL the client sends the image to. ID is the
// provider's handle for the future image.
type DirectUpload struct {
	UploadURL string `json:"uploadURL"`
	ID        string `json:"id,omitempty"`
}

type ImageInfo struct {
	ImageID  string `json:"imageId"`
	ImageURL string `json:"imageUrl"`
	Status   string `json:"status"`
}

type ImageDebug struct {
	ImageID     string `json:"imageId"`
	Provider    string `json:"provider"`
	AccountHash string `json:"accountHash,omitempty"`
	Variant     string `json:"variant,omitempty"`
	ImageURL    string `json:"imageUrl"`
	Note        string `json:"note"`
}

type ImageUsecase interface {
	DirectUpload(ctx context.Context) (*DirectUpload, error)
	Info(ctx context.Context, imageID string) (*ImageInfo, error)
	Debug(ctx context.Context, imageID string) (*ImageDebug, error)
}
