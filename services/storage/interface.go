package storage

import "context"

// StorageService defines the interface for media storage operations.
type StorageService interface {
	// UploadImage uploads a data-URL encoded image into the given folder and
	// returns the permanent secure URL.
	UploadImage(ctx context.Context, dataURL, folder, publicID string) (string, error)
	// DeleteImage removes a previously uploaded image by its public ID.
	DeleteImage(ctx context.Context, publicID string) error
}
