package interfaces

import (
	"context"

	"checkmaster/internal/domain/entities"
)

// IVehicleExtractor reads plate, make, model and device serials from a photo.
// A nil result with a nil error means nothing usable was found.
type IVehicleExtractor interface {
	Extract(ctx context.Context, image []byte, mimeType string) (*entities.VehicleData, error)
}

// IPhotoStorage keeps captured images and returns the reference stored in a
// photo field.
type IPhotoStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// IImageNormalizer prepares a captured image for extraction and storage.
type IImageNormalizer interface {
	Normalize(data []byte) ([]byte, string, error)
}
