package usecase

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"checkmaster/internal/domain/entities"
	"checkmaster/internal/infrastructure/logger"
	"checkmaster/internal/infrastructure/metrics"
	"checkmaster/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEmptyImage           = errors.New("image is empty")
	ErrInvalidImage         = errors.New("image could not be decoded")
	ErrExtractionFailure    = errors.New("vehicle data extraction failed")
	ErrExtractionDisabled   = errors.New("vehicle data extraction is not configured")
	ErrPhotoStorageDisabled = errors.New("photo storage is not configured")
	ErrNotScannableField    = errors.New("field type is not filled by a scan")
)

// ScanResult is the outcome of a vehicle scan. Value is the answer for the
// requested field type, when one was given.
type ScanResult struct {
	Vehicle   entities.VehicleData `json:"vehicle"`
	FieldType entities.FieldType   `json:"field_type,omitempty"`
	Value     string               `json:"value"`
}

// IVehicleScanUseCase fronts the image collaborators used during a run.
//
// Extraction failures are recoverable: the run goes on and the inspector may
// retry or type the data.
type IVehicleScanUseCase interface {
	Scan(ctx context.Context, image []byte, mimeType string, fieldType entities.FieldType) (ScanResult, error)
	UploadPhoto(ctx context.Context, image []byte, mimeType string) (string, error)
}

type VehicleScanUseCase struct {
	extractor   interfaces.IVehicleExtractor
	photos      interfaces.IPhotoStorage
	normalizer  interfaces.IImageNormalizer
	timeout     time.Duration
	photoPrefix string
	logger      *zap.Logger
	metrics     *metrics.Metrics
	now         func() time.Time
}

var _ IVehicleScanUseCase = (*VehicleScanUseCase)(nil)

// NewVehicleScanUseCase wires the scan collaborators. extractor and photos
// may be nil when the matching integration is not configured.
func NewVehicleScanUseCase(extractor interfaces.IVehicleExtractor, photos interfaces.IPhotoStorage, normalizer interfaces.IImageNormalizer, timeout time.Duration, photoPrefix string, log *zap.Logger, m *metrics.Metrics) *VehicleScanUseCase {
	return &VehicleScanUseCase{
		extractor:   extractor,
		photos:      photos,
		normalizer:  normalizer,
		timeout:     timeout,
		photoPrefix: photoPrefix,
		logger:      logger.OrNop(log).Named("scan.usecase"),
		metrics:     m,
		now:         time.Now,
	}
}

func (u *VehicleScanUseCase) Scan(ctx context.Context, image []byte, mimeType string, fieldType entities.FieldType) (ScanResult, error) {
	if fieldType != "" && !fieldType.AIAssisted() {
		return ScanResult{}, ErrNotScannableField
	}
	if u.extractor == nil {
		return ScanResult{}, ErrExtractionDisabled
	}
	data, mimeType, err := u.prepare(image, mimeType)
	if err != nil {
		return ScanResult{}, err
	}

	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	start := time.Now()
	vehicle, err := u.extractor.Extract(ctx, data, mimeType)
	elapsed := time.Since(start)
	switch {
	case err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded):
		u.metrics.RecordExtraction("timeout", elapsed)
		u.logger.Warn("extraction timed out", zap.Duration("elapsed", elapsed), zap.Error(err))
		return ScanResult{}, fmt.Errorf("%w: %v", ErrExtractionFailure, err)
	case err != nil:
		u.metrics.RecordExtraction("failure", elapsed)
		u.logger.Warn("extraction failed", zap.Duration("elapsed", elapsed), zap.Error(err))
		return ScanResult{}, fmt.Errorf("%w: %v", ErrExtractionFailure, err)
	case vehicle == nil:
		u.metrics.RecordExtraction("empty", elapsed)
		u.logger.Info("extraction returned no data", zap.Duration("elapsed", elapsed))
		return ScanResult{}, ErrExtractionFailure
	}
	u.metrics.RecordExtraction("success", elapsed)

	res := ScanResult{Vehicle: vehicle.Clone(), FieldType: fieldType}
	if res.Vehicle.IMEI == nil {
		res.Vehicle.IMEI = []string{}
	}
	if fieldType != "" {
		res.Value, _ = res.Vehicle.ValueFor(fieldType)
	}
	u.logger.Info("extraction succeeded",
		zap.String("placa", res.Vehicle.Placa),
		zap.Int("imei_count", len(res.Vehicle.IMEI)),
		zap.Duration("elapsed", elapsed),
	)
	return res, nil
}

// UploadPhoto stores an image for a photo field and returns its reference.
// Keys look like <prefix>/2026/01/<uuid>.jpg.
func (u *VehicleScanUseCase) UploadPhoto(ctx context.Context, image []byte, mimeType string) (string, error) {
	if u.photos == nil {
		return "", ErrPhotoStorageDisabled
	}
	data, mimeType, err := u.prepare(image, mimeType)
	if err != nil {
		return "", err
	}
	now := u.now().UTC()
	key := path.Join(u.photoPrefix, now.Format("2006"), now.Format("01"), uuid.NewString()+extensionFor(mimeType))
	ref, err := u.photos.Upload(ctx, key, data, mimeType)
	if err != nil {
		u.logger.Error("photo upload failed", zap.String("key", key), zap.Error(err))
		return "", err
	}
	u.logger.Info("photo uploaded", zap.String("key", key), zap.Int("bytes", len(data)))
	return ref, nil
}

func (u *VehicleScanUseCase) prepare(image []byte, mimeType string) ([]byte, string, error) {
	if len(image) == 0 {
		return nil, "", ErrEmptyImage
	}
	if u.normalizer == nil {
		return image, mimeType, nil
	}
	data, normalizedType, err := u.normalizer.Normalize(image)
	if err != nil {
		u.logger.Info("image rejected", zap.String("mime_type", mimeType), zap.Error(err))
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return data, normalizedType, nil
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
