package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"checkmaster/internal/domain/entities"
	mock_interfaces "checkmaster/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type scanDeps struct {
	extractor  *mock_interfaces.MockIVehicleExtractor
	photos     *mock_interfaces.MockIPhotoStorage
	normalizer *mock_interfaces.MockIImageNormalizer
}

func newScanUseCase(t *testing.T, timeout time.Duration) (*VehicleScanUseCase, scanDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := scanDeps{
		extractor:  mock_interfaces.NewMockIVehicleExtractor(ctrl),
		photos:     mock_interfaces.NewMockIPhotoStorage(ctrl),
		normalizer: mock_interfaces.NewMockIImageNormalizer(ctrl),
	}
	uc := NewVehicleScanUseCase(deps.extractor, deps.photos, deps.normalizer, timeout, "photos", nil, nil)
	return uc, deps
}

func TestVehicleScanUseCase_Scan(t *testing.T) {
	img := []byte{0xff, 0xd8, 0xff}

	t.Run("rejects non scan field type", func(t *testing.T) {
		uc, _ := newScanUseCase(t, 0)
		if _, err := uc.Scan(context.Background(), img, "image/jpeg", entities.FieldTypePrice); !errors.Is(err, ErrNotScannableField) {
			t.Fatalf("expected ErrNotScannableField, got %v", err)
		}
	})

	t.Run("disabled extractor", func(t *testing.T) {
		uc := NewVehicleScanUseCase(nil, nil, nil, 0, "", nil, nil)
		if _, err := uc.Scan(context.Background(), img, "image/jpeg", ""); !errors.Is(err, ErrExtractionDisabled) {
			t.Fatalf("expected ErrExtractionDisabled, got %v", err)
		}
	})

	t.Run("empty image", func(t *testing.T) {
		uc, _ := newScanUseCase(t, 0)
		if _, err := uc.Scan(context.Background(), nil, "image/jpeg", ""); !errors.Is(err, ErrEmptyImage) {
			t.Fatalf("expected ErrEmptyImage, got %v", err)
		}
	})

	t.Run("undecodable image", func(t *testing.T) {
		uc, deps := newScanUseCase(t, 0)
		deps.normalizer.EXPECT().Normalize(img).Return(nil, "", errors.New("unknown format"))
		if _, err := uc.Scan(context.Background(), img, "image/jpeg", ""); !errors.Is(err, ErrInvalidImage) {
			t.Fatalf("expected ErrInvalidImage, got %v", err)
		}
	})

	t.Run("extractor failure is recoverable", func(t *testing.T) {
		uc, deps := newScanUseCase(t, 0)
		deps.normalizer.EXPECT().Normalize(img).Return([]byte("jpeg"), "image/jpeg", nil)
		deps.extractor.EXPECT().Extract(gomock.Any(), []byte("jpeg"), "image/jpeg").Return(nil, errors.New("quota"))
		_, err := uc.Scan(context.Background(), img, "image/png", entities.FieldTypeAIPlaca)
		if !errors.Is(err, ErrExtractionFailure) || !strings.Contains(err.Error(), "quota") {
			t.Fatalf("expected wrapped ErrExtractionFailure, got %v", err)
		}
	})

	t.Run("empty result", func(t *testing.T) {
		uc, deps := newScanUseCase(t, 0)
		deps.normalizer.EXPECT().Normalize(img).Return(img, "image/jpeg", nil)
		deps.extractor.EXPECT().Extract(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		if _, err := uc.Scan(context.Background(), img, "image/jpeg", ""); !errors.Is(err, ErrExtractionFailure) {
			t.Fatalf("expected ErrExtractionFailure, got %v", err)
		}
	})

	t.Run("timeout", func(t *testing.T) {
		uc, deps := newScanUseCase(t, 10*time.Millisecond)
		deps.normalizer.EXPECT().Normalize(img).Return(img, "image/jpeg", nil)
		deps.extractor.EXPECT().Extract(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ []byte, _ string) (*entities.VehicleData, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			},
		)
		if _, err := uc.Scan(context.Background(), img, "image/jpeg", ""); !errors.Is(err, ErrExtractionFailure) {
			t.Fatalf("expected ErrExtractionFailure, got %v", err)
		}
	})

	t.Run("value for requested field", func(t *testing.T) {
		uc, deps := newScanUseCase(t, time.Second)
		deps.normalizer.EXPECT().Normalize(img).Return(img, "image/jpeg", nil)
		deps.extractor.EXPECT().Extract(gomock.Any(), gomock.Any(), gomock.Any()).Return(&entities.VehicleData{
			Placa:  "ABC1D23",
			Marca:  "Fiat",
			Modelo: "Uno",
		}, nil)

		res, err := uc.Scan(context.Background(), img, "image/jpeg", entities.FieldTypeAIBrandModel)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Value != "Fiat Uno" || res.FieldType != entities.FieldTypeAIBrandModel {
			t.Fatalf("unexpected result: %+v", res)
		}
		if res.Vehicle.IMEI == nil {
			t.Fatalf("imei list must not be nil")
		}
	})
}

func TestVehicleScanUseCase_UploadPhoto(t *testing.T) {
	img := []byte{0x89, 0x50, 0x4e, 0x47}

	t.Run("disabled storage", func(t *testing.T) {
		uc := NewVehicleScanUseCase(nil, nil, nil, 0, "", nil, nil)
		if _, err := uc.UploadPhoto(context.Background(), img, "image/png"); !errors.Is(err, ErrPhotoStorageDisabled) {
			t.Fatalf("expected ErrPhotoStorageDisabled, got %v", err)
		}
	})

	t.Run("dated key", func(t *testing.T) {
		uc, deps := newScanUseCase(t, 0)
		uc.now = func() time.Time { return time.Date(2026, 1, 9, 12, 0, 0, 0, time.UTC) }
		deps.normalizer.EXPECT().Normalize(img).Return([]byte("jpeg"), "image/jpeg", nil)
		deps.photos.EXPECT().Upload(gomock.Any(), gomock.Any(), []byte("jpeg"), "image/jpeg").DoAndReturn(
			func(_ context.Context, key string, _ []byte, _ string) (string, error) {
				if !strings.HasPrefix(key, "photos/2026/01/") || !strings.HasSuffix(key, ".jpg") {
					t.Fatalf("unexpected key %q", key)
				}
				return "s3://bucket/" + key, nil
			},
		)

		ref, err := uc.UploadPhoto(context.Background(), img, "image/png")
		if err != nil || !strings.HasPrefix(ref, "s3://bucket/photos/") {
			t.Fatalf("unexpected result err=%v ref=%q", err, ref)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		uc, deps := newScanUseCase(t, 0)
		deps.normalizer.EXPECT().Normalize(img).Return(img, "image/png", nil)
		deps.photos.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("denied"))
		if _, err := uc.UploadPhoto(context.Background(), img, "image/png"); err == nil {
			t.Fatalf("expected error")
		}
	})
}
