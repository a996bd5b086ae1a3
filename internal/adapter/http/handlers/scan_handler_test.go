package handlers

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"checkmaster/internal/adapter/http/handlers/mocks"
	"checkmaster/internal/domain/entities"
	"checkmaster/internal/usecase"

	"go.uber.org/mock/gomock"
)

func multipartRequest(t *testing.T, path string, image []byte, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if image != nil {
		fw, err := mw.CreateFormFile("image", "capture.jpg")
		if err != nil {
			t.Fatalf("create file: %v", err)
		}
		_, _ = fw.Write(image)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestScanHandler_Scan(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIVehicleScanUseCase(ctrl)
	h := NewScanHandler(uc, nil)
	r := newRouter()
	r.POST("/v1/scan", h.Scan)

	cases := []struct {
		name   string
		image  []byte
		fields map[string]string
		setup  func()
		status int
		code   string
	}{
		{name: "missing image", status: http.StatusBadRequest, code: "MISSING_IMAGE"},
		{name: "unknown field type", image: []byte("jpg"), fields: map[string]string{"field_type": "select_simple"}, status: http.StatusBadRequest, code: "INVALID_FIELD_TYPE"},
		{
			name: "extraction failure", image: []byte("jpg"),
			setup: func() {
				uc.EXPECT().Scan(gomock.Any(), []byte("jpg"), gomock.Any(), entities.FieldType("")).
					Return(usecase.ScanResult{}, fmt.Errorf("%w: quota", usecase.ErrExtractionFailure))
			},
			status: http.StatusUnprocessableEntity, code: "EXTRACTION_FAILED",
		},
		{
			name: "disabled", image: []byte("jpg"),
			setup: func() {
				uc.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.ScanResult{}, usecase.ErrExtractionDisabled)
			},
			status: http.StatusServiceUnavailable, code: "EXTRACTION_DISABLED",
		},
		{
			name: "plate", image: []byte("jpg"), fields: map[string]string{"field_type": "ai_placa"},
			setup: func() {
				uc.EXPECT().Scan(gomock.Any(), []byte("jpg"), gomock.Any(), entities.FieldTypeAIPlaca).Return(usecase.ScanResult{
					Vehicle:   entities.VehicleData{Placa: "ABC1D23"},
					FieldType: entities.FieldTypeAIPlaca,
					Value:     "ABC1D23",
				}, nil)
			},
			status: http.StatusOK,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.setup != nil {
				tc.setup()
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, multipartRequest(t, "/v1/scan", tc.image, tc.fields))
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d %s", tc.status, w.Code, w.Body.String())
			}
			body := decodeBody(t, w)
			if tc.code != "" && body["code"] != tc.code {
				t.Fatalf("expected code %s, got %s", tc.code, w.Body.String())
			}
			if tc.status == http.StatusOK && (body["value"] != "ABC1D23" || body["imei"] == nil) {
				t.Fatalf("unexpected body: %s", w.Body.String())
			}
		})
	}
}

func TestScanHandler_UploadPhoto(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIVehicleScanUseCase(ctrl)
	h := NewScanHandler(uc, nil)
	r := newRouter()
	r.POST("/v1/photos", h.UploadPhoto)

	uc.EXPECT().UploadPhoto(gomock.Any(), []byte("jpg"), gomock.Any()).Return("", usecase.ErrPhotoStorageDisabled)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "/v1/photos", []byte("jpg"), nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}

	uc.EXPECT().UploadPhoto(gomock.Any(), []byte("jpg"), gomock.Any()).Return("https://b.s3.us-east-1.amazonaws.com/photos/a.jpg", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "/v1/photos", []byte("jpg"), nil))
	if w.Code != http.StatusCreated || decodeBody(t, w)["url"] != "https://b.s3.us-east-1.amazonaws.com/photos/a.jpg" {
		t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
	}
}
