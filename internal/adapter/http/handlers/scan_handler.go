package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	response "checkmaster/internal/adapter/http/dto/response"
	"checkmaster/internal/domain/entities"
	"checkmaster/internal/infrastructure/logger"
	"checkmaster/internal/usecase"
	"checkmaster/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MaxImageBytes bounds an uploaded capture.
const MaxImageBytes = 10 << 20

var errImageTooLarge = pkg.NewDomainErrorSimple("IMAGE_TOO_LARGE", "A imagem excede o tamanho máximo", http.StatusRequestEntityTooLarge)

// ScanHandler receives camera captures for vehicle extraction and photo
// fields.

type ScanHandler struct {
	usecase usecase.IVehicleScanUseCase
	logger  *zap.Logger
}

func NewScanHandler(uc usecase.IVehicleScanUseCase, log *zap.Logger) *ScanHandler {
	return &ScanHandler{usecase: uc, logger: logger.OrNop(log).Named("scan.handler")}
}

// @Summary      Scan vehicle
// @Description  Extracts plate, make, model and IMEIs from a photo. field_type selects the value returned for an AI field
// @Tags         scan
// @Accept       multipart/form-data
// @Produce      json
// @Security     Bearer
// @Param        image       formData  file    true   "Captured image"
// @Param        field_type  formData  string  false  "ai_placa, ai_brand_model or ai_imei"
// @Success      200  {object}  response.ScanResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /scan [post]
func (h *ScanHandler) Scan(c *gin.Context) {
	image, mimeType, appErr := readImage(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	var fieldType entities.FieldType
	if raw := strings.TrimSpace(c.PostForm("field_type")); raw != "" {
		ft, err := entities.ParseFieldType(raw)
		if err != nil {
			appErr := mapScanError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		fieldType = ft
	}

	res, err := h.usecase.Scan(c.Request.Context(), image, mimeType, fieldType)
	if err != nil {
		h.logger.Info("scan failed", zap.String("field_type", string(fieldType)), zap.Error(err))
		appErr := mapScanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromScan(res))
}

// @Summary      Upload photo
// @Description  Stores a capture for a photo field and returns its reference
// @Tags         scan
// @Accept       multipart/form-data
// @Produce      json
// @Security     Bearer
// @Param        image  formData  file  true  "Captured image"
// @Success      201  {object}  response.PhotoResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /photos [post]
func (h *ScanHandler) UploadPhoto(c *gin.Context) {
	image, mimeType, appErr := readImage(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	url, err := h.usecase.UploadPhoto(c.Request.Context(), image, mimeType)
	if err != nil {
		h.logger.Warn("photo upload failed", zap.Error(err))
		appErr := mapScanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.PhotoResponse{URL: url})
}

func readImage(c *gin.Context) ([]byte, string, *pkg.AppError) {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil, "", pkg.NewDomainError("MISSING_IMAGE", "Envie a imagem no campo image", err, http.StatusBadRequest)
	}
	if fh.Size > MaxImageBytes {
		return nil, "", errImageTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return nil, "", mapCommonError(err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxImageBytes+1))
	if err != nil {
		return nil, "", mapCommonError(err)
	}
	if len(data) > MaxImageBytes {
		return nil, "", errImageTooLarge
	}
	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(data)
	}
	return data, mimeType, nil
}

func mapScanError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInvalidFieldType), errors.Is(err, usecase.ErrNotScannableField):
		return pkg.NewDomainError("INVALID_FIELD_TYPE", "Tipo de campo não aceita leitura por foto", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyImage), errors.Is(err, usecase.ErrInvalidImage):
		return pkg.NewDomainError("INVALID_IMAGE", "Imagem inválida", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrExtractionFailure):
		return pkg.NewDomainError("EXTRACTION_FAILED", "Não foi possível ler os dados do veículo. Tente novamente ou digite manualmente", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrExtractionDisabled):
		return pkg.NewDomainErrorSimple("EXTRACTION_DISABLED", "Leitura automática não configurada", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPhotoStorageDisabled):
		return pkg.NewDomainErrorSimple("PHOTO_STORAGE_DISABLED", "Armazenamento de fotos não configurado", http.StatusServiceUnavailable)
	default:
		return mapCommonError(err)
	}
}
