// Package vision reads vehicle data from photos with a Gemini model.
package vision

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"checkmaster/internal/domain/entities"
	"checkmaster/internal/infrastructure/logger"
	"checkmaster/internal/usecase/interfaces"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

var ErrMissingAPIKey = errors.New("missing GEMINI_API_KEY")

const extractionPrompt = "Aja como perito veicular especializado em vistoria e instalação de rastreadores. " +
	"Extraia rigorosamente os seguintes dados da imagem: Placa (padrão Mercosul AAA0A00 ou antigo AAA-0000), " +
	"Marca do veículo, Modelo do veículo e IMEI/Número de Serial se visível no rastreador ou equipamento. " +
	"Retorne APENAS o JSON."

// contentGenerator is the part of the genai client the extractor calls.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type GeminiExtractor struct {
	models contentGenerator
	model  string
	logger *zap.Logger
}

var _ interfaces.IVehicleExtractor = (*GeminiExtractor)(nil)

func NewGeminiExtractor(ctx context.Context, apiKey, model string, log *zap.Logger) (*GeminiExtractor, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiExtractor{
		models: client.Models,
		model:  model,
		logger: logger.OrNop(log).Named("vision"),
	}, nil
}

type extraction struct {
	Placa  string   `json:"placa"`
	Marca  string   `json:"marca"`
	Modelo string   `json:"modelo"`
	IMEI   []string `json:"imei"`
}

// Extract sends the image to the model and parses the structured answer. A
// response without text yields (nil, nil).
func (e *GeminiExtractor) Extract(ctx context.Context, image []byte, mimeType string) (*entities.VehicleData, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image, mimeType),
			genai.NewPartFromText(extractionPrompt),
		}, genai.RoleUser),
	}

	resp, err := e.models.GenerateContent(ctx, e.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema(),
	})
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		e.logger.Debug("model returned no text", zap.String("model", e.model))
		return nil, nil
	}
	var out extraction
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}

	v := &entities.VehicleData{
		Placa:  strings.TrimSpace(out.Placa),
		Marca:  strings.TrimSpace(out.Marca),
		Modelo: strings.TrimSpace(out.Modelo),
		IMEI:   make([]string, 0, len(out.IMEI)),
	}
	for _, s := range out.IMEI {
		if s = strings.TrimSpace(s); s != "" {
			v.IMEI = append(v.IMEI, s)
		}
	}
	return v, nil
}

func responseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"placa":  {Type: genai.TypeString, Description: "A placa do veículo detectada."},
			"marca":  {Type: genai.TypeString, Description: "Marca do fabricante (ex: Fiat, VW, Ford)."},
			"modelo": {Type: genai.TypeString, Description: "Modelo específico (ex: Strada, Gol, Ranger)."},
			"imei": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "Lista de IMEIs ou Seriais detectados (números de 15 dígitos ou seriais alfanuméricos).",
			},
		},
		Required: []string{"placa", "marca", "modelo", "imei"},
	}
}
