package request

import (
	"strings"

	"checkmaster/internal/domain/entities"
	"checkmaster/internal/usecase"
)

// RunRequest is the state of an inspection run as held by the client.
// Template is the run's own copy; when absent TemplateID is loaded from the
// store.
type RunRequest struct {
	TemplateID string               `json:"template_id"`
	Template   *TemplateRequest     `json:"template,omitempty"`
	ClientName string               `json:"client_name"`
	Vehicle    entities.VehicleData `json:"vehicle"`
	Values     entities.Values      `json:"values" swaggertype:"object"`
}

func (r RunRequest) ToRunInput() usecase.RunInput {
	in := usecase.RunInput{
		TemplateID: strings.TrimSpace(r.TemplateID),
		ClientName: r.ClientName,
		Vehicle:    r.Vehicle,
		Values:     r.Values,
	}
	if r.Template != nil {
		t := r.Template.ToEntity()
		in.Template = &t
	}
	if in.Values == nil {
		in.Values = entities.Values{}
	}
	return in
}

// ApplyVehicleRequest copies scanned vehicle data into the run's AI fields.
// An empty FieldIDs fills every AI-assisted field.
type ApplyVehicleRequest struct {
	RunRequest
	FieldIDs []string `json:"field_ids"`
}
