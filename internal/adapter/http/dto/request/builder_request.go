package request

import (
	"bytes"
	"encoding/json"
	"strings"

	"checkmaster/internal/domain/checklist"
	"checkmaster/internal/domain/entities"
	"checkmaster/internal/usecase"

	"github.com/shopspring/decimal"
)

// BuilderRequest applies one builder action to the draft in Template.
type BuilderRequest struct {
	Template    TemplateRequest       `json:"template"`
	Action      string                `json:"action" binding:"required"`
	FieldType   string                `json:"field_type"`
	Label       string                `json:"label"`
	FieldID     string                `json:"field_id"`
	Index       int                   `json:"index"`
	OptionIndex int                   `json:"option_index"`
	Direction   string                `json:"direction"`
	Field       *FieldUpdateRequest   `json:"field,omitempty"`
	Option      *OptionUpdateRequest  `json:"option,omitempty"`
	Details     *DetailsUpdateRequest `json:"details,omitempty"`
}

type FieldUpdateRequest struct {
	Label    *string                `json:"label"`
	Required *bool                  `json:"required"`
	Type     *string                `json:"type"`
	Options  []entities.FieldOption `json:"options"`
	Value    json.RawMessage        `json:"value" swaggertype:"object"`

	// ClearValue drops the stored value; a null value is treated as absent.
	ClearValue bool `json:"clear_value"`
}

type OptionUpdateRequest struct {
	Label *string          `json:"label"`
	Price *decimal.Decimal `json:"price" swaggertype:"string"`
}

type DetailsUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// ToCommand converts the request into a builder command. A field type that
// is not in the closed set fails with entities.ErrInvalidFieldType.
func (r BuilderRequest) ToCommand() (usecase.BuilderCommand, error) {
	cmd := usecase.BuilderCommand{
		Action:      usecase.BuilderAction(strings.TrimSpace(r.Action)),
		FieldType:   entities.FieldType(strings.TrimSpace(r.FieldType)),
		Label:       r.Label,
		FieldID:     strings.TrimSpace(r.FieldID),
		Index:       r.Index,
		OptionIndex: r.OptionIndex,
		Direction:   checklist.Direction(strings.ToLower(strings.TrimSpace(r.Direction))),
	}

	if f := r.Field; f != nil {
		cmd.Field = checklist.FieldUpdate{Label: f.Label, Required: f.Required, Options: f.Options}
		if f.Type != nil {
			kind, err := entities.ParseFieldType(*f.Type)
			if err != nil {
				return usecase.BuilderCommand{}, err
			}
			cmd.Field.Type = &kind
		}
		value, err := decodeValue(f.Value)
		if err != nil {
			return usecase.BuilderCommand{}, err
		}
		cmd.Field.Value = value
		cmd.Field.ClearValue = f.ClearValue
	}
	if o := r.Option; o != nil {
		cmd.Option = checklist.OptionUpdate{Label: o.Label, Price: o.Price}
	}
	if d := r.Details; d != nil {
		cmd.Details = checklist.TemplateUpdate{Name: d.Name, Description: d.Description}
	}
	return cmd, nil
}

// decodeValue keeps numbers as json.Number; an absent or null value is nil.
func decodeValue(raw json.RawMessage) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
