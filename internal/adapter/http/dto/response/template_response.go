package response

import "checkmaster/internal/domain/entities"

type TemplateResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Fields      entities.FieldList `json:"fields" swaggertype:"array,object"`
	FieldCount  int                `json:"field_count"`
	IsFavorite  bool               `json:"is_favorite"`
}

func FromTemplate(t entities.ChecklistTemplate) TemplateResponse {
	fields := t.Fields
	if fields == nil {
		fields = entities.FieldList{}
	}
	return TemplateResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Fields:      fields,
		FieldCount:  len(fields),
		IsFavorite:  t.IsFavorite,
	}
}

func FromTemplates(ts []entities.ChecklistTemplate) []TemplateResponse {
	out := make([]TemplateResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTemplate(t))
	}
	return out
}
