package request

import (
	"strings"

	"checkmaster/internal/domain/entities"
)

// TemplateRequest is a whole template as edited by the builder screen.
type TemplateRequest struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Fields      entities.FieldList `json:"fields" swaggertype:"array,object"`
	IsFavorite  bool               `json:"is_favorite"`
}

func (r TemplateRequest) ToEntity() entities.ChecklistTemplate {
	fields := r.Fields
	if fields == nil {
		fields = entities.FieldList{}
	}
	return entities.ChecklistTemplate{
		ID:          strings.TrimSpace(r.ID),
		Name:        r.Name,
		Description: r.Description,
		Fields:      fields,
		IsFavorite:  r.IsFavorite,
	}
}
