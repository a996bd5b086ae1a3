package entities

const (
	DefaultTemplateName        = "Novo Checklist"
	DefaultTemplateDescription = "Modelo customizado"
)

// ChecklistTemplate is a reusable, ordered set of questions.
//
// ID is the only identity; names may repeat across templates.
type ChecklistTemplate struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Fields      FieldList `json:"fields"`
	IsFavorite  bool      `json:"is_favorite"`
}

// Clone returns a copy that shares no mutable state with t.
func (t ChecklistTemplate) Clone() ChecklistTemplate {
	t.Fields = t.Fields.Clone()
	if t.Fields == nil {
		t.Fields = FieldList{}
	}
	return t
}
