// Package checklist holds the template builder operations.
//
// Every operation takes a template by value and returns a new one; the input is
// never modified, so a saved snapshot and a template being edited never share
// fields or options. Failing operations return the input unchanged alongside
// the error.
package checklist

import (
	"errors"

	"checkmaster/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidFieldType   = entities.ErrInvalidFieldType
	ErrIndexOutOfRange    = errors.New("index out of range")
	ErrNotSelectableField = errors.New("field does not support options")
	ErrMissingTemplateID  = errors.New("template id is required")
	ErrMissingFieldID     = errors.New("field id is required")
	ErrDuplicateFieldID   = errors.New("duplicate field id")
)

// Direction is the neighbor a field is swapped with by MoveField.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

var newID = uuid.NewString

// FieldUpdate is a partial update merged into a field. Nil members are left
// untouched, so ClearValue is the only way to drop a stored value.
// Options is only accepted on select and multiselect fields.
type FieldUpdate struct {
	Label    *string
	Required *bool
	Type     *entities.FieldType
	Options  []entities.FieldOption
	Value    any

	// ClearValue resets the stored value and takes precedence over Value.
	ClearValue bool
}

// OptionUpdate is a partial update merged into an option.
type OptionUpdate struct {
	Label *string
	Price *decimal.Decimal
}

// TemplateUpdate changes the descriptive attributes of a template.
type TemplateUpdate struct {
	Name        *string
	Description *string
}

// NewTemplate returns an empty, non-favorite template with a fresh id.
func NewTemplate() entities.ChecklistTemplate {
	return entities.ChecklistTemplate{
		ID:          newID(),
		Name:        entities.DefaultTemplateName,
		Description: entities.DefaultTemplateDescription,
		Fields:      entities.FieldList{},
	}
}

func UpdateDetails(t entities.ChecklistTemplate, u TemplateUpdate) entities.ChecklistTemplate {
	next := t.Clone()
	if u.Name != nil {
		next.Name = *u.Name
	}
	if u.Description != nil {
		next.Description = *u.Description
	}
	return next
}

// AddField appends a field of the given type. Select and multiselect fields
// start with one default option priced at zero.
func AddField(t entities.ChecklistTemplate, kind entities.FieldType, label string) (entities.ChecklistTemplate, error) {
	var opts []entities.FieldOption
	if kind.Selectable() {
		opts = []entities.FieldOption{defaultOption()}
	}
	f, err := entities.NewField(kind, entities.FieldHeader{ID: newID(), Label: label}, opts)
	if err != nil {
		return t, err
	}
	next := t.Clone()
	next.Fields = append(next.Fields, f)
	return next, nil
}

// RemoveField drops the field with the given id. Unknown ids are ignored.
func RemoveField(t entities.ChecklistTemplate, fieldID string) entities.ChecklistTemplate {
	next := t.Clone()
	kept := make(entities.FieldList, 0, len(next.Fields))
	for _, f := range next.Fields {
		if f.Header().ID != fieldID {
			kept = append(kept, f)
		}
	}
	next.Fields = kept
	return next
}

// MoveField swaps the field at index with its neighbor. Moves that would leave
// the list are ignored.
func MoveField(t entities.ChecklistTemplate, index int, dir Direction) entities.ChecklistTemplate {
	next := t.Clone()
	var target int
	switch dir {
	case Up:
		target = index - 1
	case Down:
		target = index + 1
	default:
		return next
	}
	if index < 0 || index >= len(next.Fields) || target < 0 || target >= len(next.Fields) {
		return next
	}
	next.Fields[index], next.Fields[target] = next.Fields[target], next.Fields[index]
	return next
}

func UpdateField(t entities.ChecklistTemplate, index int, u FieldUpdate) (entities.ChecklistTemplate, error) {
	if index < 0 || index >= len(t.Fields) {
		return t, ErrIndexOutOfRange
	}
	next := t.Clone()
	f := next.Fields[index]

	if u.Type != nil && *u.Type != f.Type() {
		converted, err := convertField(f, *u.Type)
		if err != nil {
			return t, err
		}
		f = converted
	}

	h := f.Header()
	if u.Label != nil {
		h.Label = *u.Label
	}
	if u.Required != nil {
		h.Required = *u.Required
	}
	switch {
	case u.ClearValue:
		h.Value = nil
	case u.Value != nil:
		h.Value = entities.CloneValue(u.Value)
	}
	f = f.WithHeader(h)

	if u.Options != nil {
		of, ok := f.(entities.OptionField)
		if !ok {
			return t, ErrNotSelectableField
		}
		f = of.WithOptions(u.Options)
	}

	next.Fields[index] = f
	return next, nil
}

// AddOption appends a default option to a select or multiselect field.
func AddOption(t entities.ChecklistTemplate, fieldIndex int) (entities.ChecklistTemplate, error) {
	return withOptions(t, fieldIndex, func(opts []entities.FieldOption) ([]entities.FieldOption, error) {
		return append(opts, defaultOption()), nil
	})
}

func UpdateOption(t entities.ChecklistTemplate, fieldIndex, optionIndex int, u OptionUpdate) (entities.ChecklistTemplate, error) {
	return withOptions(t, fieldIndex, func(opts []entities.FieldOption) ([]entities.FieldOption, error) {
		if optionIndex < 0 || optionIndex >= len(opts) {
			return nil, ErrIndexOutOfRange
		}
		if u.Label != nil {
			opts[optionIndex].Label = *u.Label
		}
		if u.Price != nil {
			opts[optionIndex].Price = *u.Price
		}
		return opts, nil
	})
}

func RemoveOption(t entities.ChecklistTemplate, fieldIndex, optionIndex int) (entities.ChecklistTemplate, error) {
	return withOptions(t, fieldIndex, func(opts []entities.FieldOption) ([]entities.FieldOption, error) {
		if optionIndex < 0 || optionIndex >= len(opts) {
			return nil, ErrIndexOutOfRange
		}
		return append(opts[:optionIndex], opts[optionIndex+1:]...), nil
	})
}

func ToggleFavorite(t entities.ChecklistTemplate) entities.ChecklistTemplate {
	next := t.Clone()
	next.IsFavorite = !next.IsFavorite
	return next
}

// Validate checks what a store relies on: a non-blank id and field ids that
// are present and unique within the template.
func Validate(t entities.ChecklistTemplate) error {
	if t.ID == "" {
		return ErrMissingTemplateID
	}
	seen := make(map[string]struct{}, len(t.Fields))
	for _, f := range t.Fields {
		id := f.Header().ID
		if id == "" {
			return ErrMissingFieldID
		}
		if _, dup := seen[id]; dup {
			return ErrDuplicateFieldID
		}
		seen[id] = struct{}{}
	}
	return nil
}

func withOptions(t entities.ChecklistTemplate, fieldIndex int, fn func([]entities.FieldOption) ([]entities.FieldOption, error)) (entities.ChecklistTemplate, error) {
	if fieldIndex < 0 || fieldIndex >= len(t.Fields) {
		return t, ErrIndexOutOfRange
	}
	of, ok := t.Fields[fieldIndex].(entities.OptionField)
	if !ok {
		return t, ErrNotSelectableField
	}
	opts, err := fn(of.FieldOptions())
	if err != nil {
		return t, err
	}
	next := t.Clone()
	next.Fields[fieldIndex] = next.Fields[fieldIndex].(entities.OptionField).WithOptions(opts)
	return next, nil
}

// convertField rebuilds f as another variant keeping its header. Options
// survive a select/multiselect switch; a field becoming selectable without
// options gets the default one.
func convertField(f entities.Field, kind entities.FieldType) (entities.Field, error) {
	var opts []entities.FieldOption
	if of, ok := f.(entities.OptionField); ok {
		opts = of.FieldOptions()
	}
	if kind.Selectable() && len(opts) == 0 {
		opts = []entities.FieldOption{defaultOption()}
	}
	h := f.Header()
	h.Value = nil
	return entities.NewField(kind, h, opts)
}

func defaultOption() entities.FieldOption {
	return entities.FieldOption{ID: newID(), Label: entities.DefaultOptionLabel, Price: decimal.Zero}
}
