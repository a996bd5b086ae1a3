package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultOptionLabel is the label given to options created by the builder.
const DefaultOptionLabel = "Nova Opção"

// FieldOption is a priced choice owned by a select or multiselect field.
type FieldOption struct {
	ID    string          `json:"id"`
	Label string          `json:"label"`
	Price decimal.Decimal `json:"price"`
}

// FieldHeader carries the attributes shared by every field variant.
//
// Value is empty in a pure template definition. Presets use it to carry a
// default answer (e.g. a fixed installation fee) and service orders use it to
// freeze what was entered.
type FieldHeader struct {
	ID       string
	Label    string
	Required bool
	Value    any
}

// Field is one question slot of a template.
//
// The set of implementations is closed: InputField, PriceField, SelectField,
// MultiSelectField, PhotoField and ScanField. Code that needs per-type behavior
// switches over them.
type Field interface {
	Header() FieldHeader
	Type() FieldType
	WithHeader(h FieldHeader) Field
	Clone() Field
	sealed()
}

// OptionField is implemented by the variants that own priced options.
type OptionField interface {
	Field
	FieldOptions() []FieldOption
	WithOptions(opts []FieldOption) Field
}

// InputField is a free-entry answer: text, number, date or boolean.
type InputField struct {
	FieldHeader
	Kind FieldType
}

// PriceField is a manual monetary entry.
type PriceField struct {
	FieldHeader
}

// SelectField lets the inspector pick exactly one priced option.
type SelectField struct {
	FieldHeader
	Options []FieldOption
}

// MultiSelectField lets the inspector pick any number of priced options.
type MultiSelectField struct {
	FieldHeader
	Options []FieldOption
}

// PhotoField holds a reference to a captured image.
type PhotoField struct {
	FieldHeader
}

// ScanField is filled from the vehicle-data extraction of a photo.
type ScanField struct {
	FieldHeader
	Kind FieldType
}

// NewField builds the variant matching kind. Selectable kinds start with the
// given options; other kinds ignore them.
func NewField(kind FieldType, h FieldHeader, opts []FieldOption) (Field, error) {
	switch kind {
	case FieldTypeText, FieldTypeNumber, FieldTypeDate, FieldTypeBoolean:
		return InputField{FieldHeader: h, Kind: kind}, nil
	case FieldTypePrice:
		return PriceField{FieldHeader: h}, nil
	case FieldTypeSelect:
		return SelectField{FieldHeader: h, Options: cloneOptions(opts)}, nil
	case FieldTypeMultiSelect:
		return MultiSelectField{FieldHeader: h, Options: cloneOptions(opts)}, nil
	case FieldTypePhoto:
		return PhotoField{FieldHeader: h}, nil
	case FieldTypeAIPlaca, FieldTypeAIIMEI, FieldTypeAIBrandModel:
		return ScanField{FieldHeader: h, Kind: kind}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidFieldType, kind)
}

func (f InputField) Header() FieldHeader { return f.FieldHeader }
func (f InputField) Type() FieldType     { return f.Kind }
func (f InputField) WithHeader(h FieldHeader) Field {
	f.FieldHeader = h
	return f
}
func (f InputField) Clone() Field {
	f.Value = CloneValue(f.Value)
	return f
}
func (InputField) sealed() {}

func (f PriceField) Header() FieldHeader { return f.FieldHeader }
func (PriceField) Type() FieldType       { return FieldTypePrice }
func (f PriceField) WithHeader(h FieldHeader) Field {
	f.FieldHeader = h
	return f
}
func (f PriceField) Clone() Field {
	f.Value = CloneValue(f.Value)
	return f
}
func (PriceField) sealed() {}

func (f SelectField) Header() FieldHeader { return f.FieldHeader }
func (SelectField) Type() FieldType       { return FieldTypeSelect }
func (f SelectField) WithHeader(h FieldHeader) Field {
	f.FieldHeader = h
	return f
}
func (f SelectField) Clone() Field {
	f.Value = CloneValue(f.Value)
	f.Options = cloneOptions(f.Options)
	return f
}
func (f SelectField) FieldOptions() []FieldOption { return cloneOptions(f.Options) }
func (f SelectField) WithOptions(opts []FieldOption) Field {
	f.Options = cloneOptions(opts)
	return f
}
func (SelectField) sealed() {}

func (f MultiSelectField) Header() FieldHeader { return f.FieldHeader }
func (MultiSelectField) Type() FieldType       { return FieldTypeMultiSelect }
func (f MultiSelectField) WithHeader(h FieldHeader) Field {
	f.FieldHeader = h
	return f
}
func (f MultiSelectField) Clone() Field {
	f.Value = CloneValue(f.Value)
	f.Options = cloneOptions(f.Options)
	return f
}
func (f MultiSelectField) FieldOptions() []FieldOption { return cloneOptions(f.Options) }
func (f MultiSelectField) WithOptions(opts []FieldOption) Field {
	f.Options = cloneOptions(opts)
	return f
}
func (MultiSelectField) sealed() {}

func (f PhotoField) Header() FieldHeader { return f.FieldHeader }
func (PhotoField) Type() FieldType       { return FieldTypePhoto }
func (f PhotoField) WithHeader(h FieldHeader) Field {
	f.FieldHeader = h
	return f
}
func (f PhotoField) Clone() Field {
	f.Value = CloneValue(f.Value)
	return f
}
func (PhotoField) sealed() {}

func (f ScanField) Header() FieldHeader { return f.FieldHeader }
func (f ScanField) Type() FieldType     { return f.Kind }
func (f ScanField) WithHeader(h FieldHeader) Field {
	f.FieldHeader = h
	return f
}
func (f ScanField) Clone() Field {
	f.Value = CloneValue(f.Value)
	return f
}
func (ScanField) sealed() {}

var (
	_ OptionField = SelectField{}
	_ OptionField = MultiSelectField{}
	_ Field       = InputField{}
	_ Field       = PriceField{}
	_ Field       = PhotoField{}
	_ Field       = ScanField{}
)

func cloneOptions(opts []FieldOption) []FieldOption {
	if opts == nil {
		return nil
	}
	out := make([]FieldOption, len(opts))
	copy(out, opts)
	return out
}

// CloneValue deep-copies an entered answer. Answers are JSON-shaped, so only
// slices and maps need copying.
func CloneValue(v any) any {
	switch x := v.(type) {
	case []any:
		out := make([]any, len(x))
		for i := range x {
			out[i] = CloneValue(x[i])
		}
		return out
	case []string:
		out := make([]string, len(x))
		copy(out, x)
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = CloneValue(val)
		}
		return out
	}
	return v
}
