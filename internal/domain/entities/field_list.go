package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FieldList is the ordered field sequence of a template. Position is the only
// ordering; there is no rank attribute.
type FieldList []Field

// fieldRecord is the flat wire and storage shape of a field.
type fieldRecord struct {
	ID       string        `json:"id"`
	Label    string        `json:"label"`
	Type     FieldType     `json:"type"`
	Required bool          `json:"required"`
	Options  []FieldOption `json:"options,omitempty"`
	Value    any           `json:"value,omitempty"`
}

func (l FieldList) Clone() FieldList {
	if l == nil {
		return nil
	}
	out := make(FieldList, len(l))
	for i, f := range l {
		out[i] = f.Clone()
	}
	return out
}

// IndexOf returns the position of the field with the given id, or -1.
func (l FieldList) IndexOf(id string) int {
	for i, f := range l {
		if f.Header().ID == id {
			return i
		}
	}
	return -1
}

func (l FieldList) MarshalJSON() ([]byte, error) {
	records := make([]fieldRecord, 0, len(l))
	for _, f := range l {
		h := f.Header()
		rec := fieldRecord{
			ID:       h.ID,
			Label:    h.Label,
			Type:     f.Type(),
			Required: h.Required,
			Value:    h.Value,
		}
		if of, ok := f.(OptionField); ok {
			rec.Options = of.FieldOptions()
			if rec.Options == nil {
				rec.Options = []FieldOption{}
			}
		}
		records = append(records, rec)
	}
	return json.Marshal(records)
}

// UnmarshalJSON decodes flat records into their variants. Numbers inside
// values are kept as json.Number so monetary answers keep their precision.
func (l *FieldList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var records []fieldRecord
	if err := dec.Decode(&records); err != nil {
		return err
	}
	if records == nil {
		*l = nil
		return nil
	}
	out := make(FieldList, 0, len(records))
	for i, rec := range records {
		f, err := NewField(rec.Type, FieldHeader{
			ID:       rec.ID,
			Label:    rec.Label,
			Required: rec.Required,
			Value:    rec.Value,
		}, rec.Options)
		if err != nil {
			return fmt.Errorf("field %d (%s): %w", i, rec.ID, err)
		}
		out = append(out, f)
	}
	*l = out
	return nil
}
