package entities

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFieldList_UnmarshalJSON_BuildsVariants(t *testing.T) {
	raw := `[
		{"id":"f1","label":"Placa","type":"ai_placa","required":true},
		{"id":"f2","label":"Extras","type":"multiselect","required":false,
		 "options":[{"id":"a","label":"Antena","price":"12.50"},{"id":"b","label":"Bloqueio","price":30}]},
		{"id":"f3","label":"Taxa","type":"price","required":true,"value":150},
		{"id":"f4","label":"LED","type":"boolean","required":true}
	]`

	var fields FieldList
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(fields) != 4 {
		t.Fatalf("expected 4 fields, got %d", len(fields))
	}

	if f, ok := fields[0].(ScanField); !ok || f.Kind != FieldTypeAIPlaca || !f.Required {
		t.Fatalf("unexpected first field: %#v", fields[0])
	}
	ms, ok := fields[1].(MultiSelectField)
	if !ok {
		t.Fatalf("expected MultiSelectField, got %T", fields[1])
	}
	if len(ms.Options) != 2 || !ms.Options[0].Price.Equal(decimal.RequireFromString("12.50")) || !ms.Options[1].Price.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("unexpected options: %+v", ms.Options)
	}
	if p, ok := fields[2].(PriceField); !ok || p.Value != json.Number("150") {
		t.Fatalf("expected price field with json.Number value, got %#v", fields[2])
	}
	if in, ok := fields[3].(InputField); !ok || in.Kind != FieldTypeBoolean {
		t.Fatalf("unexpected input field: %#v", fields[3])
	}
}

func TestFieldList_UnmarshalJSON_RejectsUnknownType(t *testing.T) {
	for _, typ := range []string{"select_simple", "", "signature"} {
		t.Run(typ, func(t *testing.T) {
			var fields FieldList
			err := json.Unmarshal([]byte(`[{"id":"x","label":"X","type":"`+typ+`"}]`), &fields)
			if !errors.Is(err, ErrInvalidFieldType) {
				t.Fatalf("expected ErrInvalidFieldType, got %v", err)
			}
		})
	}
}

func TestFieldList_MarshalJSON_FlatRecord(t *testing.T) {
	fields := FieldList{
		SelectField{FieldHeader: FieldHeader{ID: "s", Label: "Plano"}},
		InputField{FieldHeader: FieldHeader{ID: "t", Label: "Obs"}, Kind: FieldTypeText},
	}
	b, err := json.Marshal(fields)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := `[{"id":"s","label":"Plano","type":"select","required":false,"options":[]},{"id":"t","label":"Obs","type":"text","required":false}]`
	if string(b) != want {
		t.Fatalf("unexpected json:\n got %s\nwant %s", b, want)
	}
}

func TestFieldList_CloneIsDeep(t *testing.T) {
	original := FieldList{
		MultiSelectField{
			FieldHeader: FieldHeader{ID: "m", Label: "Extras", Value: []any{"a"}},
			Options:     []FieldOption{{ID: "a", Label: "A", Price: decimal.NewFromInt(5)}},
		},
	}
	copied := original.Clone()

	ms := copied[0].(MultiSelectField)
	ms.Options[0].Label = "changed"
	ms.Value.([]any)[0] = "z"

	orig := original[0].(MultiSelectField)
	if orig.Options[0].Label != "A" {
		t.Fatalf("option label leaked into original: %q", orig.Options[0].Label)
	}
	if orig.Value.([]any)[0] != "a" {
		t.Fatalf("value leaked into original: %v", orig.Value)
	}
}

func TestDefaultTemplates(t *testing.T) {
	presets := DefaultTemplates()
	if len(presets) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(presets))
	}
	if presets[0].ID != PresetInstallationID || presets[1].ID != PresetMaintenanceID {
		t.Fatalf("unexpected preset ids: %s, %s", presets[0].ID, presets[1].ID)
	}
	for _, p := range presets {
		if !p.IsFavorite {
			t.Fatalf("preset %s should be favorite", p.ID)
		}
	}
	if presets[0].Fields[3].Header().Value != json.Number("150") {
		t.Fatalf("unexpected installation fee: %v", presets[0].Fields[3].Header().Value)
	}
	if presets[1].Fields[1].Type() != FieldTypeBoolean {
		t.Fatalf("expected LED status boolean, got %s", presets[1].Fields[1].Type())
	}

	presets[0].Name = "changed"
	if DefaultTemplates()[0].Name != "Instalação Padrão" {
		t.Fatalf("presets must be fresh per call")
	}
}

func TestVehicleData_ValueFor(t *testing.T) {
	v := VehicleData{Placa: "ABC1D23", Marca: "Fiat", Modelo: "Uno", IMEI: []string{"111", "222"}}

	cases := []struct {
		typ  FieldType
		want string
		ok   bool
	}{
		{FieldTypeAIPlaca, "ABC1D23", true},
		{FieldTypeAIBrandModel, "Fiat Uno", true},
		{FieldTypeAIIMEI, "111", true},
		{FieldTypeText, "", false},
	}
	for _, c := range cases {
		got, ok := v.ValueFor(c.typ)
		if got != c.want || ok != c.ok {
			t.Fatalf("%s: expected (%q,%v), got (%q,%v)", c.typ, c.want, c.ok, got, ok)
		}
	}

	if got, _ := (VehicleData{}).ValueFor(FieldTypeAIIMEI); got != "" {
		t.Fatalf("expected empty imei, got %q", got)
	}
}
