package entities

import "encoding/json"

const (
	PresetInstallationID = "preset_inst"
	PresetMaintenanceID  = "preset_man"
)

// DefaultTemplates returns the built-in templates a store is seeded with the
// first time it is read. Each call returns fresh values.
func DefaultTemplates() []ChecklistTemplate {
	return []ChecklistTemplate{
		{
			ID:          PresetInstallationID,
			Name:        "Instalação Padrão",
			Description: "Checklist completo para novos rastreadores",
			Fields: FieldList{
				ScanField{FieldHeader: FieldHeader{ID: "p1", Label: "Placa do Veículo", Required: true}, Kind: FieldTypeAIPlaca},
				ScanField{FieldHeader: FieldHeader{ID: "p2", Label: "Dados do Carro", Required: true}, Kind: FieldTypeAIBrandModel},
				PhotoField{FieldHeader: FieldHeader{ID: "p3", Label: "Foto do Equipamento", Required: true}},
				PriceField{FieldHeader: FieldHeader{ID: "p4", Label: "Taxa de Instalação", Required: true, Value: json.Number("150")}},
			},
			IsFavorite: true,
		},
		{
			ID:          PresetMaintenanceID,
			Name:        "Manutenção Rápida",
			Description: "Verificação periódica de funcionamento",
			Fields: FieldList{
				ScanField{FieldHeader: FieldHeader{ID: "m1", Label: "Placa do Veículo", Required: true}, Kind: FieldTypeAIPlaca},
				InputField{FieldHeader: FieldHeader{ID: "m2", Label: "Status do LED", Required: true}, Kind: FieldTypeBoolean},
				PriceField{FieldHeader: FieldHeader{ID: "m3", Label: "Valor Manutenção", Required: true, Value: json.Number("80")}},
			},
			IsFavorite: true,
		},
	}
}
