package entities

import "strings"

// VehicleData is the structured vehicle description attached to an order.
// Any subset of the attributes may be empty.
type VehicleData struct {
	Placa  string   `json:"placa"`
	Marca  string   `json:"marca"`
	Modelo string   `json:"modelo"`
	IMEI   []string `json:"imei"`
}

func (v VehicleData) Clone() VehicleData {
	if v.IMEI != nil {
		imei := make([]string, len(v.IMEI))
		copy(imei, v.IMEI)
		v.IMEI = imei
	}
	return v
}

func (v VehicleData) IsEmpty() bool {
	return strings.TrimSpace(v.Placa) == "" &&
		strings.TrimSpace(v.Marca) == "" &&
		strings.TrimSpace(v.Modelo) == "" &&
		len(v.IMEI) == 0
}

// ValueFor returns the answer an AI-assisted field takes from v. ok is false
// for every other field type.
func (v VehicleData) ValueFor(t FieldType) (value string, ok bool) {
	switch t {
	case FieldTypeAIPlaca:
		return strings.TrimSpace(v.Placa), true
	case FieldTypeAIBrandModel:
		return strings.TrimSpace(strings.TrimSpace(v.Marca) + " " + strings.TrimSpace(v.Modelo)), true
	case FieldTypeAIIMEI:
		if len(v.IMEI) == 0 {
			return "", true
		}
		return strings.TrimSpace(v.IMEI[0]), true
	}
	return "", false
}
