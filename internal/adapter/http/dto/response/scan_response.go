package response

import "checkmaster/internal/usecase"

type ScanResponse struct {
	Placa     string   `json:"placa"`
	Marca     string   `json:"marca"`
	Modelo    string   `json:"modelo"`
	IMEI      []string `json:"imei"`
	FieldType string   `json:"field_type,omitempty"`
	Value     string   `json:"value"`
}

func FromScan(r usecase.ScanResult) ScanResponse {
	imei := r.Vehicle.IMEI
	if imei == nil {
		imei = []string{}
	}
	return ScanResponse{
		Placa:     r.Vehicle.Placa,
		Marca:     r.Vehicle.Marca,
		Modelo:    r.Vehicle.Modelo,
		IMEI:      imei,
		FieldType: string(r.FieldType),
		Value:     r.Value,
	}
}

type PhotoResponse struct {
	URL string `json:"url"`
}
