package response

import (
	"time"

	"checkmaster/internal/domain/entities"
)

type OrderResponse struct {
	ID           string               `json:"id"`
	TemplateID   string               `json:"template_id"`
	TemplateName string               `json:"template_name"`
	ClientName   string               `json:"client_name"`
	Vehicle      entities.VehicleData `json:"vehicle"`
	Fields       entities.FieldList   `json:"fields" swaggertype:"array,object"`
	TotalValue   string               `json:"total_value"`
	Status       string               `json:"status"`
	Date         time.Time            `json:"date"`
}

func FromOrder(o entities.ServiceOrder) OrderResponse {
	vehicle := o.Vehicle.Clone()
	if vehicle.IMEI == nil {
		vehicle.IMEI = []string{}
	}
	fields := o.Fields
	if fields == nil {
		fields = entities.FieldList{}
	}
	return OrderResponse{
		ID:           o.ID,
		TemplateID:   o.TemplateID,
		TemplateName: o.TemplateName,
		ClientName:   o.ClientName,
		Vehicle:      vehicle,
		Fields:       fields,
		TotalValue:   o.TotalValue.StringFixed(2),
		Status:       string(o.Status),
		Date:         o.Date,
	}
}

func FromOrders(orders []entities.ServiceOrder) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
