package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of a service order. Orders are created
// already terminal and never change.
type OrderStatus string

const OrderStatusCompleted OrderStatus = "completed"

// ServiceOrder is the immutable record of one finished inspection.
//
// Storage model:
//   - append-only log, ordered by insertion
//   - Fields is the permanent record of what was asked and answered
//   - TotalValue is frozen at finalization and never recomputed
type ServiceOrder struct {
	ID           string          `json:"id"`
	TemplateID   string          `json:"template_id"`
	TemplateName string          `json:"template_name"`
	ClientName   string          `json:"client_name"`
	Vehicle      VehicleData     `json:"vehicle"`
	Fields       FieldList       `json:"fields"`
	TotalValue   decimal.Decimal `json:"total_value"`
	Status       OrderStatus     `json:"status"`
	Date         time.Time       `json:"date"`
}

func (o ServiceOrder) Clone() ServiceOrder {
	o.Vehicle = o.Vehicle.Clone()
	o.Fields = o.Fields.Clone()
	return o
}

// InspectionRun is a template instantiated for answering. It owns a private
// copy of the template so edits never reach the stored definition.
type InspectionRun struct {
	Template  ChecklistTemplate `json:"template"`
	Values    Values            `json:"values"`
	StartedAt time.Time         `json:"started_at"`
}
