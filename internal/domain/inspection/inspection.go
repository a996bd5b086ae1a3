// Package inspection builds runs from templates and finalizes them into
// service orders.
package inspection

import (
	"errors"
	"strings"
	"time"

	"checkmaster/internal/domain/entities"
	"checkmaster/internal/domain/evaluation"
)

var ErrRunNotReady = errors.New("inspection is not ready to be finished")

// NewRun copies template into a run whose values start from each field's
// preset value.
func NewRun(template entities.ChecklistTemplate, now time.Time) entities.InspectionRun {
	tpl := template.Clone()
	values := entities.Values{}
	for _, f := range tpl.Fields {
		h := f.Header()
		if h.Value != nil {
			values[h.ID] = entities.CloneValue(h.Value)
		}
	}
	return entities.InspectionRun{Template: tpl, Values: values, StartedAt: now.UTC()}
}

// Finalize freezes a ready run into a service order. The order shares no
// mutable state with template, vehicle or values.
func Finalize(template entities.ChecklistTemplate, clientName string, vehicle entities.VehicleData, values entities.Values, policy evaluation.Policy, id string, now time.Time) (entities.ServiceOrder, error) {
	res := policy.Evaluate(template.Fields, clientName, values)
	if !res.Ready {
		return entities.ServiceOrder{}, ErrRunNotReady
	}

	snapshot := make(entities.FieldList, 0, len(template.Fields))
	for _, f := range template.Fields {
		h := f.Header()
		v, ok := values[h.ID]
		if ok {
			h.Value = entities.CloneValue(v)
		} else {
			h.Value = nil
		}
		snapshot = append(snapshot, f.Clone().WithHeader(h))
	}

	return entities.ServiceOrder{
		ID:           id,
		TemplateID:   template.ID,
		TemplateName: template.Name,
		ClientName:   strings.TrimSpace(clientName),
		Vehicle:      ResolveVehicle(vehicle, template.Fields, values),
		Fields:       snapshot,
		TotalValue:   res.Total,
		Status:       entities.OrderStatusCompleted,
		Date:         now.UTC(),
	}, nil
}

// ResolveVehicle fills the blanks of vehicle from the AI-assisted answers of
// the run. Data supplied by the caller wins.
func ResolveVehicle(vehicle entities.VehicleData, fields entities.FieldList, values entities.Values) entities.VehicleData {
	out := vehicle.Clone()
	for _, f := range fields {
		s, _ := values[f.Header().ID].(string)
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		switch f.Type() {
		case entities.FieldTypeAIPlaca:
			if strings.TrimSpace(out.Placa) == "" {
				out.Placa = s
			}
		case entities.FieldTypeAIIMEI:
			if !contains(out.IMEI, s) {
				out.IMEI = append(out.IMEI, s)
			}
		case entities.FieldTypeAIBrandModel:
			if strings.TrimSpace(out.Marca) == "" && strings.TrimSpace(out.Modelo) == "" {
				marca, modelo, _ := strings.Cut(s, " ")
				out.Marca = marca
				out.Modelo = strings.TrimSpace(modelo)
			}
		}
	}
	if out.IMEI == nil {
		out.IMEI = []string{}
	}
	return out
}

// ApplyVehicle writes extracted vehicle data into the AI-assisted fields of a
// run. Only fields whose id is listed in fieldIDs are touched; an empty list
// means every AI-assisted field.
func ApplyVehicle(fields entities.FieldList, values entities.Values, vehicle entities.VehicleData, fieldIDs ...string) entities.Values {
	out := values.Clone()
	only := map[string]struct{}{}
	for _, id := range fieldIDs {
		only[id] = struct{}{}
	}
	for _, f := range fields {
		id := f.Header().ID
		if len(only) > 0 {
			if _, ok := only[id]; !ok {
				continue
			}
		}
		if v, ok := vehicle.ValueFor(f.Type()); ok {
			out[id] = v
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
