package entities

import (
	"errors"
	"strings"
)

// ErrInvalidFieldType is returned when a field names a type outside the closed set.
var ErrInvalidFieldType = errors.New("invalid field type")

// FieldType is the closed set of question kinds a checklist field can take.
type FieldType string

const (
	FieldTypeText         FieldType = "text"
	FieldTypeNumber       FieldType = "number"
	FieldTypeDate         FieldType = "date"
	FieldTypeBoolean      FieldType = "boolean"
	FieldTypeSelect       FieldType = "select"
	FieldTypeMultiSelect  FieldType = "multiselect"
	FieldTypePrice        FieldType = "price"
	FieldTypePhoto        FieldType = "photo"
	FieldTypeAIPlaca      FieldType = "ai_placa"
	FieldTypeAIIMEI       FieldType = "ai_imei"
	FieldTypeAIBrandModel FieldType = "ai_brand_model"
)

// FieldTypes lists every recognized type in builder order.
func FieldTypes() []FieldType {
	return []FieldType{
		FieldTypeText,
		FieldTypeNumber,
		FieldTypeDate,
		FieldTypeBoolean,
		FieldTypeAIPlaca,
		FieldTypeAIIMEI,
		FieldTypeSelect,
		FieldTypeMultiSelect,
		FieldTypeAIBrandModel,
		FieldTypePhoto,
		FieldTypePrice,
	}
}

func ParseFieldType(s string) (FieldType, error) {
	t := FieldType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", ErrInvalidFieldType
	}
	return t, nil
}

func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeText, FieldTypeNumber, FieldTypeDate, FieldTypeBoolean,
		FieldTypeSelect, FieldTypeMultiSelect, FieldTypePrice, FieldTypePhoto,
		FieldTypeAIPlaca, FieldTypeAIIMEI, FieldTypeAIBrandModel:
		return true
	}
	return false
}

// Selectable reports whether fields of this type own an option list.
func (t FieldType) Selectable() bool {
	return t == FieldTypeSelect || t == FieldTypeMultiSelect
}

// AIAssisted reports whether the value is filled by vehicle-data extraction.
func (t FieldType) AIAssisted() bool {
	switch t {
	case FieldTypeAIPlaca, FieldTypeAIIMEI, FieldTypeAIBrandModel:
		return true
	}
	return false
}
