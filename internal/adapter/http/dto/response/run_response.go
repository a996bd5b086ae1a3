package response

import (
	"time"

	"checkmaster/internal/domain/entities"
	"checkmaster/internal/domain/evaluation"
)

// EvaluationResponse is the live total and readiness of a run. Total is
// rendered with two decimals.
type EvaluationResponse struct {
	Total           string   `json:"total"`
	Ready           bool     `json:"ready"`
	ClientMissing   bool     `json:"client_missing"`
	MissingRequired []string `json:"missing_required"`
	RejectedPrices  []string `json:"rejected_prices"`
}

func FromEvaluation(r evaluation.Result) EvaluationResponse {
	return EvaluationResponse{
		Total:           r.Total.StringFixed(2),
		Ready:           r.Ready,
		ClientMissing:   r.ClientMissing,
		MissingRequired: nonNil(r.MissingRequired),
		RejectedPrices:  nonNil(r.RejectedPrices),
	}
}

type RunResponse struct {
	Template   TemplateResponse   `json:"template"`
	Values     entities.Values    `json:"values" swaggertype:"object"`
	StartedAt  time.Time          `json:"started_at"`
	Evaluation EvaluationResponse `json:"evaluation"`
}

func FromRun(run entities.InspectionRun, r evaluation.Result) RunResponse {
	values := run.Values
	if values == nil {
		values = entities.Values{}
	}
	return RunResponse{
		Template:   FromTemplate(run.Template),
		Values:     values,
		StartedAt:  run.StartedAt,
		Evaluation: FromEvaluation(r),
	}
}

type RunValuesResponse struct {
	Values     entities.Values    `json:"values" swaggertype:"object"`
	Evaluation EvaluationResponse `json:"evaluation"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
