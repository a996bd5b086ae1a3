// Package evaluation turns the answers of a run into a monetary total and a
// readiness verdict. All functions are pure.
package evaluation

import (
	"encoding/json"
	"strings"

	"checkmaster/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Policy tunes how price entries are treated. The zero value accepts negative
// amounts, which then reduce the total.
type Policy struct {
	RejectNegativePrices bool
}

// Result is the outcome of evaluating a run.
type Result struct {
	Total           decimal.Decimal `json:"total"`
	Ready           bool            `json:"ready"`
	ClientMissing   bool            `json:"client_missing"`
	MissingRequired []string        `json:"missing_required"`
	RejectedPrices  []string        `json:"rejected_prices"`
}

// ComputeTotal sums the contribution of every field under the default policy.
func ComputeTotal(fields entities.FieldList, values entities.Values) decimal.Decimal {
	return Policy{}.Total(fields, values)
}

// IsReady reports whether a run may be finalized under the default policy.
func IsReady(fields entities.FieldList, clientName string, values entities.Values) bool {
	return Policy{}.Evaluate(fields, clientName, values).Ready
}

func (p Policy) Total(fields entities.FieldList, values entities.Values) decimal.Decimal {
	total := decimal.Zero
	for _, f := range fields {
		amount, _ := p.contribution(f, values[f.Header().ID])
		total = total.Add(amount)
	}
	return total
}

func (p Policy) Evaluate(fields entities.FieldList, clientName string, values entities.Values) Result {
	res := Result{
		Total:           decimal.Zero,
		ClientMissing:   strings.TrimSpace(clientName) == "",
		MissingRequired: []string{},
		RejectedPrices:  []string{},
	}
	for _, f := range fields {
		h := f.Header()
		v := values[h.ID]

		amount, rejected := p.contribution(f, v)
		res.Total = res.Total.Add(amount)
		if rejected {
			res.RejectedPrices = append(res.RejectedPrices, h.ID)
		}
		if h.Required && !satisfied(f, v) {
			res.MissingRequired = append(res.MissingRequired, h.ID)
		}
	}
	res.Ready = !res.ClientMissing && len(res.MissingRequired) == 0 && len(res.RejectedPrices) == 0
	return res
}

// contribution returns what a field adds to the total. rejected is true when
// the policy refused a negative price entry.
func (p Policy) contribution(f entities.Field, v any) (amount decimal.Decimal, rejected bool) {
	switch field := f.(type) {
	case entities.PriceField:
		a, ok := ParseAmount(v)
		if !ok {
			return decimal.Zero, false
		}
		if p.RejectNegativePrices && a.IsNegative() {
			return decimal.Zero, true
		}
		return a, false
	case entities.SelectField:
		id, ok := v.(string)
		if !ok {
			return decimal.Zero, false
		}
		for _, o := range field.Options {
			if o.ID == id {
				return o.Price, false
			}
		}
		return decimal.Zero, false
	case entities.MultiSelectField:
		selected := selectedIDs(v)
		sum := decimal.Zero
		for _, o := range field.Options {
			if _, ok := selected[o.ID]; ok {
				sum = sum.Add(o.Price)
			}
		}
		return sum, false
	case entities.InputField, entities.PhotoField, entities.ScanField:
		return decimal.Zero, false
	}
	return decimal.Zero, false
}

// satisfied reports whether a required field counts as answered. AI-assisted
// fields are always satisfied; their completeness belongs to extraction.
func satisfied(f entities.Field, v any) bool {
	switch field := f.(type) {
	case entities.ScanField:
		return true
	case entities.SelectField:
		id, ok := v.(string)
		if !ok {
			return false
		}
		for _, o := range field.Options {
			if o.ID == id {
				return true
			}
		}
		return false
	case entities.MultiSelectField:
		selected := selectedIDs(v)
		for _, o := range field.Options {
			if _, ok := selected[o.ID]; ok {
				return true
			}
		}
		return false
	case entities.InputField, entities.PriceField, entities.PhotoField:
		return !blank(v)
	}
	return false
}

func blank(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	case json.Number:
		return strings.TrimSpace(string(x)) == ""
	case []any:
		return len(x) == 0
	case []string:
		return len(x) == 0
	}
	return false
}

func selectedIDs(v any) map[string]struct{} {
	out := map[string]struct{}{}
	switch x := v.(type) {
	case []any:
		for _, item := range x {
			if s, ok := item.(string); ok {
				out[s] = struct{}{}
			}
		}
	case []string:
		for _, s := range x {
			out[s] = struct{}{}
		}
	}
	return out
}

// ParseAmount reads a monetary answer. Strings accept a decimal comma when no
// dot is present ("45,50"). Booleans and anything unparsable yield ok=false.
func ParseAmount(v any) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, true
	case json.Number:
		return parseAmountString(string(x))
	case string:
		return parseAmountString(x)
	case float64:
		return decimal.NewFromFloat(x), true
	case float32:
		return decimal.NewFromFloat32(x), true
	case int:
		return decimal.NewFromInt(int64(x)), true
	case int64:
		return decimal.NewFromInt(x), true
	case int32:
		return decimal.NewFromInt32(x), true
	}
	return decimal.Zero, false
}

func parseAmountString(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
