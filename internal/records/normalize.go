// Package records is the boundary between the backend's loosely typed
// extraction payloads and the engine's strict record type. All
// defensive numeric parsing lives here; downstream packages never
// re-parse.
package records

import (
	"math"
	"strconv"
	"strings"

	"doc-insights-go/internal/types"
)

// ParseFloatOrZero parses s as a float, treating failure, NaN and
// infinities as 0. Totals built on it can never be NaN.
func ParseFloatOrZero(s string) float64 {
	f, _ := parseFloat(s)
	return f
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Normalize coerces wire records into the strict internal form:
// category sentinel applied, value pre-parsed, chart kind validated.
// Order is preserved and nothing is dropped — malformed fields degrade,
// they never reject a record.
func Normalize(in []types.ExtractedRecord) []types.Record {
	out := make([]types.Record, 0, len(in))
	for _, r := range in {
		num, ok := parseFloat(r.Value)
		out = append(out, types.Record{
			ID:         r.ID,
			DocumentID: r.DocumentID,
			Key:        r.Key,
			RawValue:   r.Value,
			Numeric:    num,
			IsNumeric:  ok,
			Unit:       r.Unit,
			Page:       r.Page,
			Confidence: r.ConfidenceScore,
			Chart:      chartKind(r.ChartType),
			Category:   categoryOrSentinel(r.Category),
		})
	}
	return out
}

func categoryOrSentinel(c string) string {
	c = strings.TrimSpace(c)
	if c == "" {
		return types.CategoryOther
	}
	return c
}

func chartKind(s string) types.ChartKind {
	switch k := types.ChartKind(strings.ToLower(strings.TrimSpace(s))); k {
	case types.ChartBar, types.ChartLine, types.ChartPie, types.ChartChoropleth:
		return k
	default:
		return types.ChartNone
	}
}
