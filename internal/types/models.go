package types

// ChartKind tags a record with the visualization it is eligible for.
type ChartKind string

const (
	ChartBar        ChartKind = "bar"
	ChartLine       ChartKind = "line"
	ChartPie        ChartKind = "pie"
	ChartChoropleth ChartKind = "choropleth"
	ChartNone       ChartKind = ""
)

// CategoryOther is the sentinel category for records the backend left
// uncategorized.
const CategoryOther = "other"

// ExtractedRecord is one extracted indicator exactly as the backend
// returns it. Value is text and may be garbage; Category may be empty.
// Run records.Normalize before feeding the engine.
type ExtractedRecord struct {
	ID              string  `json:"id"`
	DocumentID      string  `json:"document_id"`
	Key             string  `json:"key"`
	Value           string  `json:"value"`
	Unit            string  `json:"unit,omitempty"`
	Page            int     `json:"page,omitempty"`
	ConfidenceScore float64 `json:"confidence_score"`
	ChartType       string  `json:"chart_type,omitempty"`
	Category        string  `json:"category,omitempty"`
}

// Record is the strict internal form of an extracted indicator. The
// numeric value is parsed once at the boundary: Numeric is 0 whenever
// IsNumeric is false, and is never NaN or infinite.
type Record struct {
	ID         string
	DocumentID string
	Key        string
	RawValue   string
	Numeric    float64
	IsNumeric  bool
	Unit       string
	Page       int
	Confidence float64
	Chart      ChartKind
	Category   string
}

// CategoryGroup is one cell of the category partition: every input
// record belongs to exactly one group. Total sums the parseable member
// values; Unit is the unit of the first member.
type CategoryGroup struct {
	Category string   `json:"category"`
	Members  []Record `json:"-"`
	Total    float64  `json:"total"`
	Unit     string   `json:"unit,omitempty"`
	Count    int      `json:"count"`
}
