// Package chartseries derives the bar and pie chart series shown on
// the document insights panel.
package chartseries

import (
	"sort"

	"doc-insights-go/internal/format"
	"doc-insights-go/internal/types"
)

// The bar chart shows at most the top entries by value.
const barTopN = 6

// DefaultUnit labels bar values whose record carries no unit.
const DefaultUnit = "USD"

// palette is the fixed cyclic color order. Assignment is by rank index,
// never random or content-derived, so re-renders stay visually stable.
var palette = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// Point is a single chart entry, render-ready.
type Point struct {
	DisplayName string  `json:"display_name"`
	FullName    string  `json:"full_name"`
	Value       float64 `json:"value"`
	Unit        string  `json:"unit,omitempty"`
	Color       string  `json:"color"`
}

// ColorFor returns the palette color for a presentation index.
func ColorFor(index int) string {
	return palette[index%len(palette)]
}

// BuildBarSeries selects bar-tagged records with a parseable value,
// ranks them descending and keeps the top entries. Ties keep input
// order. Returns nil when nothing is eligible so the caller omits the
// bar section entirely instead of rendering it empty.
func BuildBarSeries(records []types.Record) []Point {
	eligible := make([]types.Record, 0, len(records))
	for _, r := range records {
		if r.Chart == types.ChartBar && r.IsNumeric {
			eligible = append(eligible, r)
		}
	}
	if len(eligible) == 0 {
		return nil
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].Numeric > eligible[j].Numeric
	})
	if len(eligible) > barTopN {
		eligible = eligible[:barTopN]
	}
	points := make([]Point, 0, len(eligible))
	for i, r := range eligible {
		unit := r.Unit
		if unit == "" {
			unit = DefaultUnit
		}
		points = append(points, Point{
			DisplayName: format.Truncate(r.Key),
			FullName:    r.Key,
			Value:       r.Numeric,
			Unit:        unit,
			Color:       ColorFor(i),
		})
	}
	return points
}

// BuildPieSeries maps category totals to pie slices, descending by
// value. The pie reads the full aggregation rather than the
// bar-filtered records, so slice totals may include values no other
// chart shows; that asymmetry is intentional (pie = category overview,
// bar = top items). A single-category pie carries no information and is
// suppressed.
func BuildPieSeries(groups []types.CategoryGroup) []Point {
	if len(groups) < 2 {
		return nil
	}
	sorted := make([]types.CategoryGroup, len(groups))
	copy(sorted, groups)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Total > sorted[j].Total
	})
	points := make([]Point, 0, len(sorted))
	for i, g := range sorted {
		label := format.HumanizeCategoryLabel(g.Category)
		points = append(points, Point{
			DisplayName: format.Truncate(label),
			FullName:    label,
			Value:       g.Total,
			Unit:        g.Unit,
			Color:       ColorFor(i),
		})
	}
	return points
}
