// Package tableview builds the collapsible per-category table model
// from ranked category groups.
package tableview

import (
	"sort"

	"doc-insights-go/internal/confidence"
	"doc-insights-go/internal/format"
	"doc-insights-go/internal/types"
)

// Row is one indicator inside an expanded section. Value is already
// formatted; unparsable values keep their raw text.
type Row struct {
	Key        string          `json:"key"`
	Value      string          `json:"value"`
	Unit       string          `json:"unit,omitempty"`
	Page       int             `json:"page,omitempty"`
	Confidence confidence.Band `json:"confidence"`
}

// Section is one category of the table: always a header, rows only
// while expanded.
type Section struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Count    int    `json:"count"`
	Total    string `json:"total"`
	Unit     string `json:"unit,omitempty"`
	Expanded bool   `json:"expanded"`
	Rows     []Row  `json:"rows,omitempty"`
}

// BuildSections renders one section per group, preserving the ranked
// group order. Rows sort ascending by numeric value; unparsable values
// sort as 0, same as they aggregate, but display their raw text.
func BuildSections(groups []types.CategoryGroup, expanded ExpandedState) []Section {
	sections := make([]Section, 0, len(groups))
	for _, g := range groups {
		s := Section{
			Category: g.Category,
			Label:    format.HumanizeCategoryLabel(g.Category),
			Count:    g.Count,
			Total:    format.FormatFloat(g.Total),
			Unit:     g.Unit,
			Expanded: expanded.Contains(g.Category),
		}
		if s.Expanded {
			s.Rows = buildRows(g.Members)
		}
		sections = append(sections, s)
	}
	return sections
}

func buildRows(members []types.Record) []Row {
	sorted := make([]types.Record, len(members))
	copy(sorted, members)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Numeric < sorted[j].Numeric
	})
	rows := make([]Row, 0, len(sorted))
	for _, m := range sorted {
		rows = append(rows, Row{
			Key:        m.Key,
			Value:      format.FormatScaledNumber(m.RawValue),
			Unit:       m.Unit,
			Page:       m.Page,
			Confidence: confidence.Classify(m.Confidence),
		})
	}
	return rows
}
