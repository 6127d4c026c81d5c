// Package insights assembles the document insights panel: category
// table sections, bar and pie series, a highlight card and the empty
// state. The whole panel is recomputed from scratch on every call —
// pure, synchronous, no cache.
package insights

import (
	"fmt"

	"doc-insights-go/internal/aggregator"
	"doc-insights-go/internal/chartseries"
	"doc-insights-go/internal/format"
	"doc-insights-go/internal/records"
	"doc-insights-go/internal/tableview"
	"doc-insights-go/internal/types"
)

// EmptyMessage is shown when a document has no extracted records yet.
const EmptyMessage = "No extracted indicators for this document yet."

// The top category is called out when it holds at least this share of
// the grand total.
const dominantShare = 0.35

// Highlight is a one-line summary card over the aggregation.
type Highlight struct {
	Insight string `json:"insight"`
	Detail  string `json:"detail"`
}

// Panel is the complete view model for one document's insights screen.
// Omitted sub-sections (bar with no eligible records, pie with a single
// category) are nil, never rendered empty.
type Panel struct {
	DocumentID string              `json:"document_id,omitempty"`
	Empty      bool                `json:"empty"`
	Message    string              `json:"message,omitempty"`
	Sections   []tableview.Section `json:"sections,omitempty"`
	BarSeries  []chartseries.Point `json:"bar_series,omitempty"`
	PieSeries  []chartseries.Point `json:"pie_series,omitempty"`
	Highlight  *Highlight          `json:"highlight,omitempty"`
}

// BuildPanel runs the full pipeline over one snapshot of wire records:
// normalize, aggregate, table sections, chart series. Malformed records
// degrade per the boundary rules; nothing here returns an error.
func BuildPanel(documentID string, raw []types.ExtractedRecord, expanded tableview.ExpandedState) Panel {
	if len(raw) == 0 {
		return Panel{DocumentID: documentID, Empty: true, Message: EmptyMessage}
	}
	recs := records.Normalize(raw)
	groups := aggregator.Aggregate(recs)
	return Panel{
		DocumentID: documentID,
		Sections:   tableview.BuildSections(groups, expanded),
		BarSeries:  chartseries.BuildBarSeries(recs),
		PieSeries:  chartseries.BuildPieSeries(groups),
		Highlight:  buildHighlight(groups),
	}
}

// BuildExpandedPanel builds the panel with every category expanded,
// for exports and the demo endpoint.
func BuildExpandedPanel(documentID string, raw []types.ExtractedRecord) Panel {
	recs := records.Normalize(raw)
	seen := make(map[string]struct{}, len(recs))
	cats := make([]string, 0, len(recs))
	for _, r := range recs {
		if _, ok := seen[r.Category]; !ok {
			seen[r.Category] = struct{}{}
			cats = append(cats, r.Category)
		}
	}
	return BuildPanel(documentID, raw, tableview.FromCategories(cats))
}

// buildHighlight calls out the dominant category when one clearly leads
// the totals.
func buildHighlight(groups []types.CategoryGroup) *Highlight {
	if len(groups) == 0 {
		return nil
	}
	grand := 0.0
	for _, g := range groups {
		grand += g.Total
	}
	top := groups[0]
	if grand > 0 && top.Total/grand >= dominantShare {
		return &Highlight{
			Insight: fmt.Sprintf("%s leads with %.0f%% of extracted value", format.HumanizeCategoryLabel(top.Category), top.Total/grand*100),
			Detail:  fmt.Sprintf("%d indicators totaling %s", top.Count, format.FormatFloat(top.Total)),
		}
	}
	return &Highlight{
		Insight: "No dominant category detected",
		Detail:  "Extracted value is spread across categories",
	}
}
