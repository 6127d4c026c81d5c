// Package aggregator partitions extracted records into ranked category
// groups, the shared source for the table and the pie chart.
package aggregator

import (
	"sort"

	"doc-insights-go/internal/types"
)

// Aggregate groups records by category and ranks groups by descending
// total. The partition is total and disjoint: every record lands in
// exactly one group, none dropped, none duplicated. Groups with equal
// totals keep first-encountered input order — downstream color and
// position assignment depends on this being stable. Empty input yields
// an empty result, not an error.
func Aggregate(records []types.Record) []types.CategoryGroup {
	if len(records) == 0 {
		return nil
	}
	index := make(map[string]int, len(records))
	groups := make([]types.CategoryGroup, 0)
	for _, r := range records {
		i, ok := index[r.Category]
		if !ok {
			i = len(groups)
			index[r.Category] = i
			groups = append(groups, types.CategoryGroup{
				Category: r.Category,
				Unit:     r.Unit,
			})
		}
		g := &groups[i]
		g.Members = append(g.Members, r)
		g.Count++
		if r.IsNumeric {
			g.Total += r.Numeric
		}
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Total > groups[j].Total
	})
	return groups
}
