// Package dataset loads extracted-record collections from spreadsheet
// exports, for the demo endpoint and offline use.
package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"doc-insights-go/internal/types"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// Load reads the first sheet of an .xlsx export and maps rows to wire
// records, auto-detecting columns by header heuristics. Rows without an
// indicator key are skipped quietly; every other field degrades to its
// zero value, matching the boundary rules.
func Load(path string) ([]types.ExtractedRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("no data rows")
	}

	header := rows[0]
	docIdx := -1
	keyIdx := -1
	valueIdx := -1
	unitIdx := -1
	pageIdx := -1
	confIdx := -1
	chartIdx := -1
	categoryIdx := -1
	for i, h := range header {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case strings.Contains(l, "document") || strings.Contains(l, "doc id"):
			if docIdx == -1 {
				docIdx = i
			}
		case strings.Contains(l, "key") || strings.Contains(l, "indicator") || strings.Contains(l, "name"):
			if keyIdx == -1 {
				keyIdx = i
			}
		case strings.Contains(l, "value") || strings.Contains(l, "amount"):
			if valueIdx == -1 {
				valueIdx = i
			}
		case strings.Contains(l, "unit") || strings.Contains(l, "currency"):
			if unitIdx == -1 {
				unitIdx = i
			}
		case strings.Contains(l, "page"):
			pageIdx = i
		case strings.Contains(l, "confidence") || strings.Contains(l, "score"):
			confIdx = i
		case strings.Contains(l, "chart") || strings.Contains(l, "type"):
			chartIdx = i
		case strings.Contains(l, "category"):
			categoryIdx = i
		}
	}
	// fallback: the export's fixed column order is key, value, unit
	if keyIdx == -1 {
		keyIdx = 0
	}
	if valueIdx == -1 && len(header) > 1 {
		valueIdx = 1
	}

	cell := func(r []string, idx int) string {
		if idx >= 0 && idx < len(r) {
			return strings.TrimSpace(r[idx])
		}
		return ""
	}

	var out []types.ExtractedRecord
	for i, r := range rows {
		if i == 0 {
			continue
		}
		rec := types.ExtractedRecord{
			ID:         uuid.New().String(),
			DocumentID: cell(r, docIdx),
			Key:        cell(r, keyIdx),
			Value:      cell(r, valueIdx),
			Unit:       cell(r, unitIdx),
			ChartType:  cell(r, chartIdx),
			Category:   cell(r, categoryIdx),
		}
		if rec.Key == "" {
			// skip keyless rows quietly
			continue
		}
		rec.Page, _ = strconv.Atoi(cell(r, pageIdx))
		rec.ConfidenceScore, _ = strconv.ParseFloat(cell(r, confIdx), 64)
		out = append(out, rec)
	}
	return out, nil
}
