// Package report exports the aggregated insights panel as an .xlsx
// workbook for download.
package report

import (
	"fmt"

	"doc-insights-go/internal/insights"
	"github.com/xuri/excelize/v2"
)

const (
	indicatorSheet = "Indicators"
	chartSheet     = "Charts"
)

// Export writes the panel to a workbook: one styled header row per
// category section followed by its member rows, plus a sheet with the
// bar and pie series. Build the panel with every section expanded when
// a full snapshot is wanted; collapsed sections export header-only.
func Export(panel insights.Panel) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", indicatorSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#4F46E5"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("style: %w", err)
	}

	row := 1
	setRow := func(sheet string, r int, values ...interface{}) {
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, r)
			f.SetCellValue(sheet, cell, v)
		}
	}

	setRow(indicatorSheet, row, "Category", "Indicator", "Value", "Unit", "Page", "Confidence")
	f.SetCellStyle(indicatorSheet, "A1", "F1", headerStyle)
	row++

	for _, s := range panel.Sections {
		setRow(indicatorSheet, row, s.Label, fmt.Sprintf("%d indicators", s.Count), s.Total, s.Unit)
		start, _ := excelize.CoordinatesToCellName(1, row)
		end, _ := excelize.CoordinatesToCellName(6, row)
		f.SetCellStyle(indicatorSheet, start, end, headerStyle)
		row++
		for _, r := range s.Rows {
			setRow(indicatorSheet, row, s.Label, r.Key, r.Value, r.Unit, r.Page, string(r.Confidence))
			row++
		}
	}

	if _, err := f.NewSheet(chartSheet); err != nil {
		return nil, fmt.Errorf("chart sheet: %w", err)
	}
	crow := 1
	setRow(chartSheet, crow, "Series", "Name", "Value", "Unit", "Color")
	f.SetCellStyle(chartSheet, "A1", "E1", headerStyle)
	crow++
	for _, p := range panel.BarSeries {
		setRow(chartSheet, crow, "bar", p.FullName, p.Value, p.Unit, p.Color)
		crow++
	}
	for _, p := range panel.PieSeries {
		setRow(chartSheet, crow, "pie", p.FullName, p.Value, p.Unit, p.Color)
		crow++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
