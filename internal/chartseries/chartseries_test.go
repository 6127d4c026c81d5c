package chartseries

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doc-insights-go/internal/aggregator"
	"doc-insights-go/internal/records"
	"doc-insights-go/internal/types"
)

func barRecord(id, key, value string) types.ExtractedRecord {
	return types.ExtractedRecord{ID: id, Key: key, Value: value, ChartType: "bar", Category: "finance_cost"}
}

func TestBuildBarSeriesFiltersAndRanks(t *testing.T) {
	recs := records.Normalize([]types.ExtractedRecord{
		barRecord("1", "opex", "500"),
		barRecord("2", "capex", "1500"),
		{ID: "3", Key: "trend", Value: "900", ChartType: "line"}, // wrong chart type
		barRecord("4", "writeoff", "not-a-number"),               // unparsable
		barRecord("5", "fees", "1000"),
	})
	points := BuildBarSeries(recs)
	require.Len(t, points, 3)

	assert.Equal(t, "capex", points[0].FullName)
	assert.Equal(t, 1500.0, points[0].Value)
	assert.Equal(t, "fees", points[1].FullName)
	assert.Equal(t, "opex", points[2].FullName)
}

func TestBuildBarSeriesTopN(t *testing.T) {
	var in []types.ExtractedRecord
	for i := 0; i < 9; i++ {
		in = append(in, barRecord(fmt.Sprintf("%d", i), fmt.Sprintf("item-%d", i), fmt.Sprintf("%d", 100-i)))
	}
	points := BuildBarSeries(records.Normalize(in))
	require.Len(t, points, 6)
	assert.Equal(t, "item-0", points[0].FullName)
	assert.Equal(t, "item-5", points[5].FullName)
}

func TestBuildBarSeriesDefaultUnit(t *testing.T) {
	withUnit := barRecord("1", "a", "10")
	withUnit.Unit = "%"
	noUnit := barRecord("2", "b", "20")

	points := BuildBarSeries(records.Normalize([]types.ExtractedRecord{withUnit, noUnit}))
	require.Len(t, points, 2)
	assert.Equal(t, DefaultUnit, points[0].Unit, "missing unit falls back to the default currency")
	assert.Equal(t, "%", points[1].Unit)
}

func TestBuildBarSeriesTruncatesDisplayName(t *testing.T) {
	long := barRecord("1", "Total Operating Expenditure Including Capital Items", "10")
	points := BuildBarSeries(records.Normalize([]types.ExtractedRecord{long}))
	require.Len(t, points, 1)
	assert.True(t, strings.HasSuffix(points[0].DisplayName, "…"))
	assert.Equal(t, long.Key, points[0].FullName)
}

func TestBuildBarSeriesEmptyWhenNoneEligible(t *testing.T) {
	recs := records.Normalize([]types.ExtractedRecord{
		{ID: "1", Key: "a", Value: "10", ChartType: "pie"},
		{ID: "2", Key: "b", Value: "junk", ChartType: "bar"},
	})
	assert.Nil(t, BuildBarSeries(recs), "bar section is omitted, not rendered empty")
}

func TestColorAssignmentIsDeterministic(t *testing.T) {
	var in []types.ExtractedRecord
	for i := 0; i < 6; i++ {
		in = append(in, barRecord(fmt.Sprintf("%d", i), fmt.Sprintf("item-%d", i), fmt.Sprintf("%d", 60-i)))
	}
	recs := records.Normalize(in)
	first := BuildBarSeries(recs)
	second := BuildBarSeries(recs)
	require.Equal(t, first, second)
	for i, p := range first {
		assert.Equal(t, ColorFor(i), p.Color)
	}
}

func TestColorForCycles(t *testing.T) {
	n := len(palette)
	assert.Equal(t, ColorFor(0), ColorFor(n))
	assert.Equal(t, ColorFor(3), ColorFor(n+3))
	assert.GreaterOrEqual(t, n, 8)
}

func TestBuildPieSeries(t *testing.T) {
	groups := aggregator.Aggregate(records.Normalize([]types.ExtractedRecord{
		{ID: "1", Key: "a", Value: "5", Category: "environment"},
		{ID: "2", Key: "b", Value: "20", Category: "finance_cost"},
	}))
	points := BuildPieSeries(groups)
	require.Len(t, points, 2)
	assert.Equal(t, "Finance Cost", points[0].FullName)
	assert.Equal(t, 20.0, points[0].Value)
	assert.Equal(t, ColorFor(0), points[0].Color)
	assert.Equal(t, "Environment", points[1].FullName)
}

func TestBuildPieSeriesSuppressedForSingleCategory(t *testing.T) {
	groups := aggregator.Aggregate(records.Normalize([]types.ExtractedRecord{
		{ID: "1", Key: "a", Value: "5", Category: "environment"},
		{ID: "2", Key: "b", Value: "7", Category: "environment"},
	}))
	assert.Nil(t, BuildPieSeries(groups), "single-category pie is uninformative")
}

func TestPieIncludesNonBarRecords(t *testing.T) {
	// intentional asymmetry: the pie aggregates the full record set
	// while the bar filters to bar-tagged records
	in := records.Normalize([]types.ExtractedRecord{
		{ID: "1", Key: "a", Value: "100", ChartType: "bar", Category: "finance_cost"},
		{ID: "2", Key: "b", Value: "50", ChartType: "line", Category: "finance_cost"},
		{ID: "3", Key: "c", Value: "30", Category: "environment"},
	})
	groups := aggregator.Aggregate(in)

	bar := BuildBarSeries(in)
	require.Len(t, bar, 1)

	pie := BuildPieSeries(groups)
	require.Len(t, pie, 2)
	assert.Equal(t, 150.0, pie[0].Value, "pie total includes the line-tagged value")
}
