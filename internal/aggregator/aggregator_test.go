package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doc-insights-go/internal/records"
	"doc-insights-go/internal/types"
)

func wire(id, category, value string) types.ExtractedRecord {
	return types.ExtractedRecord{ID: id, Key: "k-" + id, Value: value, Category: category}
}

func TestAggregateRanksByTotal(t *testing.T) {
	recs := records.Normalize([]types.ExtractedRecord{
		wire("1", "energy", "10"),
		wire("2", "energy", "bad"),
		wire("3", "climate", "5"),
	})
	groups := Aggregate(recs)
	require.Len(t, groups, 2)

	// parse failure contributes 0 but still counts as a member
	assert.Equal(t, "energy", groups[0].Category)
	assert.Equal(t, 10.0, groups[0].Total)
	assert.Equal(t, 2, groups[0].Count)

	assert.Equal(t, "climate", groups[1].Category)
	assert.Equal(t, 5.0, groups[1].Total)
	assert.Equal(t, 1, groups[1].Count)
}

func TestAggregatePartitionIsTotalAndDisjoint(t *testing.T) {
	in := []types.ExtractedRecord{
		wire("1", "a", "1"),
		wire("2", "b", "junk"),
		wire("3", "", "3"),
		wire("4", "a", "4"),
		wire("5", "c", "NaN"),
	}
	groups := Aggregate(records.Normalize(in))

	seen := map[string]int{}
	for _, g := range groups {
		assert.Equal(t, len(g.Members), g.Count)
		for _, m := range g.Members {
			seen[m.ID]++
		}
	}
	require.Len(t, seen, len(in))
	for _, r := range in {
		assert.Equal(t, 1, seen[r.ID], "record %s appears exactly once", r.ID)
	}
}

func TestAggregateSumConservation(t *testing.T) {
	in := []types.ExtractedRecord{
		wire("1", "a", "1.5"),
		wire("2", "b", "oops"),
		wire("3", "a", "-2"),
		wire("4", "c", "1000000"),
		wire("5", "", "0.25"),
	}
	var want float64
	for _, r := range in {
		want += records.ParseFloatOrZero(r.Value)
	}
	var got float64
	for _, g := range Aggregate(records.Normalize(in)) {
		got += g.Total
	}
	assert.InDelta(t, want, got, 1e-9)
}

func TestAggregateIdempotent(t *testing.T) {
	recs := records.Normalize([]types.ExtractedRecord{
		wire("1", "a", "3"),
		wire("2", "b", "3"),
		wire("3", "c", "7"),
	})
	first := Aggregate(recs)
	second := Aggregate(recs)
	assert.Equal(t, first, second)
}

func TestAggregateTiesKeepInputOrder(t *testing.T) {
	// equal totals: first-encountered category ranks first. This is
	// load-bearing for deterministic color assignment downstream.
	recs := records.Normalize([]types.ExtractedRecord{
		wire("1", "zeta", "5"),
		wire("2", "alpha", "5"),
		wire("3", "mid", "5"),
	})
	groups := Aggregate(recs)
	require.Len(t, groups, 3)
	assert.Equal(t, "zeta", groups[0].Category)
	assert.Equal(t, "alpha", groups[1].Category)
	assert.Equal(t, "mid", groups[2].Category)
}

func TestAggregateEmptyInput(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
	assert.Empty(t, Aggregate([]types.Record{}))
}

func TestAggregateUnitFromFirstMember(t *testing.T) {
	recs := records.Normalize([]types.ExtractedRecord{
		{ID: "1", Key: "a", Value: "1", Unit: "EUR", Category: "fin"},
		{ID: "2", Key: "b", Value: "2", Unit: "USD", Category: "fin"},
	})
	groups := Aggregate(recs)
	require.Len(t, groups, 1)
	assert.Equal(t, "EUR", groups[0].Unit)
}

func TestAggregateEmptyCategoryUsesSentinel(t *testing.T) {
	groups := Aggregate(records.Normalize([]types.ExtractedRecord{wire("1", "", "2")}))
	require.Len(t, groups, 1)
	assert.Equal(t, types.CategoryOther, groups[0].Category)
}
