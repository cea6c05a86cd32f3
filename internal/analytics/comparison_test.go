package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cdpulse/internal/dataset"
)

func TestCrossIndicatorComparisonInnerJoin(t *testing.T) {
	a := dataset.ObservationTable{Rows: []dataset.Observation{
		obsTotal("Kenya", 2020, 0.40),
		obsTotal("Peru", 2020, 0.10),
	}}
	b := dataset.ObservationTable{Rows: []dataset.Observation{
		obsTotal("Kenya", 2020, 0.12),
	}}

	out := CrossIndicatorComparison(a, b)

	assert.Equal(t, 2020, out.Year)
	require.Len(t, out.Rows, 1, "Peru is excluded: inner join")
	assert.Equal(t, ComparisonRow{Country: "Kenya", APercent: 40.0, BPercent: 12.0}, out.Rows[0])
}

func TestCrossIndicatorComparisonLatestCommonYear(t *testing.T) {
	a := dataset.ObservationTable{Rows: []dataset.Observation{
		obsTotal("Kenya", 2018, 0.45),
		obsTotal("Kenya", 2020, 0.40),
		obsTotal("Kenya", 2022, 0.38),
	}}
	b := dataset.ObservationTable{Rows: []dataset.Observation{
		obsTotal("Kenya", 2018, 0.15),
		obsTotal("Kenya", 2020, 0.12),
	}}

	out := CrossIndicatorComparison(a, b)

	// 2022 exists only in a; the latest shared year wins.
	assert.Equal(t, 2020, out.Year)
	require.Len(t, out.Rows, 1)
	assert.InDelta(t, 40.0, out.Rows[0].APercent, 1e-9)
}

func TestCrossIndicatorComparisonNoCommonYearFallback(t *testing.T) {
	a := dataset.ObservationTable{Rows: []dataset.Observation{
		obsTotal("Kenya", 2021, 0.40),
	}}
	b := dataset.ObservationTable{Rows: []dataset.Observation{
		obsTotal("Kenya", 2019, 0.15),
	}}

	out := CrossIndicatorComparison(a, b)

	// Falls back to a's latest year; b contributes nothing there.
	assert.Equal(t, 2021, out.Year)
	assert.Empty(t, out.Rows)
}

func TestCrossIndicatorComparisonEmptyA(t *testing.T) {
	b := dataset.ObservationTable{Rows: []dataset.Observation{
		obsTotal("Kenya", 2019, 0.15),
	}}

	out := CrossIndicatorComparison(dataset.ObservationTable{}, b)
	assert.Zero(t, out.Year)
	assert.Empty(t, out.Rows)
}

func TestCrossIndicatorComparisonSexTotalOnly(t *testing.T) {
	a := dataset.ObservationTable{Rows: []dataset.Observation{
		{Country: "Kenya", Year: 2020, Sex: dataset.SexFemale, AgeGroup: "Total", Value: 0.42},
		obsTotal("Kenya", 2020, 0.40),
	}}
	b := dataset.ObservationTable{Rows: []dataset.Observation{
		obsTotal("Kenya", 2020, 0.12),
	}}

	out := CrossIndicatorComparison(a, b)

	require.Len(t, out.Rows, 1)
	assert.InDelta(t, 40.0, out.Rows[0].APercent, 1e-9)
}
