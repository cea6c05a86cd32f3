package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cdpulse/internal/dataset"
)

func TestGlobalYearlyMean(t *testing.T) {
	tbl := dataset.ObservationTable{Rows: []dataset.Observation{
		obsTotal("Chad", 2020, 0.40),
		obsTotal("Kenya", 2020, 0.20),
		obsTotal("Chad", 2021, 0.35),
		// Sex-specific series never contribute to the global mean.
		{Country: "Chad", Year: 2020, Sex: dataset.SexMale, AgeGroup: "Total", Value: 0.90},
	}}

	out := GlobalYearlyMean(tbl, 2000)

	require.Len(t, out, 2)
	assert.Equal(t, YearMean{Year: 2020, Percent: 30.0}, out[0])
	assert.Equal(t, YearMean{Year: 2021, Percent: 35.0}, out[1])
}

func TestGlobalYearlyMeanMinYearBoundary(t *testing.T) {
	tbl := dataset.ObservationTable{Rows: []dataset.Observation{
		obsTotal("Chad", 1999, 0.50),
		obsTotal("Chad", 2000, 0.48),
		obsTotal("Chad", 2001, 0.47),
	}}

	out := GlobalYearlyMean(tbl, 2000)

	require.Len(t, out, 2)
	assert.Equal(t, 2000, out[0].Year)
	assert.Equal(t, 2001, out[1].Year)
}

func TestGlobalYearlyMeanEmpty(t *testing.T) {
	assert.Empty(t, GlobalYearlyMean(dataset.ObservationTable{}, 2000))
}

func TestTopKPopulationSeries(t *testing.T) {
	tbl := dataset.ObservationTable{Rows: []dataset.Observation{
		obsTotal("India", 2015, 0.30),
		obsTotal("India", 2020, 0.25),
		obsTotal("Nigeria", 2018, 0.45),
		obsTotal("Chad", 2021, 0.30),
	}}
	meta := dataset.MetadataTable{Rows: []dataset.CountryYear{
		{Country: "Chad", Year: 2021, Population: iptr(17_000_000)},
		{Country: "India", Year: 2010, Population: iptr(1_230_000_000)},
		{Country: "India", Year: 2021, Population: iptr(1_390_000_000)},
		{Country: "Nigeria", Year: 2021, Population: iptr(213_000_000)},
	}}

	out := TopKPopulationSeries(tbl, meta, 2)

	require.Len(t, out, 2)
	// Most populous first, ranked by each country's single-year peak.
	assert.Equal(t, "India", out[0].Country)
	assert.Equal(t, int64(1_390_000_000), out[0].Population)
	require.Len(t, out[0].Points, 2)
	assert.Equal(t, YearValue{Year: 2015, Percent: 30.0}, out[0].Points[0])
	assert.Equal(t, YearValue{Year: 2020, Percent: 25.0}, out[0].Points[1])

	assert.Equal(t, "Nigeria", out[1].Country)
	require.Len(t, out[1].Points, 1)
}

func TestTopKPopulationSeriesSelectedButUnreported(t *testing.T) {
	tbl := dataset.ObservationTable{Rows: []dataset.Observation{
		obsTotal("Chad", 2021, 0.30),
	}}
	meta := dataset.MetadataTable{Rows: []dataset.CountryYear{
		{Country: "China", Year: 2021, Population: iptr(1_410_000_000)},
		{Country: "Chad", Year: 2021, Population: iptr(17_000_000)},
	}}

	out := TopKPopulationSeries(tbl, meta, 2)

	// Selection is by population only; China stays selected with an empty
	// series even though it never reported the indicator.
	require.Len(t, out, 2)
	assert.Equal(t, "China", out[0].Country)
	assert.Empty(t, out[0].Points)
	assert.Equal(t, "Chad", out[1].Country)
}

func TestTopKPopulationSeriesSkipsNilPopulation(t *testing.T) {
	tbl := dataset.ObservationTable{Rows: []dataset.Observation{
		obsTotal("Chad", 2021, 0.30),
	}}
	meta := dataset.MetadataTable{Rows: []dataset.CountryYear{
		{Country: "Somalia", Year: 2021}, // population never recorded
		{Country: "Chad", Year: 2021, Population: iptr(17_000_000)},
	}}

	out := TopKPopulationSeries(tbl, meta, 5)

	require.Len(t, out, 1)
	assert.Equal(t, "Chad", out[0].Country)
}

func TestTrendLine(t *testing.T) {
	alpha, beta, ok := TrendLine([]float64{1, 2, 3, 4}, []float64{3, 5, 7, 9})
	require.True(t, ok)
	assert.InDelta(t, 1.0, alpha, 1e-9)
	assert.InDelta(t, 2.0, beta, 1e-9)
}

func TestTrendLineDegenerate(t *testing.T) {
	_, _, ok := TrendLine([]float64{5}, []float64{1})
	assert.False(t, ok)

	_, _, ok = TrendLine([]float64{2, 2, 2}, []float64{1, 2, 3})
	assert.False(t, ok, "vertical data has no least-squares line")
}

func TestCorrelation(t *testing.T) {
	assert.InDelta(t, 1.0, Correlation([]float64{1, 2, 3}, []float64{2, 4, 6}), 1e-9)
	assert.InDelta(t, -1.0, Correlation([]float64{1, 2, 3}, []float64{6, 4, 2}), 1e-9)
	assert.Equal(t, 0.0, Correlation([]float64{1}, []float64{2}))
}
