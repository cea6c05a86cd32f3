package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cdpulse/internal/dataset"
)

func obsTotal(country string, year int, value float64) dataset.Observation {
	return dataset.Observation{Country: country, Year: year, Sex: dataset.SexTotal, AgeGroup: "Total", Value: value}
}

func fptr(f float64) *float64 { return &f }
func iptr(i int64) *int64     { return &i }

func TestLatestYearTopN(t *testing.T) {
	tbl := dataset.ObservationTable{Rows: []dataset.Observation{
		obsTotal("Chad", 2021, 0.35),
		obsTotal("Niger", 2021, 0.52),
		obsTotal("Kenya", 2021, 0.21),
		obsTotal("Peru", 2021, 0.10),
		// Older year must not appear even though the value is extreme.
		obsTotal("Somalia", 2017, 0.70),
		// Non-Total sex must not contribute.
		{Country: "Mali", Year: 2021, Sex: dataset.SexFemale, AgeGroup: "Total", Value: 0.60},
	}}

	top := LatestYearTopN(tbl, 3)

	require.Len(t, top, 3)
	assert.Equal(t, []RankedCountry{
		{Country: "Niger", Year: 2021, Percent: 52.0},
		{Country: "Chad", Year: 2021, Percent: 35.0},
		{Country: "Kenya", Year: 2021, Percent: 21.0},
	}, top)
}

func TestLatestYearTopNUsesGlobalMaxYear(t *testing.T) {
	tbl := dataset.ObservationTable{Rows: []dataset.Observation{
		obsTotal("Chad", 2018, 0.35),
		obsTotal("Norway", 2022, 0.02),
	}}

	top := LatestYearTopN(tbl, 10)

	// Chad's 2018 row drops out: the year is the table-wide maximum.
	require.Len(t, top, 1)
	assert.Equal(t, "Norway", top[0].Country)
	assert.Equal(t, 2022, top[0].Year)
}

func TestLatestYearTopNStableTieBreak(t *testing.T) {
	tbl := dataset.ObservationTable{Rows: []dataset.Observation{
		obsTotal("Benin", 2021, 0.30),
		obsTotal("Togo", 2021, 0.30),
		obsTotal("Mali", 2021, 0.30),
	}}

	top := LatestYearTopN(tbl, 2)

	// Equal values keep input row order.
	require.Len(t, top, 2)
	assert.Equal(t, "Benin", top[0].Country)
	assert.Equal(t, "Togo", top[1].Country)
}

func TestLatestYearTopNEmptyInput(t *testing.T) {
	assert.Nil(t, LatestYearTopN(dataset.ObservationTable{}, 5))
	assert.Nil(t, LatestYearTopN(dataset.ObservationTable{Rows: []dataset.Observation{obsTotal("Chad", 2021, 0.3)}}, 0))
}

func TestPerCountryLatestIndependentYears(t *testing.T) {
	tbl := dataset.ObservationTable{Rows: []dataset.Observation{
		obsTotal("Chad", 2018, 0.35),
		obsTotal("Chad", 2021, 0.30),
		obsTotal("Norway", 2022, 0.02),
	}}
	meta := dataset.MetadataTable{Rows: []dataset.CountryYear{
		{Country: "Chad", Year: 2018, GDPPerCapita: fptr(690.0)},
		{Country: "Chad", Year: 2021, GDPPerCapita: fptr(640.5)},
		{Country: "Norway", Year: 2022, GDPPerCapita: fptr(78128.6)},
	}}

	out := PerCountryLatest(tbl, meta)

	require.Len(t, out, 2)
	assert.Equal(t, CountryLatest{Country: "Chad", Year: 2021, Sex: dataset.SexTotal, Percent: 30.0, GDPPerCapita: 640.5}, out[0])
	assert.Equal(t, "Norway", out[1].Country)
	assert.Equal(t, 2022, out[1].Year)
	assert.InDelta(t, 2.0, out[1].Percent, 1e-9)
}

func TestPerCountryLatestExactMatchJoin(t *testing.T) {
	tbl := dataset.ObservationTable{Rows: []dataset.Observation{
		obsTotal("Viet Nam", 2020, 0.08),
	}}
	// Different spelling: the join silently drops the row.
	meta := dataset.MetadataTable{Rows: []dataset.CountryYear{
		{Country: "Vietnam", Year: 2020, GDPPerCapita: fptr(3500.0)},
	}}

	assert.Empty(t, PerCountryLatest(tbl, meta))
}

func TestPerCountryLatestDropsMissingGDP(t *testing.T) {
	tbl := dataset.ObservationTable{Rows: []dataset.Observation{
		obsTotal("Somalia", 2020, 0.55),
	}}
	meta := dataset.MetadataTable{Rows: []dataset.CountryYear{
		{Country: "Somalia", Year: 2020, Population: iptr(15893219)}, // no GDP on record
	}}

	assert.Empty(t, PerCountryLatest(tbl, meta))
}

func TestPerCountryLatestKeepsSexSeries(t *testing.T) {
	tbl := dataset.ObservationTable{Rows: []dataset.Observation{
		obsTotal("Chad", 2021, 0.30),
		{Country: "Chad", Year: 2021, Sex: dataset.SexFemale, AgeGroup: "Total", Value: 0.32},
		{Country: "Chad", Year: 2021, Sex: dataset.SexMale, AgeGroup: "Total", Value: 0.28},
	}}
	meta := dataset.MetadataTable{Rows: []dataset.CountryYear{
		{Country: "Chad", Year: 2021, GDPPerCapita: fptr(640.5)},
	}}

	out := PerCountryLatest(tbl, meta)

	// All sex series survive so the scatter can color by sex.
	require.Len(t, out, 3)
	assert.Equal(t, dataset.SexTotal, out[0].Sex)
	assert.Equal(t, dataset.SexFemale, out[1].Sex)
}
