package analytics

import "cdpulse/internal/dataset"

// Reducer outputs carry percent-scaled values (source fraction ×100).
// Source tables are never mutated; rescaling happens only here.

// RankedCountry is one row of a latest-year top-N ranking.
type RankedCountry struct {
	Country string
	Year    int
	Percent float64
}

// CountryLatest joins a country's own most recent observation with GDP
// per capita for the same (country, year).
type CountryLatest struct {
	Country      string
	Year         int
	Sex          dataset.Sex
	Percent      float64
	GDPPerCapita float64
}

// YearMean is the arithmetic mean across all reporting countries for one
// year.
type YearMean struct {
	Year    int
	Percent float64
}

// YearValue is one point of a country time series.
type YearValue struct {
	Year    int
	Percent float64
}

// CountrySeries is the full observation series for one country. Points is
// empty when the country never reported the indicator.
type CountrySeries struct {
	Country    string
	Population int64 // largest single-year population on record
	Points     []YearValue
}

// ComparisonRow pairs the two indicator values for one country in the
// comparison year.
type ComparisonRow struct {
	Country  string
	APercent float64
	BPercent float64
}

// ComparisonTable is the inner join of two indicators for one year.
type ComparisonTable struct {
	Year int
	Rows []ComparisonRow
}

// RegionMean is the average indicator value across the mapped countries of
// one region.
type RegionMean struct {
	Region    string
	Percent   float64
	Countries int
}
