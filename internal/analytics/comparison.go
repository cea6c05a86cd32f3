package analytics

import (
	"cdpulse/internal/dataset"
	"cdpulse/internal/transform"
)

// CrossIndicatorComparison pairs the two deprivation indicators per
// country for the most recent year present in both tables. When the two
// tables share no year at all, the first table's latest year is used and
// the second side simply contributes no matches, which makes the inner
// join empty. Inner-join semantics: only countries present in both tables
// for the chosen year survive.
func CrossIndicatorComparison(a, b dataset.ObservationTable) ComparisonTable {
	rowsA := transform.SexOnly(dataset.SexTotal).Apply(a.Rows)
	rowsB := transform.SexOnly(dataset.SexTotal).Apply(b.Rows)
	if len(rowsA) == 0 {
		return ComparisonTable{}
	}

	yearsB := make(map[int]bool)
	for _, o := range rowsB {
		yearsB[o.Year] = true
	}

	// Latest common year; fall back to a's latest when disjoint.
	var year int
	var haveCommon bool
	var latestA int
	for _, o := range rowsA {
		if o.Year > latestA {
			latestA = o.Year
		}
		if yearsB[o.Year] && (!haveCommon || o.Year > year) {
			year = o.Year
			haveCommon = true
		}
	}
	if !haveCommon {
		year = latestA
	}

	valueB := make(map[string]float64)
	for _, o := range rowsB {
		if o.Year == year {
			valueB[o.Country] = o.Value
		}
	}

	out := ComparisonTable{Year: year}
	for _, o := range rowsA {
		if o.Year != year {
			continue
		}
		vb, ok := valueB[o.Country]
		if !ok {
			continue
		}
		out.Rows = append(out.Rows, ComparisonRow{
			Country:  o.Country,
			APercent: o.Value * 100,
			BPercent: vb * 100,
		})
	}
	return out
}
