package analytics

import (
	"sort"

	"cdpulse/internal/dataset"
	"cdpulse/internal/transform"
)

// GlobalYearlyMean computes the arithmetic mean across all reporting
// countries for every year from minYear on, ascending by year. Only the
// combined (sex "Total") series contributes.
func GlobalYearlyMean(tbl dataset.ObservationTable, minYear int) []YearMean {
	rows := transform.Chain{
		transform.SexOnly(dataset.SexTotal),
		transform.YearFrom(minYear),
	}.Apply(tbl.Rows)

	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, o := range rows {
		sums[o.Year] += o.Value
		counts[o.Year]++
	}

	out := make([]YearMean, 0, len(sums))
	for year, sum := range sums {
		out = append(out, YearMean{Year: year, Percent: sum / float64(counts[year]) * 100})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// TopKPopulationSeries selects the k countries with the largest
// single-year population ever recorded in the metadata and returns the
// full combined-sex time series for exactly those countries, most
// populous first. A selected country that never reported the indicator
// contributes an empty series.
func TopKPopulationSeries(tbl dataset.ObservationTable, meta dataset.MetadataTable, k int) []CountrySeries {
	if k <= 0 {
		return nil
	}

	peak := make(map[string]int64)
	var order []string
	for _, m := range meta.Rows {
		if m.Population == nil {
			continue
		}
		if p, ok := peak[m.Country]; !ok {
			peak[m.Country] = *m.Population
			order = append(order, m.Country)
		} else if *m.Population > p {
			peak[m.Country] = *m.Population
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return peak[order[i]] > peak[order[j]]
	})
	if len(order) > k {
		order = order[:k]
	}

	rows := transform.SexOnly(dataset.SexTotal).Apply(tbl.Rows)
	byCountry := make(map[string][]YearValue)
	for _, o := range rows {
		byCountry[o.Country] = append(byCountry[o.Country], YearValue{Year: o.Year, Percent: o.Value * 100})
	}

	out := make([]CountrySeries, 0, len(order))
	for _, country := range order {
		points := byCountry[country]
		sort.Slice(points, func(i, j int) bool { return points[i].Year < points[j].Year })
		out = append(out, CountrySeries{
			Country:    country,
			Population: peak[country],
			Points:     points,
		})
	}
	return out
}
