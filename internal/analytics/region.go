package analytics

import (
	"sort"

	"cdpulse/internal/config"
	"cdpulse/internal/dataset"
	"cdpulse/internal/transform"
)

// RegionAverage averages the latest-year combined-sex values per region.
// Region lookup is exact string match on country name; unmapped countries
// are dropped rather than bucketed into an "Other" label, so a region
// only appears when at least one of its countries is present in the
// input. Output is sorted descending by value.
func RegionAverage(tbl dataset.ObservationTable, regions config.RegionMap) []RegionMean {
	rows := transform.SexOnly(dataset.SexTotal).Apply(tbl.Rows)
	if len(rows) == 0 {
		return nil
	}

	latest := rows[0].Year
	for _, o := range rows {
		if o.Year > latest {
			latest = o.Year
		}
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, o := range rows {
		if o.Year != latest {
			continue
		}
		region, ok := regions[o.Country]
		if !ok {
			continue
		}
		sums[region] += o.Value
		counts[region]++
	}

	out := make([]RegionMean, 0, len(sums))
	for region, sum := range sums {
		out = append(out, RegionMean{
			Region:    region,
			Percent:   sum / float64(counts[region]) * 100,
			Countries: counts[region],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Percent != out[j].Percent {
			return out[i].Percent > out[j].Percent
		}
		return out[i].Region < out[j].Region
	})
	return out
}
