package analytics

import (
	"sort"

	"cdpulse/internal/dataset"
	"cdpulse/internal/transform"
)

// LatestYearTopN ranks the n worst-affected countries in the most recent
// year present anywhere in the table. The year is global, not
// per-country: countries whose latest report is older drop out. Ties on
// equal value keep the input row order.
func LatestYearTopN(tbl dataset.ObservationTable, n int) []RankedCountry {
	rows := transform.SexOnly(dataset.SexTotal).Apply(tbl.Rows)
	if len(rows) == 0 || n <= 0 {
		return nil
	}

	latest := rows[0].Year
	for _, o := range rows {
		if o.Year > latest {
			latest = o.Year
		}
	}

	var ranked []RankedCountry
	for _, o := range rows {
		if o.Year == latest {
			ranked = append(ranked, RankedCountry{Country: o.Country, Year: o.Year, Percent: o.Value * 100})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Percent > ranked[j].Percent
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// PerCountryLatest takes each country's own most recent observation
// (independently of the other countries) and joins it with GDP per capita
// on (country, year). Exact string match on country name: a spelling
// difference between the two sources silently drops the row. Rows without
// a GDP value for that year are dropped too.
func PerCountryLatest(tbl dataset.ObservationTable, meta dataset.MetadataTable) []CountryLatest {
	latestYear := make(map[string]int)
	for _, o := range tbl.Rows {
		if y, ok := latestYear[o.Country]; !ok || o.Year > y {
			latestYear[o.Country] = o.Year
		}
	}

	gdp := make(map[string]map[int]float64)
	for _, m := range meta.Rows {
		if m.GDPPerCapita == nil {
			continue
		}
		if gdp[m.Country] == nil {
			gdp[m.Country] = make(map[int]float64)
		}
		gdp[m.Country][m.Year] = *m.GDPPerCapita
	}

	var out []CountryLatest
	for _, o := range tbl.Rows {
		if o.Year != latestYear[o.Country] {
			continue
		}
		years, ok := gdp[o.Country]
		if !ok {
			continue
		}
		g, ok := years[o.Year]
		if !ok {
			continue
		}
		out = append(out, CountryLatest{
			Country:      o.Country,
			Year:         o.Year,
			Sex:          o.Sex,
			Percent:      o.Value * 100,
			GDPPerCapita: g,
		})
	}
	return out
}
