package report

import (
	"cdpulse/internal/analytics"
	"cdpulse/pkg/contracts/domain"
)

// Column names shared by the render tables, the CSV exports, and the
// workbook sheets.
const (
	colCountry    = "country"
	colYear       = "year"
	colSex        = "sex"
	colPercent    = "percent"
	colGDP        = "gdp_per_capita"
	colRegion     = "region"
	colCountries  = "countries"
	colPopulation = "population"
	colTwoPlusPct = "two_plus_percent"
	colFourPct    = "four_percent"
)

func rankedTable(rows []analytics.RankedCountry) domain.Table {
	t := domain.Table{Columns: []string{colCountry, colYear, colPercent}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.Country, r.Year, r.Percent})
	}
	return t
}

func latestTable(rows []analytics.CountryLatest) domain.Table {
	t := domain.Table{Columns: []string{colCountry, colYear, colSex, colPercent, colGDP}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.Country, r.Year, string(r.Sex), r.Percent, r.GDPPerCapita})
	}
	return t
}

func yearMeanTable(rows []analytics.YearMean) domain.Table {
	t := domain.Table{Columns: []string{colYear, colPercent}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.Year, r.Percent})
	}
	return t
}

func seriesTable(series []analytics.CountrySeries) domain.Table {
	t := domain.Table{Columns: []string{colCountry, colPopulation, colYear, colPercent}}
	for _, s := range series {
		for _, p := range s.Points {
			t.Rows = append(t.Rows, []any{s.Country, s.Population, p.Year, p.Percent})
		}
	}
	return t
}

func comparisonTable(cmp analytics.ComparisonTable) domain.Table {
	t := domain.Table{Columns: []string{colCountry, colYear, colTwoPlusPct, colFourPct}}
	for _, r := range cmp.Rows {
		t.Rows = append(t.Rows, []any{r.Country, cmp.Year, r.APercent, r.BPercent})
	}
	return t
}

func regionTable(rows []analytics.RegionMean) domain.Table {
	t := domain.Table{Columns: []string{colRegion, colPercent, colCountries}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.Region, r.Percent, r.Countries})
	}
	return t
}
