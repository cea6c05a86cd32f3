package report

import "cdpulse/pkg/contracts/domain"

// Chart artifact names, fixed so downstream documents can reference them.
const (
	ChartTopDeprived    = "top_deprived_bar"
	ChartGDPScatter     = "gdp_scatter"
	ChartGlobalTrend    = "global_trend_line"
	ChartPopulousSeries = "populous_series"
	ChartSeverity       = "severity_scatter"
	ChartRegionAvg      = "region_avg_bar"
	ChartTopSevere      = "top_severe_bar"
	ChartRegionMap      = "region_map"
)

func topDeprivedSpec() domain.ChartSpec {
	return domain.ChartSpec{
		Name:   ChartTopDeprived,
		Kind:   domain.ChartBar,
		Title:  "Children facing two or more deprivations, latest year",
		X:      colCountry,
		Y:      colPercent,
		YLabel: "% of children",
	}
}

func gdpScatterSpec() domain.ChartSpec {
	return domain.ChartSpec{
		Name:      ChartGDPScatter,
		Kind:      domain.ChartScatter,
		Title:     "Deprivation vs GDP per capita",
		X:         colGDP,
		Y:         colPercent,
		XLabel:    "GDP per capita (constant 2015 US$)",
		YLabel:    "% of children deprived",
		SeriesBy:  colSex,
		TrendLine: true,
		LogX:      true,
	}
}

func globalTrendSpec() domain.ChartSpec {
	return domain.ChartSpec{
		Name:   ChartGlobalTrend,
		Kind:   domain.ChartLine,
		Title:  "Global mean deprivation by year",
		X:      colYear,
		Y:      colPercent,
		XLabel: "year",
		YLabel: "% of children (mean across countries)",
	}
}

func populousSeriesSpec() domain.ChartSpec {
	return domain.ChartSpec{
		Name:     ChartPopulousSeries,
		Kind:     domain.ChartMultiLine,
		Title:    "Deprivation over time, most populous countries",
		X:        colYear,
		Y:        colPercent,
		XLabel:   "year",
		YLabel:   "% of children",
		SeriesBy: colCountry,
	}
}

func severitySpec() domain.ChartSpec {
	return domain.ChartSpec{
		Name:   ChartSeverity,
		Kind:   domain.ChartScatter,
		Title:  "Two or more deprivations vs exactly four",
		X:      colTwoPlusPct,
		Y:      colFourPct,
		XLabel: "% with 2+ deprivations",
		YLabel: "% with 4 deprivations",
	}
}

func regionAvgSpec() domain.ChartSpec {
	return domain.ChartSpec{
		Name:   ChartRegionAvg,
		Kind:   domain.ChartBar,
		Title:  "Average deprivation by region, latest year",
		X:      colRegion,
		Y:      colPercent,
		YLabel: "% of children (regional mean)",
	}
}

func topSevereSpec() domain.ChartSpec {
	return domain.ChartSpec{
		Name:   ChartTopSevere,
		Kind:   domain.ChartBar,
		Title:  "Children facing exactly four deprivations, latest year",
		X:      colCountry,
		Y:      colPercent,
		YLabel: "% of children",
	}
}

func regionMapSpec() domain.ChartSpec {
	return domain.ChartSpec{
		Name:  ChartRegionMap,
		Kind:  domain.ChartChoropleth,
		Title: "Regional deprivation map",
		X:     colRegion,
		Y:     colPercent,
	}
}
