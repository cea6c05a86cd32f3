package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"cdpulse/internal/analytics"
	"cdpulse/internal/dataset"
)

// narrativeData carries everything the prose sections interpolate.
type narrativeData struct {
	TwoPlusRows int
	FourRows    int
	MetaRows    int
	TopDeprived []analytics.RankedCountry
	PerCountry  []analytics.CountryLatest
	YearlyMean  []analytics.YearMean
	Populous    []analytics.CountrySeries
	Severity    analytics.ComparisonTable
	Regions     []analytics.RegionMean
	MinYear     int
}

// buildNarrative assembles the markdown commentary that accompanies the
// charts. Every number is computed from the same aggregate tables the
// charts render, so prose and charts cannot drift apart.
func buildNarrative(d narrativeData) string {
	pr := message.NewPrinter(language.English)
	var b strings.Builder

	b.WriteString("# Child Deprivation Report\n\n")
	pr.Fprintf(&b, "Based on %d deprivation observations (2+ threshold), %d observations (4 threshold) and %d country-year metadata rows.\n\n",
		d.TwoPlusRows, d.FourRows, d.MetaRows)

	b.WriteString("## Where deprivation is highest\n\n")
	if len(d.TopDeprived) > 0 {
		worst := d.TopDeprived[0]
		fmt.Fprintf(&b, "In %d, **%s** had the highest share of children facing two or more deprivations at %.1f%%.\n",
			worst.Year, worst.Country, worst.Percent)
		fmt.Fprintf(&b, "\n![Top countries](%s.png)\n\n", ChartTopDeprived)
	} else {
		b.WriteString("No ranking could be computed from the available data.\n\n")
	}

	b.WriteString("## Deprivation and national income\n\n")
	if xs, ys := gdpPairs(d.PerCountry); len(xs) >= 2 {
		r := analytics.Correlation(xs, ys)
		direction := "no clear"
		switch {
		case r < -0.3:
			direction = "a negative"
		case r > 0.3:
			direction = "a positive"
		}
		pr.Fprintf(&b, "Across %d countries at their own most recent survey year, deprivation shows %s relationship with GDP per capita (Pearson r = %.2f).\n",
			len(xs), direction, r)
		fmt.Fprintf(&b, "\n![Deprivation vs GDP](%s.png)\n\n", ChartGDPScatter)
	} else {
		b.WriteString("Too few country-GDP pairs matched to assess the relationship.\n\n")
	}

	fmt.Fprintf(&b, "## The global trend since %d\n\n", d.MinYear)
	if len(d.YearlyMean) >= 2 {
		first := d.YearlyMean[0]
		last := d.YearlyMean[len(d.YearlyMean)-1]
		fmt.Fprintf(&b, "The cross-country mean moved from %.1f%% in %d to %.1f%% in %d.\n",
			first.Percent, first.Year, last.Percent, last.Year)
		fmt.Fprintf(&b, "\n![Global trend](%s.png)\n\n", ChartGlobalTrend)
	} else {
		b.WriteString("Not enough yearly data to describe a trend.\n\n")
	}

	b.WriteString("## The most populous countries\n\n")
	if len(d.Populous) > 0 {
		names := make([]string, 0, len(d.Populous))
		for _, s := range d.Populous {
			names = append(names, pr.Sprintf("%s (pop. %d)", s.Country, s.Population))
		}
		fmt.Fprintf(&b, "Time series are shown for %s.\n", strings.Join(names, ", "))
		fmt.Fprintf(&b, "\n![Populous countries](%s.png)\n\n", ChartPopulousSeries)
	} else {
		b.WriteString("No population data was available to select countries.\n\n")
	}

	b.WriteString("## Moderate vs severe deprivation\n\n")
	if len(d.Severity.Rows) > 0 {
		fmt.Fprintf(&b, "For %d, %d countries report both indicators.\n", d.Severity.Year, len(d.Severity.Rows))
		fmt.Fprintf(&b, "\n![Severity comparison](%s.png)\n\n", ChartSeverity)
	} else {
		b.WriteString("The two indicator tables share no usable year; the comparison chart is a placeholder.\n\n")
	}

	b.WriteString("## Regional picture\n\n")
	if len(d.Regions) > 0 {
		highest := d.Regions[0]
		lowest := d.Regions[len(d.Regions)-1]
		pr.Fprintf(&b, "**%s** averages %.1f%%, against %.1f%% in %s, a gap of %.1f percentage points.\n",
			highest.Region, highest.Percent, lowest.Percent, lowest.Region, highest.Percent-lowest.Percent)
		fmt.Fprintf(&b, "\n![Regional averages](%s.png)\n\n![Regional map](%s.png)\n\n", ChartRegionAvg, ChartRegionMap)
	} else {
		b.WriteString("No mapped countries were present in the latest year.\n\n")
	}

	fmt.Fprintf(&b, "## Severe deprivation ranking\n\n![Top severe](%s.png)\n", ChartTopSevere)

	return b.String()
}

// gdpPairs extracts the combined-sex (GDP, deprivation) pairs used for
// the correlation headline.
func gdpPairs(rows []analytics.CountryLatest) (xs, ys []float64) {
	for _, r := range rows {
		if r.Sex != dataset.SexTotal {
			continue
		}
		xs = append(xs, r.GDPPerCapita)
		ys = append(ys, r.Percent)
	}
	return xs, ys
}
