package config

// RegionMap maps a country name to its region label. Lookup is exact
// string match; countries absent from the map are excluded from region
// aggregates.
type RegionMap map[string]string

// Region labels used by the default map.
const (
	RegionSubSaharanAfrica  = "Sub-Saharan Africa"
	RegionMiddleEastNAfrica = "Middle East & North Africa"
	RegionSouthAsia         = "South Asia"
	RegionEastAsiaPacific   = "East Asia & Pacific"
	RegionLatinAmerica      = "Latin America & Caribbean"
	RegionEuropeCentralAsia = "Europe & Central Asia"
)

// DefaultRegionMap returns the built-in country-to-region mapping. It covers
// the countries present in the bundled deprivation datasets; a yaml
// `regions:` section replaces it wholesale.
func DefaultRegionMap() RegionMap {
	return RegionMap{
		"Afghanistan":                      RegionSouthAsia,
		"Algeria":                          RegionMiddleEastNAfrica,
		"Angola":                           RegionSubSaharanAfrica,
		"Argentina":                        RegionLatinAmerica,
		"Bangladesh":                       RegionSouthAsia,
		"Belize":                           RegionLatinAmerica,
		"Benin":                            RegionSubSaharanAfrica,
		"Bolivia":                          RegionLatinAmerica,
		"Burkina Faso":                     RegionSubSaharanAfrica,
		"Burundi":                          RegionSubSaharanAfrica,
		"Cambodia":                         RegionEastAsiaPacific,
		"Cameroon":                         RegionSubSaharanAfrica,
		"Central African Republic":         RegionSubSaharanAfrica,
		"Chad":                             RegionSubSaharanAfrica,
		"Colombia":                         RegionLatinAmerica,
		"Congo":                            RegionSubSaharanAfrica,
		"Costa Rica":                       RegionLatinAmerica,
		"Cuba":                             RegionLatinAmerica,
		"Democratic Republic of the Congo": RegionSubSaharanAfrica,
		"Dominican Republic":               RegionLatinAmerica,
		"Ecuador":                          RegionLatinAmerica,
		"Egypt":                            RegionMiddleEastNAfrica,
		"El Salvador":                      RegionLatinAmerica,
		"Eswatini":                         RegionSubSaharanAfrica,
		"Ethiopia":                         RegionSubSaharanAfrica,
		"Gambia":                           RegionSubSaharanAfrica,
		"Ghana":                            RegionSubSaharanAfrica,
		"Guatemala":                        RegionLatinAmerica,
		"Guinea":                           RegionSubSaharanAfrica,
		"Guinea-Bissau":                    RegionSubSaharanAfrica,
		"Guyana":                           RegionLatinAmerica,
		"Haiti":                            RegionLatinAmerica,
		"Honduras":                         RegionLatinAmerica,
		"India":                            RegionSouthAsia,
		"Indonesia":                        RegionEastAsiaPacific,
		"Iraq":                             RegionMiddleEastNAfrica,
		"Jordan":                           RegionMiddleEastNAfrica,
		"Kazakhstan":                       RegionEuropeCentralAsia,
		"Kenya":                            RegionSubSaharanAfrica,
		"Kyrgyzstan":                       RegionEuropeCentralAsia,
		"Lao People's Democratic Republic": RegionEastAsiaPacific,
		"Lesotho":                          RegionSubSaharanAfrica,
		"Liberia":                          RegionSubSaharanAfrica,
		"Madagascar":                       RegionSubSaharanAfrica,
		"Malawi":                           RegionSubSaharanAfrica,
		"Maldives":                         RegionSouthAsia,
		"Mali":                             RegionSubSaharanAfrica,
		"Mauritania":                       RegionSubSaharanAfrica,
		"Mexico":                           RegionLatinAmerica,
		"Mongolia":                         RegionEastAsiaPacific,
		"Morocco":                          RegionMiddleEastNAfrica,
		"Mozambique":                       RegionSubSaharanAfrica,
		"Myanmar":                          RegionEastAsiaPacific,
		"Namibia":                          RegionSubSaharanAfrica,
		"Nepal":                            RegionSouthAsia,
		"Nicaragua":                        RegionLatinAmerica,
		"Niger":                            RegionSubSaharanAfrica,
		"Nigeria":                          RegionSubSaharanAfrica,
		"Pakistan":                         RegionSouthAsia,
		"Panama":                           RegionLatinAmerica,
		"Paraguay":                         RegionLatinAmerica,
		"Peru":                             RegionLatinAmerica,
		"Philippines":                      RegionEastAsiaPacific,
		"Rwanda":                           RegionSubSaharanAfrica,
		"Sao Tome and Principe":            RegionSubSaharanAfrica,
		"Senegal":                          RegionSubSaharanAfrica,
		"Sierra Leone":                     RegionSubSaharanAfrica,
		"Somalia":                          RegionSubSaharanAfrica,
		"South Africa":                     RegionSubSaharanAfrica,
		"South Sudan":                      RegionSubSaharanAfrica,
		"Sri Lanka":                        RegionSouthAsia,
		"State of Palestine":               RegionMiddleEastNAfrica,
		"Sudan":                            RegionMiddleEastNAfrica,
		"Suriname":                         RegionLatinAmerica,
		"Tajikistan":                       RegionEuropeCentralAsia,
		"Thailand":                         RegionEastAsiaPacific,
		"Togo":                             RegionSubSaharanAfrica,
		"Tunisia":                          RegionMiddleEastNAfrica,
		"Turkmenistan":                     RegionEuropeCentralAsia,
		"Uganda":                           RegionSubSaharanAfrica,
		"United Republic of Tanzania":      RegionSubSaharanAfrica,
		"Uzbekistan":                       RegionEuropeCentralAsia,
		"Viet Nam":                         RegionEastAsiaPacific,
		"Yemen":                            RegionMiddleEastNAfrica,
		"Zambia":                           RegionSubSaharanAfrica,
		"Zimbabwe":                         RegionSubSaharanAfrica,
	}
}
