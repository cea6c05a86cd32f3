package dataset

// Sex is the sex disaggregation category of an observation.
type Sex string

const (
	SexMale   Sex = "Male"
	SexFemale Sex = "Female"
	SexTotal  Sex = "Total"
)

// AgeGroupTotal is the demographic slice the report is restricted to.
const AgeGroupTotal = "Total"

// Observation is one deprivation measurement: the share of children in a
// country and year that fall under the indicator's deprivation threshold.
// Value is a fraction in [0,1]; rescaling to percent happens only in
// aggregate outputs.
type Observation struct {
	Country  string
	Year     int
	Sex      Sex
	AgeGroup string
	Value    float64
}

// ObservationTable is an immutable snapshot of one indicator's
// observations. At most one row exists per (country, year, sex, age group).
type ObservationTable struct {
	Indicator string
	Rows      []Observation
}

// CountryYear is one row of socio-economic metadata. GDPPerCapita and
// Population are nil when the source has no value for that country-year.
type CountryYear struct {
	Country      string
	Year         int
	GDPPerCapita *float64
	Population   *int64
}

// MetadataTable is an immutable snapshot of socio-economic metadata,
// one row per (country, year).
type MetadataTable struct {
	Rows []CountryYear
}
