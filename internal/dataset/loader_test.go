package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "cdpulse/internal/errors"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const obsFixture = `country,time_period,sex,current_age,obs_value
Chad,2019,Total,Total,0.38
Chad,2019,Female,Total,0.39
Kenya,2020,Total,Total,0.21
Kenya,2020,Total,Under 5,0.25
`

func TestLoadObservations(t *testing.T) {
	path := writeFixture(t, "obs.csv", obsFixture)

	table, err := LoadObservations(path, "deprived_2plus")
	require.NoError(t, err)

	assert.Equal(t, "deprived_2plus", table.Indicator)
	require.Len(t, table.Rows, 4)
	assert.Equal(t, Observation{Country: "Chad", Year: 2019, Sex: SexTotal, AgeGroup: "Total", Value: 0.38}, table.Rows[0])
	assert.Equal(t, SexFemale, table.Rows[1].Sex)
	assert.Equal(t, "Under 5", table.Rows[3].AgeGroup)
}

func TestLoadObservationsBOM(t *testing.T) {
	path := writeFixture(t, "obs.csv", "\xEF\xBB\xBF"+obsFixture)

	table, err := LoadObservations(path, "deprived_2plus")
	require.NoError(t, err)
	assert.Equal(t, "Chad", table.Rows[0].Country, "BOM must not corrupt the first header cell")
}

func TestLoadObservationsMissingFile(t *testing.T) {
	_, err := LoadObservations(filepath.Join(t.TempDir(), "absent.csv"), "x")
	assert.True(t, errors.Is(err, apperrors.ErrSourceUnavailable))
}

func TestLoadObservationsMissingColumn(t *testing.T) {
	// obs_value renamed: must fail loudly, not yield empty results later.
	path := writeFixture(t, "obs.csv", "country,time_period,sex,current_age,value\nChad,2019,Total,Total,0.38\n")

	_, err := LoadObservations(path, "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrSchemaMismatch))
	assert.Contains(t, err.Error(), "obs_value")
}

func TestLoadObservationsBadNumeric(t *testing.T) {
	path := writeFixture(t, "obs.csv", "country,time_period,sex,current_age,obs_value\nChad,201x,Total,Total,0.38\n")

	_, err := LoadObservations(path, "x")
	assert.Error(t, err)
}

const metaFixture = `country,year,"GDP per capita (constant 2015 US$)","Population, total"
Chad,2021,640.5,17179740
Chad,2022,,17723315
Norway,2022,78128.6,
`

func TestLoadMetadata(t *testing.T) {
	path := writeFixture(t, "meta.csv", metaFixture)

	table, err := LoadMetadata(path)
	require.NoError(t, err)
	require.Len(t, table.Rows, 3)

	chad := table.Rows[0]
	require.NotNil(t, chad.GDPPerCapita)
	assert.InDelta(t, 640.5, *chad.GDPPerCapita, 1e-9)
	require.NotNil(t, chad.Population)
	assert.Equal(t, int64(17179740), *chad.Population)

	assert.Nil(t, table.Rows[1].GDPPerCapita, "blank GDP cell becomes nil")
	assert.Nil(t, table.Rows[2].Population, "blank population cell becomes nil")
}

func TestLoadMetadataMissingColumn(t *testing.T) {
	path := writeFixture(t, "meta.csv", "country,year,gdp\nChad,2021,640.5\n")

	_, err := LoadMetadata(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrSchemaMismatch))
	assert.Contains(t, err.Error(), "GDP per capita (constant 2015 US$)")
}

func TestLoadMetadataPopulationFloatLiteral(t *testing.T) {
	path := writeFixture(t, "meta.csv", "country,year,\"GDP per capita (constant 2015 US$)\",\"Population, total\"\nChad,2021,640.5,1.717974e7\n")

	table, err := LoadMetadata(path)
	require.NoError(t, err)
	require.NotNil(t, table.Rows[0].Population)
	assert.Equal(t, int64(17179740), *table.Rows[0].Population)
}
