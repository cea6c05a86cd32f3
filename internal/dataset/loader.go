package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	apperrors "cdpulse/internal/errors"
)

// Source column names, fixed by the upstream datasets. Matching is exact:
// a renamed column is a schema mismatch, not a silent empty result.
const (
	colCountry    = "country"
	colTimePeriod = "time_period"
	colSex        = "sex"
	colCurrentAge = "current_age"
	colObsValue   = "obs_value"

	colMetaYear       = "year"
	colMetaGDP        = "GDP per capita (constant 2015 US$)"
	colMetaPopulation = "Population, total"
)

// LoadObservations reads one deprivation indicator CSV into a typed table.
// The file must carry the country, time_period, sex, current_age and
// obs_value columns. Returns SourceUnavailable when the file cannot be
// read and SchemaMismatch when a column is missing.
func LoadObservations(path, indicator string) (ObservationTable, error) {
	header, rows, err := readCSV(path)
	if err != nil {
		return ObservationTable{}, err
	}

	idx, err := headerIndex(path, header, []string{colCountry, colTimePeriod, colSex, colCurrentAge, colObsValue})
	if err != nil {
		return ObservationTable{}, err
	}

	table := ObservationTable{Indicator: indicator, Rows: make([]Observation, 0, len(rows))}
	for i, row := range rows {
		year, err := strconv.Atoi(strings.TrimSpace(row[idx[colTimePeriod]]))
		if err != nil {
			return ObservationTable{}, fmt.Errorf("%s: row %d: bad %s value %q: %w", path, i+2, colTimePeriod, row[idx[colTimePeriod]], err)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(row[idx[colObsValue]]), 64)
		if err != nil {
			return ObservationTable{}, fmt.Errorf("%s: row %d: bad %s value %q: %w", path, i+2, colObsValue, row[idx[colObsValue]], err)
		}

		table.Rows = append(table.Rows, Observation{
			Country:  row[idx[colCountry]],
			Year:     year,
			Sex:      Sex(row[idx[colSex]]),
			AgeGroup: row[idx[colCurrentAge]],
			Value:    value,
		})
	}

	return table, nil
}

// LoadMetadata reads the socio-economic metadata CSV. Blank GDP or
// population cells become nil, not zero.
func LoadMetadata(path string) (MetadataTable, error) {
	header, rows, err := readCSV(path)
	if err != nil {
		return MetadataTable{}, err
	}

	idx, err := headerIndex(path, header, []string{colCountry, colMetaYear, colMetaGDP, colMetaPopulation})
	if err != nil {
		return MetadataTable{}, err
	}

	table := MetadataTable{Rows: make([]CountryYear, 0, len(rows))}
	for i, row := range rows {
		year, err := strconv.Atoi(strings.TrimSpace(row[idx[colMetaYear]]))
		if err != nil {
			return MetadataTable{}, fmt.Errorf("%s: row %d: bad %s value %q: %w", path, i+2, colMetaYear, row[idx[colMetaYear]], err)
		}

		cy := CountryYear{Country: row[idx[colCountry]], Year: year}

		if cell := strings.TrimSpace(row[idx[colMetaGDP]]); cell != "" {
			gdp, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return MetadataTable{}, fmt.Errorf("%s: row %d: bad GDP value %q: %w", path, i+2, cell, err)
			}
			cy.GDPPerCapita = &gdp
		}
		if cell := strings.TrimSpace(row[idx[colMetaPopulation]]); cell != "" {
			// Some exports carry population as a float literal.
			popFloat, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return MetadataTable{}, fmt.Errorf("%s: row %d: bad population value %q: %w", path, i+2, cell, err)
			}
			pop := int64(popFloat)
			cy.Population = &pop
		}

		table.Rows = append(table.Rows, cy)
	}

	return table, nil
}

// readCSV reads a whole CSV file, tolerating a UTF-8 BOM, and returns the
// header row and data rows.
func readCSV(path string) ([]string, [][]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, apperrors.SourceUnavailable(path, err)
	}

	// Excel exports commonly carry a UTF-8 BOM.
	content = bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF})

	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, apperrors.SourceUnavailable(path, fmt.Errorf("empty file"))
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%s: read header: %w", path, err)
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%s: read row: %w", path, err)
		}
		if len(row) < len(header) {
			return nil, nil, fmt.Errorf("%s: row %d has %d fields, header has %d", path, len(rows)+2, len(row), len(header))
		}
		rows = append(rows, row)
	}

	return header, rows, nil
}

// headerIndex maps each required column name to its position in the
// header. The first missing column aborts with SchemaMismatch.
func headerIndex(path string, header, required []string) (map[string]int, error) {
	idx := make(map[string]int, len(required))
	for i, name := range header {
		idx[name] = i
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, apperrors.SchemaMismatch(path, name)
		}
	}
	return idx, nil
}
