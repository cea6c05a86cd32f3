package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceUnavailable(t *testing.T) {
	cause := fs.ErrNotExist
	err := SourceUnavailable("data/obs.csv", cause)

	assert.Equal(t, CodeSourceUnavailable, err.Code)
	assert.Contains(t, err.Error(), "data/obs.csv")
	assert.True(t, errors.Is(err, ErrSourceUnavailable))
	assert.True(t, errors.Is(err, fs.ErrNotExist), "cause must stay visible through Unwrap")
	assert.False(t, errors.Is(err, ErrSchemaMismatch))
}

func TestSchemaMismatch(t *testing.T) {
	err := SchemaMismatch("meta.csv", "Population, total")

	assert.True(t, errors.Is(err, ErrSchemaMismatch))
	assert.Contains(t, err.Error(), `"Population, total"`)
	assert.Contains(t, err.Error(), "meta.csv")
}

func TestIsThroughWrapping(t *testing.T) {
	// Classification must survive fmt.Errorf %w wrapping.
	err := fmt.Errorf("load metadata: %w", SchemaMismatch("meta.csv", "year"))
	assert.True(t, errors.Is(err, ErrSchemaMismatch))
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		fatal bool
	}{
		{"nil", nil, false},
		{"source unavailable", SourceUnavailable("x.csv", nil), true},
		{"schema mismatch", SchemaMismatch("x.csv", "sex"), true},
		{"empty result", EmptyResult("region_average"), false},
		{"wrapped fatal", fmt.Errorf("load: %w", SourceUnavailable("x.csv", nil)), true},
		{"unclassified", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fatal, IsFatal(tt.err))
		})
	}
}

func TestEmptyResultNotFatal(t *testing.T) {
	err := EmptyResult("cross_indicator")
	require.True(t, errors.Is(err, ErrEmptyResult))
	assert.False(t, IsFatal(err))
}
