// Package transform implements the filter/normalize stage between loading
// and aggregation. Filters never error: an empty result is an empty slice,
// and callers are expected to handle it.
package transform

import "cdpulse/internal/dataset"

// Transformer filters or reshapes a slice of observations. Implementations
// must not mutate the input rows.
type Transformer interface {
	Apply([]dataset.Observation) []dataset.Observation
}

// Chain is an ordered list of transformers.
type Chain []Transformer

func (c Chain) Apply(in []dataset.Observation) []dataset.Observation {
	if len(c) == 0 {
		return in
	}

	out := in
	for _, t := range c {
		if t == nil {
			continue
		}
		out = t.Apply(out)
	}
	return out
}

type filterFunc func(dataset.Observation) bool

func (f filterFunc) Apply(in []dataset.Observation) []dataset.Observation {
	out := make([]dataset.Observation, 0, len(in))
	for _, obs := range in {
		if f(obs) {
			out = append(out, obs)
		}
	}
	return out
}

// AgeTotal keeps only the "Total" age group. This slice is applied once,
// globally, to every observation table before any aggregation.
func AgeTotal() Transformer {
	return filterFunc(func(o dataset.Observation) bool {
		return o.AgeGroup == dataset.AgeGroupTotal
	})
}

// SexOnly keeps rows for one sex category. Aggregates that operate on the
// combined population apply SexOnly(dataset.SexTotal) themselves.
func SexOnly(sex dataset.Sex) Transformer {
	return filterFunc(func(o dataset.Observation) bool {
		return o.Sex == sex
	})
}

// YearFrom keeps rows with Year >= min.
func YearFrom(min int) Transformer {
	return filterFunc(func(o dataset.Observation) bool {
		return o.Year >= min
	})
}

// Normalize returns a copy of the table restricted to the "Total" age
// group. The input table is left untouched.
func Normalize(tbl dataset.ObservationTable) dataset.ObservationTable {
	return dataset.ObservationTable{
		Indicator: tbl.Indicator,
		Rows:      AgeTotal().Apply(tbl.Rows),
	}
}
