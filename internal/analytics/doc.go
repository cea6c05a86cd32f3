// Package analytics contains the six aggregate reducers that feed the
// report charts.
//
// Every reducer is pure: it takes normalized tables, shares no state with
// the other reducers, computes its own year slices, and never mutates its
// input. Outputs are flat row slices carrying percent-scaled values,
// ready for rendering. A reducer returning zero rows is a valid outcome;
// the orchestration layer decides whether that degrades a chart to a
// placeholder.
package analytics
