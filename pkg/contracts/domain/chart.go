package domain

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ChartKind selects the visual form of a chart.
type ChartKind string

const (
	ChartBar        ChartKind = "bar"
	ChartHBar       ChartKind = "hbar"
	ChartLine       ChartKind = "line"
	ChartMultiLine  ChartKind = "multiline"
	ChartScatter    ChartKind = "scatter"
	ChartChoropleth ChartKind = "choropleth"
)

// ChartSpec is a declarative description of one chart: what to draw and
// how to bind table columns to visual channels. Renderers decide how to
// realize it; a backend without a faithful realization of Kind is free to
// degrade (documented per renderer).
type ChartSpec struct {
	// Name is the artifact base name, e.g. "top_deprived_bar".
	Name string `json:"name" validate:"required"`
	// Kind selects the visual form.
	Kind  ChartKind `json:"kind" validate:"required,oneof=bar hbar line multiline scatter choropleth"`
	Title string    `json:"title" validate:"required"`
	// X and Y name the table columns bound to the axes.
	X      string `json:"x" validate:"required"`
	Y      string `json:"y" validate:"required"`
	XLabel string `json:"x_label,omitempty"`
	YLabel string `json:"y_label,omitempty"`
	// SeriesBy names the column whose values split the rows into
	// colored series. Empty means a single series.
	SeriesBy string `json:"series_by,omitempty"`
	// TrendLine asks for a least-squares fit overlay (scatter only).
	TrendLine bool `json:"trend_line,omitempty"`
	// LogX plots the X axis on a log scale (scatter against GDP).
	LogX bool `json:"log_x,omitempty"`
}

// Validate checks the spec's structural invariants. Renderers may assume
// a validated spec has a name, a known kind and both axis bindings.
func (s ChartSpec) Validate() error {
	return validate.Struct(s)
}

// Table is the flat render input: ordered columns and row-major cells.
// Cells are strings or float64; renderers convert as the bound channel
// requires.
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// Empty reports whether the table has no data rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// ColumnIndex returns the position of a named column, or -1.
func (t Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Float reads a numeric cell, converting from the handful of cell types a
// reducer output can carry.
func (t Table) Float(row, col int) (float64, bool) {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return 0, false
	}
	switch v := t.Rows[row][col].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// String reads a cell as its display string.
func (t Table) String(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	switch v := t.Rows[row][col].(type) {
	case string:
		return v
	default:
		return ""
	}
}
