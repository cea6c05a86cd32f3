package exporter

import (
	"fmt"

	"cdpulse/pkg/contracts/domain"
)

// formatFloat formats a float64 value for CSV output with exactly 2 decimal places
func formatFloat(f float64) string {
	// Always format with exactly 2 decimal places for consistency
	// This ensures values like 13.4 appear as 13.40 in CSV
	return fmt.Sprintf("%.2f", f)
}

// formatCell converts one table cell to its CSV representation.
func formatCell(v any) string {
	switch c := v.(type) {
	case string:
		return c
	case float64:
		return formatFloat(c)
	case int:
		return fmt.Sprintf("%d", c)
	case int64:
		return fmt.Sprintf("%d", c)
	default:
		return fmt.Sprintf("%v", c)
	}
}

// TableRecords flattens a render table into CSV records.
func TableRecords(tbl domain.Table) [][]string {
	records := make([][]string, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		rec := make([]string, len(row))
		for i, cell := range row {
			rec[i] = formatCell(cell)
		}
		records = append(records, rec)
	}
	return records
}

// WriteTable writes one aggregate table as <name>.csv with a BOM so the
// file opens cleanly in Excel.
func (w *CSVWriter) WriteTable(name string, tbl domain.Table) error {
	return w.WriteCSV(name+".csv", WriteOptions{
		Headers:   tbl.Columns,
		Records:   TableRecords(tbl),
		BOMPrefix: true,
	})
}
