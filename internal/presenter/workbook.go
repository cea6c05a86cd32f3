package presenter

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"cdpulse/pkg/contracts/domain"
)

// WorkbookWriter collects every aggregate table into one Excel workbook,
// one sheet per table, with a native Excel chart next to the data where
// the chart kind has an Excel counterpart.
type WorkbookWriter struct {
	file   *excelize.File
	path   string
	logger *slog.Logger
	sheets int
}

// NewWorkbookWriter creates a workbook that will be saved at path.
func NewWorkbookWriter(path string, logger *slog.Logger) *WorkbookWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookWriter{file: excelize.NewFile(), path: path, logger: logger}
}

// Add writes one table to its own sheet and attaches a chart. Empty
// tables get a sheet with headers only and no chart.
func (w *WorkbookWriter) Add(spec domain.ChartSpec, table domain.Table) error {
	sheet := sheetName(spec.Name)
	if w.sheets == 0 {
		// Reuse the default sheet created by excelize.
		if err := w.file.SetSheetName("Sheet1", sheet); err != nil {
			return fmt.Errorf("failed to rename sheet: %w", err)
		}
	} else {
		if _, err := w.file.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
		}
	}
	w.sheets++

	for col, name := range table.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := w.file.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}
	for row, cells := range table.Rows {
		for col, v := range cells {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := w.file.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if table.Empty() {
		w.logger.Warn("workbook sheet has no data rows", slog.String("sheet", sheet))
		return nil
	}

	return w.addChart(sheet, spec, table)
}

// addChart attaches a native Excel chart bound to the spec's axis columns.
func (w *WorkbookWriter) addChart(sheet string, spec domain.ChartSpec, table domain.Table) error {
	chartType, ok := excelChartType(spec.Kind)
	if !ok {
		return nil
	}

	xi := table.ColumnIndex(spec.X)
	yi := table.ColumnIndex(spec.Y)
	if xi < 0 || yi < 0 {
		return fmt.Errorf("axis column %q or %q not in sheet %s", spec.X, spec.Y, sheet)
	}

	catCol, err := excelize.ColumnNumberToName(xi + 1)
	if err != nil {
		return err
	}
	valCol, err := excelize.ColumnNumberToName(yi + 1)
	if err != nil {
		return err
	}
	last := len(table.Rows) + 1

	anchor, err := excelize.CoordinatesToCellName(len(table.Columns)+2, 2)
	if err != nil {
		return err
	}

	err = w.file.AddChart(sheet, anchor, &excelize.Chart{
		Type: chartType,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("%s!$%s$1", sheet, valCol),
			Categories: fmt.Sprintf("%s!$%s$2:$%s$%d", sheet, catCol, catCol, last),
			Values:     fmt.Sprintf("%s!$%s$2:$%s$%d", sheet, valCol, valCol, last),
		}},
		Title: []excelize.RichTextRun{{Text: spec.Title}},
	})
	if err != nil {
		return fmt.Errorf("failed to add chart to sheet %s: %w", sheet, err)
	}
	return nil
}

// Save writes the workbook to disk.
func (w *WorkbookWriter) Save() error {
	if err := w.file.SaveAs(w.path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	w.logger.Info("saved workbook",
		slog.String("path", w.path),
		slog.Int("sheets", w.sheets))
	return w.file.Close()
}

// excelChartType maps a chart kind onto its Excel counterpart. The
// choropleth kind degrades to a bar chart, matching the PNG backend.
func excelChartType(kind domain.ChartKind) (excelize.ChartType, bool) {
	switch kind {
	case domain.ChartBar:
		return excelize.Col, true
	case domain.ChartHBar, domain.ChartChoropleth:
		return excelize.Bar, true
	case domain.ChartLine:
		return excelize.Line, true
	case domain.ChartMultiLine:
		// Series rows interleave in one value column; no contiguous range
		// per series exists, so only the data sheet is written.
		return 0, false
	case domain.ChartScatter:
		return excelize.Scatter, true
	default:
		return 0, false
	}
}

// sheetName derives a legal Excel sheet name from a chart name. Excel
// caps sheet names at 31 characters.
func sheetName(name string) string {
	s := strings.NewReplacer("/", "_", "\\", "_", "?", "_", "*", "_", "[", "_", "]", "_", ":", "_").Replace(name)
	if len(s) > 31 {
		s = s[:31]
	}
	return s
}
