// Package presenter renders aggregate tables into chart artifacts.
//
// Rendering is driven by declarative chart specs (domain.ChartSpec): the
// pipeline binds table columns to axes and series, and the renderer
// decides how to realize the chart. Two backends exist: PlotRenderer
// produces PNG files, WorkbookWriter collects every table and chart into
// one Excel workbook. An empty table never fails a render; it produces a
// visible placeholder so the report stays complete.
package presenter

import (
	"context"

	"cdpulse/pkg/contracts/domain"
)

// Renderer turns one chart spec plus its data table into an artifact on
// disk and returns the artifact path.
type Renderer interface {
	Render(ctx context.Context, spec domain.ChartSpec, table domain.Table) (string, error)
}
