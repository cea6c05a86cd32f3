package presenter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"cdpulse/internal/analytics"
	"cdpulse/pkg/contracts/domain"
)

// PlotRenderer renders chart specs as PNG files under a base directory.
//
// The choropleth kind has no faithful PNG backend here; it degrades to a
// horizontal bar chart over the same table so the regional picture is
// still visible.
type PlotRenderer struct {
	baseDir string
	logger  *slog.Logger
}

// NewPlotRenderer creates a PNG renderer writing into baseDir.
func NewPlotRenderer(baseDir string, logger *slog.Logger) *PlotRenderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlotRenderer{baseDir: baseDir, logger: logger}
}

// Render implements Renderer.
func (r *PlotRenderer) Render(ctx context.Context, spec domain.ChartSpec, table domain.Table) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(r.baseDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create chart directory: %w", err)
	}
	outPath := filepath.Join(r.baseDir, spec.Name+".png")

	p := plot.New()
	p.Title.Text = spec.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel

	if table.Empty() {
		r.logger.Warn("rendering placeholder for empty aggregate",
			slog.String("chart", spec.Name))
		p.Title.Text = spec.Title + " (no data)"
		if err := p.Save(8*vg.Inch, 6*vg.Inch, outPath); err != nil {
			return "", fmt.Errorf("failed to save placeholder %s: %w", spec.Name, err)
		}
		return outPath, nil
	}

	var err error
	switch spec.Kind {
	case domain.ChartBar:
		err = r.addBars(p, spec, table, false)
	case domain.ChartHBar, domain.ChartChoropleth:
		err = r.addBars(p, spec, table, true)
	case domain.ChartLine:
		err = r.addLine(p, spec, table)
	case domain.ChartMultiLine:
		err = r.addMultiLine(p, spec, table)
	case domain.ChartScatter:
		err = r.addScatter(p, spec, table)
	default:
		err = fmt.Errorf("unsupported chart kind %q", spec.Kind)
	}
	if err != nil {
		return "", fmt.Errorf("failed to build chart %s: %w", spec.Name, err)
	}

	p.Add(plotter.NewGrid())
	if err := p.Save(8*vg.Inch, 6*vg.Inch, outPath); err != nil {
		return "", fmt.Errorf("failed to save chart %s: %w", spec.Name, err)
	}

	r.logger.Info("rendered chart",
		slog.String("chart", spec.Name),
		slog.String("path", outPath),
		slog.Int("rows", len(table.Rows)))
	return outPath, nil
}

func (r *PlotRenderer) addBars(p *plot.Plot, spec domain.ChartSpec, table domain.Table, horizontal bool) error {
	xi := table.ColumnIndex(spec.X)
	yi := table.ColumnIndex(spec.Y)
	if xi < 0 || yi < 0 {
		return fmt.Errorf("axis column %q or %q not in table", spec.X, spec.Y)
	}

	values := make(plotter.Values, 0, len(table.Rows))
	labels := make([]string, 0, len(table.Rows))
	for i := range table.Rows {
		v, ok := table.Float(i, yi)
		if !ok {
			return fmt.Errorf("row %d: column %q is not numeric", i, spec.Y)
		}
		values = append(values, v)
		labels = append(labels, table.String(i, xi))
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = plotutil.Color(0)
	bars.Horizontal = horizontal

	p.Add(bars)
	if horizontal {
		p.NominalY(labels...)
	} else {
		p.NominalX(labels...)
		p.X.Tick.Label.Rotation = -0.6
		p.X.Tick.Label.XAlign = -0.8
	}
	return nil
}

func (r *PlotRenderer) addLine(p *plot.Plot, spec domain.ChartSpec, table domain.Table) error {
	pts, err := tableXYs(table, spec.X, spec.Y)
	if err != nil {
		return err
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = plotutil.Color(0)
	line.Width = vg.Points(2)
	p.Add(line)
	return nil
}

func (r *PlotRenderer) addMultiLine(p *plot.Plot, spec domain.ChartSpec, table domain.Table) error {
	if spec.SeriesBy == "" {
		return r.addLine(p, spec, table)
	}
	si := table.ColumnIndex(spec.SeriesBy)
	xi := table.ColumnIndex(spec.X)
	yi := table.ColumnIndex(spec.Y)
	if si < 0 || xi < 0 || yi < 0 {
		return fmt.Errorf("column binding %q/%q/%q not in table", spec.SeriesBy, spec.X, spec.Y)
	}

	series := make(map[string]plotter.XYs)
	var order []string
	for i := range table.Rows {
		name := table.String(i, si)
		x, okX := table.Float(i, xi)
		y, okY := table.Float(i, yi)
		if !okX || !okY {
			return fmt.Errorf("row %d: non-numeric point", i)
		}
		if _, seen := series[name]; !seen {
			order = append(order, name)
		}
		series[name] = append(series[name], plotter.XY{X: x, Y: y})
	}

	for i, name := range order {
		line, err := plotter.NewLine(series[name])
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(name, line)
	}
	p.Legend.Top = true
	return nil
}

func (r *PlotRenderer) addScatter(p *plot.Plot, spec domain.ChartSpec, table domain.Table) error {
	if spec.LogX {
		var dropped int
		table, dropped = dropNonPositiveX(table, spec.X)
		if dropped > 0 {
			r.logger.Warn("dropping rows with non-positive x on log scale",
				slog.String("chart", spec.Name),
				slog.Int("rows", dropped))
		}
	}

	pts, err := tableXYs(table, spec.X, spec.Y)
	if err != nil {
		return err
	}

	if spec.SeriesBy != "" {
		if err := r.addScatterSeries(p, spec, table); err != nil {
			return err
		}
	} else {
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Radius = vg.Points(3)
		scatter.GlyphStyle.Color = plotutil.Color(0)
		p.Add(scatter)
	}

	// With every point filtered out the axis stays linear; LogTicks
	// cannot place a zero or negative value.
	if spec.LogX && len(pts) > 0 {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	if spec.TrendLine {
		xs := make([]float64, len(pts))
		ys := make([]float64, len(pts))
		for i, pt := range pts {
			xs[i] = pt.X
			ys[i] = pt.Y
		}
		alpha, beta, ok := analytics.TrendLine(xs, ys)
		if !ok {
			r.logger.Warn("skipping trend line: degenerate data",
				slog.String("chart", spec.Name))
			return nil
		}
		minX, maxX := xs[0], xs[0]
		for _, x := range xs[1:] {
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
		}
		trend, err := plotter.NewLine(plotter.XYs{
			{X: minX, Y: alpha + beta*minX},
			{X: maxX, Y: alpha + beta*maxX},
		})
		if err != nil {
			return err
		}
		trend.Color = plotutil.Color(1)
		trend.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
		p.Add(trend)
		p.Legend.Add("trend", trend)
	}
	return nil
}

func (r *PlotRenderer) addScatterSeries(p *plot.Plot, spec domain.ChartSpec, table domain.Table) error {
	si := table.ColumnIndex(spec.SeriesBy)
	xi := table.ColumnIndex(spec.X)
	yi := table.ColumnIndex(spec.Y)
	if si < 0 {
		return fmt.Errorf("series column %q not in table", spec.SeriesBy)
	}

	series := make(map[string]plotter.XYs)
	var order []string
	for i := range table.Rows {
		name := table.String(i, si)
		x, okX := table.Float(i, xi)
		y, okY := table.Float(i, yi)
		if !okX || !okY {
			return fmt.Errorf("row %d: non-numeric point", i)
		}
		if _, seen := series[name]; !seen {
			order = append(order, name)
		}
		series[name] = append(series[name], plotter.XY{X: x, Y: y})
	}

	for i, name := range order {
		scatter, err := plotter.NewScatter(series[name])
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Radius = vg.Points(3)
		scatter.GlyphStyle.Color = plotutil.Color(i)
		p.Add(scatter)
		p.Legend.Add(name, scatter)
	}
	p.Legend.Top = true
	return nil
}

// dropNonPositiveX removes rows whose x cell is zero or negative. Rows
// with a non-numeric x cell are kept so the binding error still surfaces.
func dropNonPositiveX(table domain.Table, xCol string) (domain.Table, int) {
	xi := table.ColumnIndex(xCol)
	if xi < 0 {
		return table, 0
	}

	kept := domain.Table{Columns: table.Columns}
	for i := range table.Rows {
		if v, ok := table.Float(i, xi); ok && v <= 0 {
			continue
		}
		kept.Rows = append(kept.Rows, table.Rows[i])
	}
	return kept, len(table.Rows) - len(kept.Rows)
}

// tableXYs extracts the (x, y) point slice bound by the spec axes.
func tableXYs(table domain.Table, xCol, yCol string) (plotter.XYs, error) {
	xi := table.ColumnIndex(xCol)
	yi := table.ColumnIndex(yCol)
	if xi < 0 || yi < 0 {
		return nil, fmt.Errorf("axis column %q or %q not in table", xCol, yCol)
	}

	pts := make(plotter.XYs, 0, len(table.Rows))
	for i := range table.Rows {
		x, okX := table.Float(i, xi)
		y, okY := table.Float(i, yi)
		if !okX || !okY {
			return nil, fmt.Errorf("row %d: non-numeric point", i)
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
	}
	return pts, nil
}
