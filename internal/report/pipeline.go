package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"cdpulse/internal/analytics"
	"cdpulse/internal/config"
	"cdpulse/internal/dataset"
	apperrors "cdpulse/internal/errors"
	"cdpulse/internal/exporter"
	"cdpulse/internal/presenter"
	"cdpulse/internal/transform"
	"cdpulse/pkg/contracts/domain"
)

// Pipeline runs the whole report: load the three sources, normalize,
// compute the six aggregates, and render every artifact into the output
// directory.
//
// Loading errors are fatal and abort the run. A failed or empty aggregate
// degrades its own chart to a placeholder and the run continues; this is
// a one-shot batch job with no retries.
type Pipeline struct {
	cfg      *config.Config
	logger   *slog.Logger
	renderer presenter.Renderer
	csv      *exporter.CSVWriter
}

// Result lists the artifacts a run produced.
type Result struct {
	Charts    []string
	Workbook  string
	Narrative string
}

// New creates a pipeline with the default PNG renderer and CSV exporter.
func New(cfg *config.Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		cfg:      cfg,
		logger:   logger,
		renderer: presenter.NewPlotRenderer(cfg.Output.Dir, logger),
		csv:      exporter.NewCSVWriter(cfg.TablesDir(), logger),
	}
}

// SetRenderer replaces the chart backend. Used by tests and by callers
// embedding the pipeline behind a different presenter.
func (p *Pipeline) SetRenderer(r presenter.Renderer) {
	p.renderer = r
}

// chartJob pairs one chart spec with its aggregate table.
type chartJob struct {
	spec  domain.ChartSpec
	table domain.Table
}

// Run executes the pipeline once.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	if err := p.cfg.ValidateInputs(); err != nil {
		return nil, err
	}
	if err := p.cfg.EnsureOutputDirs(); err != nil {
		return nil, err
	}

	twoPlus, four, meta, err := p.load()
	if err != nil {
		return nil, err
	}

	// The age slice is applied once, globally, to both indicator tables.
	twoPlus = transform.Normalize(twoPlus)
	four = transform.Normalize(four)
	p.logger.Info("normalized observation tables",
		slog.Int("two_plus_rows", len(twoPlus.Rows)),
		slog.Int("four_rows", len(four.Rows)))

	// The six aggregates are independent of each other; data volume is
	// small enough that running them sequentially is fine.
	topDeprived := analytics.LatestYearTopN(twoPlus, p.cfg.Analysis.TopN)
	perCountry := analytics.PerCountryLatest(twoPlus, meta)
	yearlyMean := analytics.GlobalYearlyMean(twoPlus, p.cfg.Analysis.MinYear)
	populous := analytics.TopKPopulationSeries(twoPlus, meta, p.cfg.Analysis.TopKPopulation)
	severity := analytics.CrossIndicatorComparison(twoPlus, four)
	regions := analytics.RegionAverage(twoPlus, p.cfg.Regions)
	topSevere := analytics.LatestYearTopN(four, p.cfg.Analysis.TopN)

	regionTbl := regionTable(regions)
	jobs := []chartJob{
		{topDeprivedSpec(), rankedTable(topDeprived)},
		{gdpScatterSpec(), latestTable(perCountry)},
		{globalTrendSpec(), yearMeanTable(yearlyMean)},
		{populousSeriesSpec(), seriesTable(populous)},
		{severitySpec(), comparisonTable(severity)},
		{regionAvgSpec(), regionTbl},
		{topSevereSpec(), rankedTable(topSevere)},
		{regionMapSpec(), regionTbl},
	}

	workbook := presenter.NewWorkbookWriter(filepath.Join(p.cfg.Output.Dir, "report.xlsx"), p.logger)

	result := &Result{}
	for _, job := range jobs {
		if err := job.spec.Validate(); err != nil {
			p.logger.Warn("invalid chart spec, skipping artifact",
				slog.String("chart", job.spec.Name),
				slog.String("error", err.Error()))
			continue
		}
		if job.table.Empty() {
			p.logger.Warn("aggregate produced no rows, chart degrades to placeholder",
				slog.String("chart", job.spec.Name),
				slog.String("error", apperrors.EmptyResult(job.spec.Name).Error()))
		}

		path, err := p.renderChart(ctx, job)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			p.logger.Warn("chart render failed, skipping artifact",
				slog.String("chart", job.spec.Name),
				slog.String("error", err.Error()))
		} else {
			result.Charts = append(result.Charts, path)
		}

		if err := p.csv.WriteTable(job.spec.Name, job.table); err != nil {
			p.logger.Warn("table export failed",
				slog.String("table", job.spec.Name),
				slog.String("error", err.Error()))
		}
		if err := workbook.Add(job.spec, job.table); err != nil {
			p.logger.Warn("workbook sheet failed",
				slog.String("sheet", job.spec.Name),
				slog.String("error", err.Error()))
		}
	}

	if err := workbook.Save(); err != nil {
		p.logger.Warn("workbook save failed", slog.String("error", err.Error()))
	} else {
		result.Workbook = filepath.Join(p.cfg.Output.Dir, "report.xlsx")
	}

	narrativePath := filepath.Join(p.cfg.Output.Dir, "report.md")
	narrative := buildNarrative(narrativeData{
		TwoPlusRows: len(twoPlus.Rows),
		FourRows:    len(four.Rows),
		MetaRows:    len(meta.Rows),
		TopDeprived: topDeprived,
		PerCountry:  perCountry,
		YearlyMean:  yearlyMean,
		Populous:    populous,
		Severity:    severity,
		Regions:     regions,
		MinYear:     p.cfg.Analysis.MinYear,
	})
	if err := os.WriteFile(narrativePath, []byte(narrative), 0644); err != nil {
		return nil, fmt.Errorf("failed to write narrative: %w", err)
	}
	result.Narrative = narrativePath

	p.logger.Info("report complete",
		slog.Int("charts", len(result.Charts)),
		slog.String("output_dir", p.cfg.Output.Dir))
	return result, nil
}

// renderChart calls the chart backend, converting a panic into an error
// so one bad chart degrades instead of aborting the run.
func (p *Pipeline) renderChart(ctx context.Context, job chartJob) (path string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("chart backend panicked: %v", rec)
		}
	}()
	return p.renderer.Render(ctx, job.spec, job.table)
}

// load reads the three sources. Any failure here aborts the run.
func (p *Pipeline) load() (dataset.ObservationTable, dataset.ObservationTable, dataset.MetadataTable, error) {
	var zeroObs dataset.ObservationTable
	var zeroMeta dataset.MetadataTable

	twoPlus, err := dataset.LoadObservations(p.cfg.Inputs.DeprivationTwoPlus, "deprived_2plus")
	if err != nil {
		return zeroObs, zeroObs, zeroMeta, fmt.Errorf("load deprivation (2+) table: %w", err)
	}
	four, err := dataset.LoadObservations(p.cfg.Inputs.DeprivationFour, "deprived_4")
	if err != nil {
		return zeroObs, zeroObs, zeroMeta, fmt.Errorf("load deprivation (4) table: %w", err)
	}
	meta, err := dataset.LoadMetadata(p.cfg.Inputs.Metadata)
	if err != nil {
		return zeroObs, zeroObs, zeroMeta, fmt.Errorf("load metadata table: %w", err)
	}

	p.logger.Info("loaded source tables",
		slog.Int("two_plus_rows", len(twoPlus.Rows)),
		slog.Int("four_rows", len(four.Rows)),
		slog.Int("metadata_rows", len(meta.Rows)))
	return twoPlus, four, meta, nil
}
