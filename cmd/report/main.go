// Command report generates the child deprivation analytics report: three
// tabular inputs in, eight charts plus narrative commentary out.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"cdpulse/internal/config"
	"cdpulse/internal/infrastructure"
	"cdpulse/internal/report"
	"cdpulse/pkg/contracts"
)

func main() {
	deprivation2 := flag.String("deprivation2", "", "CSV with the 2+ deprivations indicator")
	deprivation4 := flag.String("deprivation4", "", "CSV with the exactly-4 deprivations indicator")
	metadata := flag.String("metadata", "", "CSV with GDP per capita and population by country and year")
	outDir := flag.String("out", "", "output directory for report artifacts (defaults to ./report)")
	configFile := flag.String("config", "config.yaml", "optional YAML config file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetFullVersionString())
		return
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Flags override config and environment.
	if *deprivation2 != "" {
		cfg.Inputs.DeprivationTwoPlus = *deprivation2
	}
	if *deprivation4 != "" {
		cfg.Inputs.DeprivationFour = *deprivation4
	}
	if *metadata != "" {
		cfg.Inputs.Metadata = *metadata
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}

	if _, err := infrastructure.InitializeLogger(cfg.Logging); err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()
	logger := infrastructure.GetLogger().With(slog.String("run_id", infrastructure.NewRunID()))

	logger.Info("starting report run",
		slog.String("version", contracts.Version),
		slog.String("deprivation2", cfg.Inputs.DeprivationTwoPlus),
		slog.String("deprivation4", cfg.Inputs.DeprivationFour),
		slog.String("metadata", cfg.Inputs.Metadata),
		slog.String("out", cfg.Output.Dir))

	pipeline := report.New(cfg, logger)
	result, err := pipeline.Run(context.Background())
	if err != nil {
		logger.Error("Report run failed", "error", err)
		os.Exit(1)
	}

	logger.Info("report written",
		slog.Int("charts", len(result.Charts)),
		slog.String("workbook", result.Workbook),
		slog.String("narrative", result.Narrative))
}
