// Command schedgen converts an AdvancedMD schedule CSV export into a styled,
// print-ready xlsx report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"schedgen/internal/config"
	"schedgen/internal/infrastructure"
	"schedgen/internal/report"
)

func main() {
	in := flag.String("in", "", "input CSV file (schedule export)")
	out := flag.String("out", "", "output directory (defaults to the configured report directory)")
	fontName := flag.String("font", "", "report font (overrides config)")
	providerSize := flag.Float64("provider-size", 0, "provider header font size (overrides config)")
	textSize := flag.Float64("text-size", 0, "body text font size (overrides config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "error: -in is required")
		flag.Usage()
		os.Exit(2)
	}
	if *out == "" {
		*out = cfg.Report.OutputDir
	}

	fonts := cfg.Report.FontConfig()
	if *fontName != "" {
		fonts.FontName = *fontName
	}
	if *providerSize > 0 {
		fonts.ProviderFontSize = *providerSize
	}
	if *textSize > 0 {
		fonts.TextSize = *textSize
	}

	ctx := infrastructure.EnsureTraceID(context.Background())
	svc := report.NewService(logger)

	path, err := svc.GenerateReport(ctx, *in, *out, fonts)
	if err != nil {
		logger.ErrorContext(ctx, "report generation failed",
			slog.String("input_path", *in),
			slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("File generated: %s\n", path)
}
