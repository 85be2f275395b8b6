package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"schedgen/internal/validation"
)

// Service runs the schedule report pipeline. It is stateless and safe to
// reuse across invocations; each call builds exactly one document.
type Service struct {
	validator *validation.FileValidator
	logger    *slog.Logger
}

// NewService creates a report service. A nil logger falls back to the
// default slog logger.
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		validator: validation.NewFileValidator(logger),
		logger:    logger,
	}
}

// GenerateReport converts the CSV export at inputPath into a styled xlsx
// report in outputDir and returns the path of the written file. Both paths
// are validated before anything is read; all errors abort the invocation and
// leave no partial output file behind.
func (s *Service) GenerateReport(ctx context.Context, inputPath, outputDir string, fonts FontConfig) (string, error) {
	if err := fonts.Validate(); err != nil {
		return "", err
	}
	if inputPath == "" {
		return "", &InvalidPathError{Path: inputPath, Err: fmt.Errorf("input path is empty")}
	}
	if outputDir == "" {
		return "", &InvalidPathError{Path: outputDir, Err: fmt.Errorf("output directory is empty")}
	}
	if err := s.validator.ValidateCSVFile(inputPath); err != nil {
		return "", &InvalidPathError{Path: inputPath, Err: err}
	}
	if err := s.validator.ValidateOutputDirectory(outputDir); err != nil {
		return "", &InvalidPathError{Path: outputDir, Err: err}
	}

	s.logger.InfoContext(ctx, "generating schedule report",
		slog.String("input_path", inputPath),
		slog.String("output_dir", outputDir),
		slog.String("font_name", fonts.FontName))

	file, err := os.Open(inputPath)
	if err != nil {
		return "", &InvalidPathError{Path: inputPath, Err: err}
	}
	defer file.Close()

	records, err := ReadRecords(file)
	if err != nil {
		return "", err
	}

	doc, err := BuildTable(records)
	if err != nil {
		return "", err
	}

	workbook, err := BuildWorkbook(doc, fonts)
	if err != nil {
		return "", err
	}

	path, err := Save(workbook, outputDir, DeriveFilename(doc.Metadata.ProviderName))
	if err != nil {
		return "", err
	}

	s.logger.InfoContext(ctx, "schedule report written",
		slog.String("output_path", path),
		slog.String("provider", doc.Metadata.ProviderName),
		slog.Int("appointment_rows", len(doc.Rows)))
	return path, nil
}
