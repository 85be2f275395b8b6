// Package report implements the CSV-to-spreadsheet pipeline for AdvancedMD
// schedule exports.
//
// The pipeline is a single linear pass:
//
//	CSV file -> []Record -> TabularDocument -> styled xlsx workbook -> file
//
// Service.GenerateReport is the one entry point; it validates both paths,
// parses the export, builds the document, renders the styled workbook and
// saves it under a filename derived from the provider name. Any front end
// (CLI, web form) can call it.
//
// Example usage:
//
//	svc := report.NewService(logger)
//	path, err := svc.GenerateReport(ctx, "schedule.csv", "reports", report.FontConfig{
//		FontName:         "Tahoma",
//		ProviderFontSize: 14,
//		TextSize:         8,
//	})
package report
