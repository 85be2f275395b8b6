package report

import (
	"fmt"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
)

const (
	// sheetName is the single worksheet every report is written to.
	sheetName = "Sheet1"
	// headerRowCount is the size of the metadata/label block above the data.
	// Data rows start at headerRowCount+1 regardless of row count.
	headerRowCount = 5
	// columnCount is the fixed width of the appointment table.
	columnCount = 7
)

// columnLabels are the row-5 table headings, in column order A through G.
var columnLabels = []string{"Time", "Patient", "Comments", "Email", "Type", "Carrier", "Provider"}

var validate = validator.New()

// FontConfig controls report typography. All three values are required; the
// shells load defaults from configuration, the pipeline itself has none.
type FontConfig struct {
	FontName         string  `yaml:"font_name" json:"font_name" validate:"required"`
	ProviderFontSize float64 `yaml:"provider_font_size" json:"provider_font_size" validate:"required,gt=0"`
	TextSize         float64 `yaml:"text_size" json:"text_size" validate:"required,gt=0"`
}

// Validate checks that all font options are populated.
func (c FontConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("font config validation failed: %w", err)
	}
	return nil
}

// BuildWorkbook renders the document into a styled, print-ready workbook.
// The worksheet is built top-down: the 5-row header block first, then one
// row per appointment from row 6. Nothing is shifted or mutated in place.
func BuildWorkbook(doc *TabularDocument, fonts FontConfig) (*excelize.File, error) {
	if err := fonts.Validate(); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := writeHeaderBlock(f, doc.Metadata, fonts); err != nil {
		return nil, fmt.Errorf("write header block: %w", err)
	}
	if err := writeDataRows(f, doc.Rows, fonts); err != nil {
		return nil, fmt.Errorf("write data rows: %w", err)
	}
	if err := applyPrintLayout(f); err != nil {
		return nil, fmt.Errorf("apply print layout: %w", err)
	}
	return f, nil
}

// Save writes the workbook into dir under baseName, overwriting any existing
// file of that name, and returns the written path.
func Save(f *excelize.File, dir, baseName string) (string, error) {
	path := filepath.Join(dir, baseName+".xlsx")
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save report to %s: %w", path, err)
	}
	return path, nil
}

// writeHeaderBlock fills rows 1-5: provider name, date range, practice name,
// a blank spacer row and the column labels.
func writeHeaderBlock(f *excelize.File, meta ReportMetadata, fonts FontConfig) error {
	providerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Family: fonts.FontName, Bold: true, Size: fonts.ProviderFontSize},
	})
	if err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Family: fonts.FontName, Bold: true, Size: fonts.TextSize},
	})
	if err != nil {
		return err
	}

	headerCells := []struct {
		cell  string
		value string
		style int
	}{
		{"A1", meta.ProviderName, providerStyle},
		{"A2", meta.DateRange, headerStyle},
		{"A3", meta.PracticeName, headerStyle},
	}
	for _, hc := range headerCells {
		if err := f.SetCellValue(sheetName, hc.cell, hc.value); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, hc.cell, hc.cell, hc.style); err != nil {
			return err
		}
	}

	// Label row: style the full row, then write the labels.
	if err := f.SetCellStyle(sheetName, "A5", "G5", headerStyle); err != nil {
		return err
	}
	for i, label := range columnLabels {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRowCount)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, label); err != nil {
			return err
		}
	}
	return nil
}

// writeDataRows appends one worksheet row per appointment starting directly
// below the header block. The Comments column additionally wraps its text.
func writeDataRows(f *excelize.File, rows []AppointmentRow, fonts FontConfig) error {
	rowStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Family: fonts.FontName, Size: fonts.TextSize},
	})
	if err != nil {
		return err
	}
	wrapStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: fonts.FontName, Size: fonts.TextSize},
		Alignment: &excelize.Alignment{WrapText: true},
	})
	if err != nil {
		return err
	}

	for i, row := range rows {
		rowNum := headerRowCount + 1 + i
		for j, value := range row.cells() {
			cell, err := excelize.CoordinatesToCellName(j+1, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return err
			}
		}

		first, _ := excelize.CoordinatesToCellName(1, rowNum)
		last, _ := excelize.CoordinatesToCellName(columnCount, rowNum)
		if err := f.SetCellStyle(sheetName, first, last, rowStyle); err != nil {
			return err
		}
		comments, _ := excelize.CoordinatesToCellName(3, rowNum)
		if err := f.SetCellStyle(sheetName, comments, comments, wrapStyle); err != nil {
			return err
		}
	}
	return nil
}

// applyPrintLayout sets landscape orientation, repeats the header block on
// every printed page and fixes the widths of columns B-D so the report fits
// on a printed page.
func applyPrintLayout(f *excelize.File) error {
	orientation := "landscape"
	if err := f.SetPageLayout(sheetName, &excelize.PageLayoutOptions{Orientation: &orientation}); err != nil {
		return err
	}
	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Titles",
		RefersTo: fmt.Sprintf("'%s'!$1:$%d", sheetName, headerRowCount),
		Scope:    sheetName,
	}); err != nil {
		return err
	}
	widths := []struct {
		col   string
		width float64
	}{
		{"B", 19},
		{"C", 30},
		{"D", 19},
	}
	for _, w := range widths {
		if err := f.SetColWidth(sheetName, w.col, w.col, w.width); err != nil {
			return err
		}
	}
	return nil
}
