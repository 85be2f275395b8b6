package report

import "fmt"

// ReportMetadata is the header-block metadata captured once from the first
// data row. All fields stay empty when the input has zero data rows.
type ReportMetadata struct {
	ProviderName string
	DateRange    string
	PracticeName string
}

// TabularDocument is the in-memory table: report metadata plus the mapped
// appointment rows in arrival order. Append-only during construction.
type TabularDocument struct {
	Metadata ReportMetadata
	Rows     []AppointmentRow
}

// BuildTable consumes parsed CSV records and produces the tabular document.
// The first record supplies the metadata (provider name via ExtractProvider,
// date range and practice name verbatim); every record, the first included,
// is mapped to an AppointmentRow. Row order exactly matches input order.
// Zero records yields an empty document and no error.
func BuildTable(records []Record) (*TabularDocument, error) {
	doc := &TabularDocument{}
	for i, rec := range records {
		if i == 0 {
			meta, err := extractMetadata(rec)
			if err != nil {
				return nil, fmt.Errorf("row 1: %w", err)
			}
			doc.Metadata = meta
		}
		row, err := MapRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		doc.Rows = append(doc.Rows, row)
	}
	return doc, nil
}

func extractMetadata(rec Record) (ReportMetadata, error) {
	for _, col := range metadataColumns {
		if _, ok := rec[col]; !ok {
			return ReportMetadata{}, &MissingFieldError{Column: col}
		}
	}
	return ReportMetadata{
		ProviderName: ExtractProvider(rec[colProviderHeader]),
		DateRange:    rec[colDateRange],
		PracticeName: rec[colPracticeName],
	}, nil
}
