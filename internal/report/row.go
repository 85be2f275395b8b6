package report

// Column names as they appear in the AdvancedMD schedule export header.
const (
	colAppointmentTime = "AppointmentTime"
	colPatient         = "Patient"
	colComments        = "Comments"
	colEmail           = "PatientEmailAddress"
	colAppointmentType = "AppointmentTypeName"
	colCarrier         = "Carrier"
	colProvider        = "Provider"

	// Report-level metadata columns, repeated on every data row by the
	// export tool. Only the first row is consulted.
	colProviderHeader = "Textbox9"
	colDateRange      = "textbox29"
	colPracticeName   = "PracticeName"
)

// requiredColumns are the fields every data row must carry to be mapped.
var requiredColumns = []string{
	colAppointmentTime,
	colPatient,
	colComments,
	colEmail,
	colAppointmentType,
	colCarrier,
	colProvider,
}

// metadataColumns must be present on the first data row.
var metadataColumns = []string{
	colProviderHeader,
	colDateRange,
	colPracticeName,
}

// Record is one CSV data row keyed by column header. Records are ephemeral;
// they are consumed immediately during table building.
type Record map[string]string

// AppointmentRow is the fixed 7-column projection of one appointment as it
// is written to the report. Immutable once created.
type AppointmentRow struct {
	Time     string
	Patient  string
	Comments string
	Email    string
	Type     string
	Carrier  string
	Provider string
}

// cells returns the row values in report column order (A through G).
func (r AppointmentRow) cells() []string {
	return []string{r.Time, r.Patient, r.Comments, r.Email, r.Type, r.Carrier, r.Provider}
}

// MapRow projects a CSV record onto an AppointmentRow. Every required column
// must be present; an absent column yields a MissingFieldError instead of a
// silently defaulted value.
func MapRow(rec Record) (AppointmentRow, error) {
	for _, col := range requiredColumns {
		if _, ok := rec[col]; !ok {
			return AppointmentRow{}, &MissingFieldError{Column: col}
		}
	}
	return AppointmentRow{
		Time:     rec[colAppointmentTime],
		Patient:  rec[colPatient],
		Comments: rec[colComments],
		Email:    rec[colEmail],
		Type:     rec[colAppointmentType],
		Carrier:  rec[colCarrier],
		Provider: rec[colProvider],
	}, nil
}
