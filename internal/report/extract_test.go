package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractProvider(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "provider with credentials",
			input:    "Providers, Jane Doe, MD",
			expected: "Providers, Jane Doe, ",
		},
		{
			name:     "greedy match runs through the last comma-space",
			input:    "Providers, John Q. Smith, Jr., DO",
			expected: "Providers, John Q. Smith, Jr., ",
		},
		{
			name:     "no comma-space means no match",
			input:    "Jane Doe MD",
			expected: "Jane Doe MD",
		},
		{
			name:     "does not start with P",
			input:    "Staff, Jane Doe, MD",
			expected: "Staff, Jane Doe, MD",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "comma without following space",
			input:    "Providers,Jane",
			expected: "Providers,Jane",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractProvider(tt.input))
		})
	}
}

func TestExtractProviderIdempotent(t *testing.T) {
	once := ExtractProvider("Providers, Jane Doe, MD")
	assert.Equal(t, once, ExtractProvider(once))
}

func TestDeriveFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "extracted provider name",
			input:    "Providers, Jane Doe, ",
			expected: "Providers_Jane_Doe_",
		},
		{
			name:     "interior run collapses to one underscore",
			input:    "a - b",
			expected: "a_b",
		},
		{
			name:     "leading and trailing runs",
			input:    " (name) ",
			expected: "_name_",
		},
		{
			name:     "word characters untouched",
			input:    "Jane_Doe_42",
			expected: "Jane_Doe_42",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "all symbols",
			input:    "--- ---",
			expected: "_",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveFilename(tt.input))
		})
	}
}

func TestDeriveFilenameStable(t *testing.T) {
	inputs := []string{"Providers, Jane Doe, ", "a - b", " (name) ", "", "!!!"}
	for _, in := range inputs {
		once := DeriveFilename(in)
		assert.Equal(t, once, DeriveFilename(once), "input %q", in)
	}
}
