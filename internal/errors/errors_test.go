package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedgen/internal/report"
)

func TestFromReportError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "invalid path",
			err:        &report.InvalidPathError{Path: "/missing.csv"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_PATH",
		},
		{
			name:       "missing field",
			err:        &report.MissingFieldError{Column: "Carrier"},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "MISSING_FIELD",
		},
		{
			name:       "malformed csv",
			err:        &report.MalformedCSVError{Err: fmt.Errorf("bare quote")},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "MALFORMED_CSV",
		},
		{
			name:       "wrapped missing field still maps",
			err:        fmt.Errorf("row 3: %w", &report.MissingFieldError{Column: "Patient"}),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "MISSING_FIELD",
		},
		{
			name:       "unknown error",
			err:        fmt.Errorf("disk full"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "REPORT_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := FromReportError(tt.err)
			assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
			assert.Equal(t, tt.wantCode, apiErr.ErrorCode)
			assert.NotEmpty(t, apiErr.Message)
		})
	}
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, ErrRateLimitExceeded)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "RATE_LIMIT_EXCEEDED", resp.Error.ErrorCode)
}

func TestAPIErrorError(t *testing.T) {
	err := New(http.StatusBadRequest, "INVALID_REQUEST", "bad input")
	assert.Equal(t, "bad input", err.Error())
}
