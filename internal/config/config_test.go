package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	// Original product typography defaults.
	assert.Equal(t, "Tahoma", cfg.Report.FontName)
	assert.Equal(t, 14.0, cfg.Report.ProviderFontSize)
	assert.Equal(t, 8.0, cfg.Report.TextSize)

	assert.NoError(t, cfg.validate())
}

func TestReportConfigFontConfig(t *testing.T) {
	rc := ReportConfig{FontName: "Arial", ProviderFontSize: 16, TextSize: 10}
	fonts := rc.FontConfig()

	assert.Equal(t, "Arial", fonts.FontName)
	assert.Equal(t, 16.0, fonts.ProviderFontSize)
	assert.Equal(t, 10.0, fonts.TextSize)
	assert.NoError(t, fonts.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "invalid port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "invalid server port",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "invalid server port",
		},
		{
			name:    "zero read timeout",
			mutate:  func(c *Config) { c.Server.ReadTimeout = 0 },
			wantErr: "read timeout",
		},
		{
			name:    "missing font name",
			mutate:  func(c *Config) { c.Report.FontName = "" },
			wantErr: "font config",
		},
		{
			name:    "zero text size",
			mutate:  func(c *Config) { c.Report.TextSize = 0 },
			wantErr: "font config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.validate()
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidateNormalizesLogging(t *testing.T) {
	cfg := Default()
	cfg.Logging.Format = "xml"
	cfg.Logging.FilePath = ""

	require.NoError(t, cfg.validate())
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "logs/schedgen.log", cfg.Logging.FilePath)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9090
report:
  font_name: Calibri
  provider_font_size: 16
  text_size: 9
  output_dir: /tmp/reports
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := loadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "Calibri", cfg.Report.FontName)
	assert.Equal(t, 16.0, cfg.Report.ProviderFontSize)
	assert.Equal(t, "/tmp/reports", cfg.Report.OutputDir)
}

func TestLoadFromFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0644))

	_, err := loadFromFile(path)
	assert.Error(t, err)
}

func TestMergeConfigsFileFillsUnsetValues(t *testing.T) {
	fileCfg := *Default()
	fileCfg.Server.Port = 9191
	fileCfg.Report.FontName = "Calibri"

	envCfg := *Default()
	merged := mergeConfigs(fileCfg, envCfg)

	assert.Equal(t, 9191, merged.Server.Port)
	assert.Equal(t, "Calibri", merged.Report.FontName)
}
