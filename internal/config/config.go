// Package config loads the application configuration from environment
// variables and an optional YAML file. Environment variables win.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"schedgen/internal/report"
)

// Config represents the complete application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server" envconfig:"SERVER"`
	Security SecurityConfig `yaml:"security" envconfig:"SECURITY"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Report   ReportConfig   `yaml:"report" envconfig:"REPORT"`
}

// ServerConfig contains HTTP server configuration for the web shell.
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// SecurityConfig contains security-related configuration.
type SecurityConfig struct {
	RateLimit RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration for the web shell.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED" default:"true"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" default:"10"`
	Burst   int     `yaml:"burst" envconfig:"BURST" default:"20"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level       string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format      string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output      string `yaml:"output" envconfig:"OUTPUT" default:"console"`
	FilePath    string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/schedgen.log"`
	Development bool   `yaml:"development" envconfig:"DEVELOPMENT" default:"false"`
}

// ReportConfig carries report typography and the default output location.
// The font values mirror the original product defaults.
type ReportConfig struct {
	FontName         string  `yaml:"font_name" envconfig:"FONT_NAME" default:"Tahoma"`
	ProviderFontSize float64 `yaml:"provider_font_size" envconfig:"PROVIDER_FONT_SIZE" default:"14"`
	TextSize         float64 `yaml:"text_size" envconfig:"TEXT_SIZE" default:"8"`
	OutputDir        string  `yaml:"output_dir" envconfig:"OUTPUT_DIR" default:"reports"`
}

// FontConfig converts the configured typography into the pipeline's
// FontConfig value.
func (r ReportConfig) FontConfig() report.FontConfig {
	return report.FontConfig{
		FontName:         r.FontName,
		ProviderFontSize: r.ProviderFontSize,
		TextSize:         r.TextSize,
	}
}

// Load loads configuration from environment variables and config file.
func Load() (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process("SCHEDGEN", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if exists
	configFile := getConfigFilePath()
	if configFile != "" {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence).
// envconfig already applied defaults, so only values still at their default
// zero/default state pick up the file values.
func mergeConfigs(fileConfig, envConfig Config) Config {
	if fileConfig.Server.Port != 0 && os.Getenv("SCHEDGEN_SERVER_PORT") == "" {
		envConfig.Server.Port = fileConfig.Server.Port
	}
	if fileConfig.Logging.Level != "" && os.Getenv("SCHEDGEN_LOGGING_LEVEL") == "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if fileConfig.Logging.FilePath != "" && os.Getenv("SCHEDGEN_LOGGING_FILE_PATH") == "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if fileConfig.Report.FontName != "" && os.Getenv("SCHEDGEN_REPORT_FONT_NAME") == "" {
		envConfig.Report.FontName = fileConfig.Report.FontName
	}
	if fileConfig.Report.ProviderFontSize != 0 && os.Getenv("SCHEDGEN_REPORT_PROVIDER_FONT_SIZE") == "" {
		envConfig.Report.ProviderFontSize = fileConfig.Report.ProviderFontSize
	}
	if fileConfig.Report.TextSize != 0 && os.Getenv("SCHEDGEN_REPORT_TEXT_SIZE") == "" {
		envConfig.Report.TextSize = fileConfig.Report.TextSize
	}
	if fileConfig.Report.OutputDir != "" && os.Getenv("SCHEDGEN_REPORT_OUTPUT_DIR") == "" {
		envConfig.Report.OutputDir = fileConfig.Report.OutputDir
	}

	return envConfig
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("server read timeout must be positive")
	}

	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server write timeout must be positive")
	}

	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		c.Logging.Format = "json"
	}

	if c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/schedgen.log"
	}

	if err := c.Report.FontConfig().Validate(); err != nil {
		return err
	}

	return nil
}

// getConfigFilePath returns the path to the config file, if one exists in
// the common locations.
func getConfigFilePath() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
		"../configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Security: SecurityConfig{
			RateLimit: RateLimitConfig{
				Enabled: true,
				RPS:     10,
				Burst:   20,
			},
		},
		Logging: LoggingConfig{
			Level:       "info",
			Format:      "json",
			Output:      "console",
			FilePath:    "logs/schedgen.log",
			Development: false,
		},
		Report: ReportConfig{
			FontName:         "Tahoma",
			ProviderFontSize: 14,
			TextSize:         8,
			OutputDir:        "reports",
		},
	}
}
