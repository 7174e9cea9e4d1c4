package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings holds the application-level options that are not part of a
// computation input: logging, default output format and advisor thresholds.
type Settings struct {
	Logging    LoggingConfig   `mapstructure:"logging"`
	Output     OutputConfig    `mapstructure:"output"`
	Thresholds ThresholdConfig `mapstructure:"thresholds"`
}

// LoggingConfig configures the CLI logger.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`      // debug, info, warn, error
	Format     string `mapstructure:"format"`     // json, console
	OutputFile string `mapstructure:"outputFile"` // optional file output
}

// OutputConfig configures report rendering defaults.
type OutputConfig struct {
	Format string `mapstructure:"format"` // console, json, csv
}

// ThresholdConfig tunes the analysis thresholds. Zero values keep the
// statutory defaults.
type ThresholdConfig struct {
	CriticalMonthlyDelta float64 `mapstructure:"criticalMonthlyDelta"`
	RegimeSpread         float64 `mapstructure:"regimeSpread"`
	ForecastMonths       int     `mapstructure:"forecastMonths"`
}

// DefaultSettings returns the settings used when no file is supplied.
func DefaultSettings() *Settings {
	return &Settings{
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Output:  OutputConfig{Format: "console"},
	}
}

// LoadSettings reads a settings file with viper. An empty path returns the
// defaults.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	return settings, nil
}
