// Package config defines default configuration for quality monitoring,
// alert retention, and export output.
package config

// QualityConfig defines the default thresholds applied to realtime
// metric windows.
type QualityConfig struct {
	// QueryRateThreshold is the minimum acceptable query rate, percent.
	QueryRateThreshold float64 `mapstructure:"query_rate_threshold"`
	// ResponseTimeThresholdMs is the maximum acceptable average response time.
	ResponseTimeThresholdMs float64 `mapstructure:"response_time_threshold_ms"`
	// ErrorRateThreshold is the maximum acceptable error rate, percent.
	ErrorRateThreshold float64 `mapstructure:"error_rate_threshold"`
}

// AlertConfig defines alert center behavior.
type AlertConfig struct {
	// RetentionDays is how long alert messages stay visible.
	RetentionDays int `mapstructure:"retention_days"`
}

// ExportConfig defines headless export output.
type ExportConfig struct {
	// OutputDir receives the generated CSV, JSON, and HTML artifacts.
	OutputDir string `mapstructure:"output_dir"`
}

// DefaultQualityConfig returns the standard realtime thresholds.
func DefaultQualityConfig() QualityConfig {
	return QualityConfig{
		QueryRateThreshold:      95.0,
		ResponseTimeThresholdMs: 500,
		ErrorRateThreshold:      1.0,
	}
}

// DefaultAlertConfig returns the standard retention window.
func DefaultAlertConfig() AlertConfig {
	return AlertConfig{
		RetentionDays: 90,
	}
}

// DefaultExportConfig returns the standard export destination.
func DefaultExportConfig() ExportConfig {
	return ExportConfig{
		OutputDir: "govlens-out",
	}
}
