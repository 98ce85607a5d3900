package config

import (
	"testing"
)

func TestDefaultQualityConfig(t *testing.T) {
	config := DefaultQualityConfig()

	if config.QueryRateThreshold != 95.0 {
		t.Errorf("Expected QueryRateThreshold 95.0, got %f", config.QueryRateThreshold)
	}

	if config.ResponseTimeThresholdMs != 500 {
		t.Errorf("Expected ResponseTimeThresholdMs 500, got %f", config.ResponseTimeThresholdMs)
	}

	if config.ErrorRateThreshold <= 0 {
		t.Error("ErrorRateThreshold must be positive")
	}
}

func TestDefaultAlertConfig(t *testing.T) {
	config := DefaultAlertConfig()

	if config.RetentionDays != 90 {
		t.Errorf("Expected RetentionDays 90, got %d", config.RetentionDays)
	}
}

func TestDefaultExportConfig(t *testing.T) {
	config := DefaultExportConfig()

	if config.OutputDir == "" {
		t.Error("OutputDir must not be empty")
	}
}
