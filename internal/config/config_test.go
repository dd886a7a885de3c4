package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "hydrowatch", cfg.AppName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 180.0, cfg.HighUsageThreshold)
	assert.Equal(t, 50.0, cfg.LowUsageThreshold)
	assert.Equal(t, 200.0, cfg.AbnormalUsageThreshold)
	assert.Equal(t, 7, cfg.DetectorWindowDays)
	assert.Equal(t, 30, cfg.ReportWindowDays)
	assert.True(t, cfg.SeedMeters)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ABNORMAL_USAGE_THRESHOLD", "350.5")
	t.Setenv("DETECTOR_WINDOW_DAYS", "14")
	t.Setenv("SEED_METERS", "off")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := Load()

	assert.Equal(t, 350.5, cfg.AbnormalUsageThreshold)
	assert.Equal(t, 14, cfg.DetectorWindowDays)
	assert.False(t, cfg.SeedMeters)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("DETECTOR_WINDOW_DAYS", "not-a-number")
	t.Setenv("HIGH_USAGE_THRESHOLD", "")
	t.Setenv("SEED_METERS", "maybe")

	cfg := Load()

	assert.Equal(t, 7, cfg.DetectorWindowDays)
	assert.Equal(t, 180.0, cfg.HighUsageThreshold)
	assert.True(t, cfg.SeedMeters)
}
