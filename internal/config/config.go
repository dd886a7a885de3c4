package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Module provides the loaded configuration to the fx graph.
var Module = fx.Provide(Load)

// Config holds application configuration.
type Config struct {
	AppName    string
	AppVersion string
	LogLevel   string

	// Daily single-reading thresholds, in liters. Crossing either one at
	// ingestion time raises an alert in the alert center.
	HighUsageThreshold float64
	LowUsageThreshold  float64

	// AbnormalUsageThreshold is the trailing average (L/day) above which a
	// meter is considered abnormal.
	AbnormalUsageThreshold float64

	// DetectorWindowDays and ReportWindowDays are the trailing query windows
	// for abnormal-usage detection and report generation.
	DetectorWindowDays int
	ReportWindowDays   int

	SeedMeters bool
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:    getenv("APP_SERVICE", "hydrowatch"),
		AppVersion: getenv("APP_VERSION", "0.1.0"),
		LogLevel:   strings.ToLower(getenv("LOG_LEVEL", "info")),

		HighUsageThreshold:     getenvFloat("HIGH_USAGE_THRESHOLD", 180),
		LowUsageThreshold:      getenvFloat("LOW_USAGE_THRESHOLD", 50),
		AbnormalUsageThreshold: getenvFloat("ABNORMAL_USAGE_THRESHOLD", 200),
		DetectorWindowDays:     getenvInt("DETECTOR_WINDOW_DAYS", 7),
		ReportWindowDays:       getenvInt("REPORT_WINDOW_DAYS", 30),
		SeedMeters:             getenvBool("SEED_METERS", true),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return def
	}
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

func getenvFloat(key string, def float64) float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return def
	}
	return parsed
}
