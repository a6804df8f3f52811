package config

import (
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the client and the batch CLI.
type Config struct {
	StatsBaseURL   string
	LiveBaseURL    string
	Timeout        time.Duration
	MaxBodyBytes   int64
	SecondaryFetch bool
	Output         OutputConfig
	Pacing         PacingConfig
	Log            LogConfig
	Metrics        MetricsConfig
}

// OutputConfig controls where and how the CLI writes reports.
type OutputConfig struct {
	Dir    string
	Format string
}

// PacingConfig bounds the random inter-call pause the CLI inserts between
// endpoint calls.
type PacingConfig struct {
	DelayMin time.Duration
	DelayMax time.Duration
}

// LogConfig carries logger construction options.
type LogConfig struct {
	Level  string
	Format string
}

// MetricsConfig controls telemetry export.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file is honored when present and silently skipped when not.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		StatsBaseURL:   envOrDefault(envStatsBaseURL, defaultStatsBaseURL),
		LiveBaseURL:    envOrDefault(envLiveBaseURL, defaultLiveBaseURL),
		Timeout:        durationEnvOrDefault(envTimeout, defaultTimeout),
		MaxBodyBytes:   int64EnvOrDefault(envMaxBodyBytes, defaultMaxBodyBytes),
		SecondaryFetch: boolEnvOrDefault(envSecondaryOn, false),
		Output: OutputConfig{
			Dir:    envOrDefault(envOutputDir, defaultOutputDir),
			Format: envOrDefault(envOutputFormat, defaultOutputFormat),
		},
		Pacing: PacingConfig{
			DelayMin: durationEnvOrDefault(envDelayMin, defaultDelayMin),
			DelayMax: durationEnvOrDefault(envDelayMax, defaultDelayMax),
		},
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, "info"),
			Format: envOrDefault(envLogFormat, "text"),
		},
		Metrics: MetricsConfig{
			Enabled:      boolEnvOrDefault(envMetricsOn, false),
			Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
			ServiceName:  envOrDefault(envOtelService, "nba-api"),
			OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
			OtlpInsecure: boolEnvOrDefault(envOtelInsecure, false),
		},
	}

	if cfg.Pacing.DelayMax < cfg.Pacing.DelayMin {
		cfg.Pacing.DelayMax = cfg.Pacing.DelayMin
	}
	return cfg
}
