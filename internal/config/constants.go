package config

import "time"

const (
	envStatsBaseURL = "NBA_STATS_BASE_URL"
	envLiveBaseURL  = "NBA_LIVE_BASE_URL"
	envTimeout      = "NBA_HTTP_TIMEOUT"
	envMaxBodyBytes = "NBA_MAX_BODY_BYTES"
	envSecondaryOn  = "NBA_SECONDARY_FETCH"
	envOutputDir    = "NBA_OUTPUT_DIR"
	envOutputFormat = "NBA_OUTPUT_FORMAT"
	envDelayMin     = "NBA_DELAY_MIN"
	envDelayMax     = "NBA_DELAY_MAX"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envMetricsOn    = "METRICS_ENABLED"
	envMetricsPort  = "METRICS_PORT"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultStatsBaseURL = "https://stats.nba.com/stats"
	defaultLiveBaseURL  = "https://cdn.nba.com/static/json/liveData"
	defaultTimeout      = 15 * time.Second
	defaultMaxBodyBytes = 20 << 20
	defaultOutputDir    = "./reports"
	defaultOutputFormat = "json"
	// Pacing defaults sit well under the unofficial throttle threshold;
	// the actual pause per call is drawn uniformly from [min, max].
	defaultDelayMin    = 600 * time.Millisecond
	defaultDelayMax    = 2 * time.Second
	defaultMetricsPort = "9090"
)
