package config

const (
	envPort       = "PORT"
	envSeasonYear = "SEASON_YEAR"
	envRandomSeed = "RANDOM_SEED"

	envDatabaseURL    = "DATABASE_URL"
	envDatabaseEnable = "DATABASE_ENABLED"

	envMetricsEnabled = "METRICS_ENABLED"
	envMetricsPort    = "METRICS_PORT"
	envMetricsService = "METRICS_SERVICE_NAME"
	envOtlpEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtlpInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "8080"
	defaultSeasonYear  = 2025
	defaultRandomSeed  = int64(0) // 0 means seed from the clock
	defaultMetricsPort = "9090"
	defaultServiceName = "league-office-service"
)
