package config

// Config holds runtime configuration for the server.
type Config struct {
	Port       string
	SeasonYear int
	RandomSeed int64
	Database   DatabaseConfig
	Metrics    MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:       envOrDefault(envPort, defaultPort),
		SeasonYear: intEnvOrDefault(envSeasonYear, defaultSeasonYear),
		RandomSeed: int64EnvOrDefault(envRandomSeed, defaultRandomSeed),
		Database:   loadDatabase(),
		Metrics:    loadMetrics(),
	}
}
