package config

// DatabaseConfig controls the optional Postgres-backed schedule store. When
// disabled the server keeps schedules in memory.
type DatabaseConfig struct {
	Enabled bool
	URL     string
}

func loadDatabase() DatabaseConfig {
	url := envOrDefault(envDatabaseURL, "")
	return DatabaseConfig{
		Enabled: boolEnvOrDefault(envDatabaseEnable, url != ""),
		URL:     url,
	}
}
