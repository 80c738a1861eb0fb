package config // package config loads application configuration from environment variables

import (
	"time"
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. The dashboard is a thin client of the
// remote PPOB API, so every value has a workable default and the binary
// starts with an empty environment.
type Config struct {
	Env        string        // application environment (e.g. "dev", "prod")
	Port       string        // HTTP port to listen on
	APIBaseURL string        // origin of the backend REST API
	SessionTTL time.Duration // lifetime of the token cookie and cached user
}

// Load reads configuration values from environment variables and
// returns a Config. Missing variables fall back to the defaults below;
// an empty API_BASE_URL selects the production backend inside the
// gateway package.
func Load() Config {
	return Config{
		Env:        envStr("APP_ENV", "dev"),
		Port:       envStr("APP_PORT", "8080"),
		APIBaseURL: envStr("API_BASE_URL", ""),
		SessionTTL: envDur("SESSION_TTL", 12*time.Hour),
	}
}
