package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig is a DTO used only for environment parsing. Unset variables
// leave the corresponding Config fields untouched.
type envConfig struct {
	ServerBaseURL  string         `env:"ACCOUNTD_SERVER_URL"`
	StatePath      string         `env:"ACCOUNTD_STATE_PATH"`
	RequestTimeout *time.Duration `env:"ACCOUNTD_REQUEST_TIMEOUT"`
}

// parseEnv overlays Config with values from the process environment.
// Parsing errors are treated like a malformed config file and panic.
func parseEnv(cfg *Config) {
	e := envConfig{}
	if err := env.Parse(&e); err != nil {
		panic(err)
	}

	if e.ServerBaseURL != "" {
		cfg.ServerBaseURL = e.ServerBaseURL
	}
	if e.StatePath != "" {
		cfg.StatePath = e.StatePath
	}
	if e.RequestTimeout != nil {
		cfg.RequestTimeout = *e.RequestTimeout
	}
}
