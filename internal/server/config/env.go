package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig is a DTO used only for environment parsing. Unset variables
// leave the corresponding Config fields untouched.
type envConfig struct {
	EndpointAddrHTTP      string         `env:"ACCOUNTD_HTTP_ADDR"`
	DatabaseDSN           string         `env:"ACCOUNTD_DATABASE_DSN"`
	SecretKey             string         `env:"ACCOUNTD_SECRET_KEY"`
	TokenValidityDuration *time.Duration `env:"ACCOUNTD_TOKEN_VALIDITY"`
	BcryptCost            *int           `env:"ACCOUNTD_BCRYPT_COST"`
	SeedPath              string         `env:"ACCOUNTD_SEED_PATH"`
	CORSAllowedOrigins    []string       `env:"ACCOUNTD_CORS_ORIGINS"`
	SMTPHost              string         `env:"ACCOUNTD_SMTP_HOST"`
	SMTPPort              *int           `env:"ACCOUNTD_SMTP_PORT"`
	SMTPUser              string         `env:"ACCOUNTD_SMTP_USER"`
	SMTPPassword          string         `env:"ACCOUNTD_SMTP_PASSWORD"`
	MailFrom              string         `env:"ACCOUNTD_MAIL_FROM"`
}

// parseEnv overlays Config with values from the process environment.
// Parsing errors are treated like a malformed config file and panic.
func parseEnv(cfg *Config) {
	e := envConfig{}
	if err := env.Parse(&e); err != nil {
		panic(err)
	}

	if e.EndpointAddrHTTP != "" {
		cfg.EndpointAddrHTTP = e.EndpointAddrHTTP
	}
	if e.DatabaseDSN != "" {
		cfg.DatabaseDSN = e.DatabaseDSN
	}
	if e.SecretKey != "" {
		cfg.SecretKey = e.SecretKey
	}
	if e.TokenValidityDuration != nil {
		cfg.TokenValidityDuration = *e.TokenValidityDuration
	}
	if e.BcryptCost != nil {
		cfg.BcryptCost = *e.BcryptCost
	}
	if e.SeedPath != "" {
		cfg.SeedPath = e.SeedPath
	}
	if len(e.CORSAllowedOrigins) > 0 {
		cfg.CORSAllowedOrigins = e.CORSAllowedOrigins
	}
	if e.SMTPHost != "" {
		cfg.SMTPHost = e.SMTPHost
	}
	if e.SMTPPort != nil {
		cfg.SMTPPort = *e.SMTPPort
	}
	if e.SMTPUser != "" {
		cfg.SMTPUser = e.SMTPUser
	}
	if e.SMTPPassword != "" {
		cfg.SMTPPassword = e.SMTPPassword
	}
	if e.MailFrom != "" {
		cfg.MailFrom = e.MailFrom
	}
}
