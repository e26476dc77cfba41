package config

import (
	"os"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string

	// Database
	DatabaseURL string

	// TLS/mTLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string
	TLSCAFile   string // CA for verifying client certs (mTLS)

	// OIDC (bearer-token verification on the run API)
	OIDCIssuer   string
	OIDCClientID string

	// Upstream search-term report API
	ReportBaseURL      string
	ReportClientID     string
	ReportClientSecret string
	ReportTokenURL     string
	ReportTimeout      time.Duration

	// Policy file
	PolicyFile string // env: POLICY_FILE, default: "policy.yaml"

	// CORS
	CORSOrigins string // Comma-separated allowed origins
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:         getEnv("ENV", "development"),
		ServerAddr:  getEnv("SERVER_ADDR", ":3000"),
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/termguard?sslmode=disable"),
		TLSEnabled:  getEnv("TLS_ENABLED", "") != "",
		TLSCertFile: getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:  getEnv("TLS_KEY_FILE", ""),
		TLSCAFile:   getEnv("TLS_CA_FILE", ""),

		OIDCIssuer:   getEnv("OIDC_ISSUER", ""),
		OIDCClientID: getEnv("OIDC_CLIENT_ID", ""),

		ReportBaseURL:      getEnv("REPORT_BASE_URL", ""),
		ReportClientID:     getEnv("REPORT_CLIENT_ID", ""),
		ReportClientSecret: getEnv("REPORT_CLIENT_SECRET", ""),
		ReportTokenURL:     getEnv("REPORT_TOKEN_URL", ""),
		ReportTimeout:      getDuration("REPORT_TIMEOUT", 60*time.Second),

		PolicyFile: getEnv("POLICY_FILE", "policy.yaml"),

		CORSOrigins: getEnv("CORS_ORIGINS", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsMTLSEnabled returns true if mTLS is configured with a CA file.
func (c *Config) IsMTLSEnabled() bool {
	return c.TLSEnabled && c.TLSCAFile != ""
}
