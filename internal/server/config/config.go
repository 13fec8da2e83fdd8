// Package config handles configuration for the server component, including
// defaults, JSON overlay, environment variables, and command-line flags.
package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds runtime settings for the server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - Environment: "development" or "production"; production refuses to start
//     without an explicit SecretKey.
//   - StorePath: primary location of the JSON user collection.
//   - ScratchPath: writable fallback location used when StorePath rejects writes.
//   - SecretKey: HMAC secret for signing JWTs (HS256).
//   - TokenValidityDuration: bearer token lifetime, applied at issuance.
type Config struct {
	EndpointAddr          string
	Environment           string
	StorePath             string
	ScratchPath           string
	SecretKey             string
	TokenValidityDuration time.Duration
}

// LoadDefaults populates Config with development defaults. The scratch path
// lives outside the data directory, in the OS temp location, which stays
// writable on read-only serverless filesystems.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.Environment = EnvDevelopment
	c.StorePath = filepath.Join("data", "users.json")
	c.ScratchPath = filepath.Join(os.TempDir(), "tripmaker", "users.json")
	c.SecretKey = ""
	c.TokenValidityDuration = 7 * 24 * time.Hour
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// IsProduction reports whether the process runs in the production context.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}
