package config

import (
	"os"
	"time"
)

// parseEnv overlays Config fields from environment variables. This is the
// layer a serverless runtime configures; unset variables leave the current
// values untouched.
//
// Recognized variables:
//
//	ADDRESS         HTTP bind address (e.g. ":8080")
//	APP_ENV         "development" or "production"
//	STORE_PATH      primary user collection path
//	SCRATCH_PATH    writable fallback path
//	JWT_SECRET      HMAC secret for signing tokens
//	TOKEN_VALIDITY  token lifetime as a Go duration string (e.g. "168h")
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("APP_ENV"); ok {
		config.Environment = v
	}
	if v, ok := os.LookupEnv("STORE_PATH"); ok {
		config.StorePath = v
	}
	if v, ok := os.LookupEnv("SCRATCH_PATH"); ok {
		config.ScratchPath = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
}
