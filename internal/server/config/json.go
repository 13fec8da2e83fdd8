package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/avinash6982/TripMakerWeb-BE/internal/flagx"
	"github.com/avinash6982/TripMakerWeb-BE/internal/timex"
)

// JsonConfig is the DTO used only for reading JSON configuration files.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "168h" and integer nanoseconds. After unmarshalling,
// its fields are copied into the runtime Config struct.
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	Environment           string         `json:"environment"`
	StorePath             string         `json:"store_path"`
	ScratchPath           string         `json:"scratch_path"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. Nothing is loaded when the flag
// is absent. Unreadable or invalid files panic: a misconfigured process must
// not start.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.Environment != "" {
		config.Environment = c.Environment
	}
	if c.StorePath != "" {
		config.StorePath = c.StorePath
	}
	if c.ScratchPath != "" {
		config.ScratchPath = c.ScratchPath
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
	}
}
