package config

import (
	"flag"
	"os"
	"time"

	"github.com/avinash6982/TripMakerWeb-BE/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-n string   environment name ("development" or "production")
//	-f string   primary user collection path
//	-k string   scratch (fallback) path
//	-s string   JWT HMAC secret key
//	-t int      token validity, hours
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-n", "-f", "-k", "-s", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.Environment, "n", config.Environment, "environment name")
	fs.StringVar(&config.StorePath, "f", config.StorePath, "user collection path")
	fs.StringVar(&config.ScratchPath, "k", config.ScratchPath, "scratch path")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Hours()), "token validity (in hours)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Hour
}
