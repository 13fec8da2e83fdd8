package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_OverridesDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin",
		"-a", ":9090",
		"-n", "production",
		"-f", "/var/lib/app/users.json",
		"-k", "/tmp/users.json",
		"-s", "flag-secret",
		"-t", "24",
	}

	c := &Config{}
	c.LoadDefaults()
	parseFlags(c)

	assert.Equal(t, ":9090", c.EndpointAddr)
	assert.Equal(t, "production", c.Environment)
	assert.Equal(t, "/var/lib/app/users.json", c.StorePath)
	assert.Equal(t, "/tmp/users.json", c.ScratchPath)
	assert.Equal(t, "flag-secret", c.SecretKey)
	assert.Equal(t, 24*time.Hour, c.TokenValidityDuration)
}

func TestParseFlags_IgnoresUnknownFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-z", "what", "-a", ":7070"}

	c := &Config{}
	c.LoadDefaults()
	parseFlags(c)

	assert.Equal(t, ":7070", c.EndpointAddr)
	assert.Equal(t, EnvDevelopment, c.Environment)
}
