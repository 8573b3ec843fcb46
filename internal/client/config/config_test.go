package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.ServerBaseURL, "http://localhost:3000")
	assert.Equal(t, c.StatePath, "accountd.db")
	assert.Equal(t, c.RequestTimeout, 10*time.Second)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	os.Args = []string{"cmd"}
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")
	assert.Equal(t, c.ServerBaseURL, "http://localhost:3000")
	assert.Equal(t, c.RequestTimeout, 10*time.Second)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected *Config
		name     string
		args     []string
	}{
		{name: "all flags", args: []string{"cmd",
			"-a", "http://127.0.0.1:9090", "-p", "/tmp/state.db", "-t", "3",
		},
			expected: &Config{
				ServerBaseURL:  "http://127.0.0.1:9090",
				StatePath:      "/tmp/state.db",
				RequestTimeout: 3 * time.Second,
			}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)
			os.Args = tt.args

			config := &Config{}

			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(config, tt.expected))
		})
	}
}

func TestParseEnv_Overlay(t *testing.T) {
	t.Setenv("ACCOUNTD_SERVER_URL", "http://api.internal:3000")
	t.Setenv("ACCOUNTD_REQUEST_TIMEOUT", "5s")

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	assert.Equal(t, "http://api.internal:3000", c.ServerBaseURL)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
	// untouched fields keep their defaults
	assert.Equal(t, "accountd.db", c.StatePath)
}
