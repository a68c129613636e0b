package tally

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// t.Setenv restores the originals; unset so the defaults apply.
	for _, key := range []string{"TALLY_URL", "TALLY_TIMEOUT", "LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", cfg.URL)
	assert.Equal(t, 30000, cfg.TimeoutMS)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("TALLY_URL", "http://tally.local:9999")
	t.Setenv("TALLY_TIMEOUT", "1500")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://tally.local:9999", cfg.URL)
	assert.Equal(t, 1500*time.Millisecond, cfg.Timeout())
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_BadTimeout(t *testing.T) {
	t.Setenv("TALLY_TIMEOUT", "not-a-number")

	_, err := LoadConfig()
	assert.Error(t, err)
}
