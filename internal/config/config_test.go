package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes a variable for the test's duration, restoring it afterwards
func unsetEnv(t *testing.T, key string) {
	t.Setenv(key, "")
	os.Unsetenv(key) //nolint:errcheck // test fixture
}

func TestLoadEnvironmentVariables_Defaults(t *testing.T) {
	unsetEnv(t, "FLASK_PORT")
	unsetEnv(t, "ENVIRONMENT")

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, 5001, cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoadEnvironmentVariables_PortOverride(t *testing.T) {
	t.Setenv("FLASK_PORT", "8080")

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
}

func TestLoadEnvironmentVariables_MalformedPort(t *testing.T) {
	t.Setenv("FLASK_PORT", "not-a-port")

	_, err := LoadEnvironmentVariables()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "FLASK_PORT must be an integer")
}

func TestLoadEnvironmentVariables_EmptyPort(t *testing.T) {
	// set but empty is present and non-numeric, not a fallback to the default
	t.Setenv("FLASK_PORT", "")

	_, err := LoadEnvironmentVariables()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "FLASK_PORT must be an integer")
}

func TestLoadEnvironmentVariables_PortOutOfRange(t *testing.T) {
	for _, raw := range []string{"0", "-1", "70000"} {
		t.Setenv("FLASK_PORT", raw)

		_, err := LoadEnvironmentVariables()

		assert.Error(t, err, "port %s should be rejected", raw)
	}
}

func TestLoadEnvironmentVariables_Environment(t *testing.T) {
	unsetEnv(t, "FLASK_PORT")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
}
