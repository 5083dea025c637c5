package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	for _, k := range []string{
		"SERVER_PORT", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "LOG_LEVEL", "MAX_OBJECTS",
		"MAX_ATTRIBUTES", "MINING_WORKERS", "VERIFY_INVARIANTS", "SLOW_REQUEST_THRESHOLD",
		"MIGRATIONS_PATH",
	} {
		t.Setenv(k, "")
	}

	assert.Equal(t, 8080, ServerPort())
	assert.Equal(t, ":8080", ServerAddr())
	assert.Equal(t, 100.0, RateLimitRPS())
	assert.Equal(t, 20, RateLimitBurst())
	assert.Equal(t, "info", LogLevel())
	assert.Equal(t, 10000, MaxObjects())
	assert.Equal(t, 64, MaxAttributes())
	assert.Equal(t, 0, MiningWorkers())
	assert.False(t, VerifyInvariants())
	assert.Equal(t, 2*time.Second, SlowRequestThreshold())
	assert.Equal(t, "migrations", MigrationsPath())
}

func TestOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MAX_ATTRIBUTES", "12")
	t.Setenv("MINING_WORKERS", "-3")
	t.Setenv("VERIFY_INVARIANTS", "true")
	t.Setenv("SLOW_REQUEST_THRESHOLD", "250ms")

	assert.Equal(t, 9090, ServerPort())
	assert.Equal(t, 12, MaxAttributes())
	assert.Equal(t, 0, MiningWorkers())
	assert.True(t, VerifyInvariants())
	assert.Equal(t, 250*time.Millisecond, SlowRequestThreshold())
}

func TestLoad_ReadsEnvFileAndSecret(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("MAX_OBJECTS=42\n"), 0o600))
	require.NoError(t, os.WriteFile(envFile+".secret", []byte("GALOIS_API_KEY=hunter2\n"), 0o600))

	t.Setenv("GALOIS_ENV", envFile)
	// godotenv never overrides variables that are already set, so clear
	// them through t.Setenv to get them restored afterwards.
	t.Setenv("MAX_OBJECTS", "")
	t.Setenv("GALOIS_API_KEY", "")
	require.NoError(t, os.Unsetenv("MAX_OBJECTS"))
	require.NoError(t, os.Unsetenv("GALOIS_API_KEY"))

	require.NoError(t, Load())
	assert.Equal(t, 42, MaxObjects())
	assert.Equal(t, "hunter2", APIKey())
}
