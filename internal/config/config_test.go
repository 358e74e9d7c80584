package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"PORT", "ENVIRONMENT", "LOG_LEVEL", "BALANCER_TYPE", "FACTORIES", "WARMUP",
	"REQUESTS", "PLANT_FILE", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "SHUTDOWN_TIMEOUT",
}

// clearEnv unsets every key the loader reads, restoring them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestConfigLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "least-busy", cfg.BalancerType)
	assert.Equal(t, 10, cfg.Requests)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []FactorySpec{
		{Brand: "ford", Warmup: 2},
		{Brand: "ford", Warmup: 1},
		{Brand: "ford", Warmup: 0},
		{Brand: "toyota", Warmup: 1},
	}, cfg.Factories)
}

func TestConfigLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("BALANCER_TYPE", "round-robin")
	t.Setenv("FACTORIES", "toyota, ford")
	t.Setenv("WARMUP", "3")
	t.Setenv("REQUESTS", "4")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "round-robin", cfg.BalancerType)
	assert.Equal(t, 4, cfg.Requests)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, []FactorySpec{{Brand: "toyota", Warmup: 3}, {Brand: "ford"}}, cfg.Factories)
}

func TestConfigLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	envFile := writeFile(t, ".env", "PORT=9090\nREQUESTS=3\n")

	cfg, err := LoadFromFile(envFile)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 3, cfg.Requests)
}

func TestConfigLoad_PlantFile(t *testing.T) {
	clearEnv(t)
	plant := writeFile(t, "plant.yaml", `
balancer: round-robin
factories:
  - brand: toyota
    warmup: 5
  - brand: ford
`)
	t.Setenv("PLANT_FILE", plant)

	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)

	assert.Equal(t, "round-robin", cfg.BalancerType)
	assert.Equal(t, []FactorySpec{{Brand: "toyota", Warmup: 5}, {Brand: "ford"}}, cfg.Factories)
}

func TestConfigLoad_PlantFileEmptyFactories(t *testing.T) {
	clearEnv(t)
	t.Setenv("PLANT_FILE", writeFile(t, "plant.yaml", "factories: []\n"))

	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)

	assert.Empty(t, cfg.Factories)
	assert.Equal(t, "least-busy", cfg.BalancerType)
}

func TestConfig_ValidationErrors(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		plant       string
		expectError bool
	}{
		{
			name:        "valid configuration",
			envVars:     map[string]string{"PORT": "8080", "FACTORIES": "ford,toyota", "WARMUP": "1,1"},
			expectError: false,
		},
		{
			name:        "invalid PORT format",
			envVars:     map[string]string{"PORT": "invalid-port"},
			expectError: true,
		},
		{
			name:        "unknown brand",
			envVars:     map[string]string{"FACTORIES": "ford,tesla"},
			expectError: true,
		},
		{
			name:        "too many warmup values",
			envVars:     map[string]string{"FACTORIES": "ford", "WARMUP": "1,2"},
			expectError: true,
		},
		{
			name:        "non numeric warmup",
			envVars:     map[string]string{"FACTORIES": "ford", "WARMUP": "lots"},
			expectError: true,
		},
		{
			name:        "invalid REQUESTS",
			envVars:     map[string]string{"REQUESTS": "invalid"},
			expectError: true,
		},
		{
			name:        "negative REQUESTS",
			envVars:     map[string]string{"REQUESTS": "-1"},
			expectError: true,
		},
		{
			name:        "non numeric RATE_LIMIT_RPS",
			envVars:     map[string]string{"RATE_LIMIT_RPS": "fast"},
			expectError: true,
		},
		{
			name:        "non numeric RATE_LIMIT_BURST",
			envVars:     map[string]string{"RATE_LIMIT_BURST": "1.5"},
			expectError: true,
		},
		{
			name:        "malformed SHUTDOWN_TIMEOUT",
			envVars:     map[string]string{"SHUTDOWN_TIMEOUT": "soon"},
			expectError: true,
		},
		{
			name:        "zero rate limit",
			envVars:     map[string]string{"RATE_LIMIT_RPS": "0"},
			expectError: true,
		},
		{
			name:        "negative warmup in plant file",
			plant:       "factories:\n  - brand: ford\n    warmup: -2\n",
			expectError: true,
		},
		{
			name:        "malformed plant file",
			plant:       "factories: [",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}
			if tt.plant != "" {
				t.Setenv("PLANT_FILE", writeFile(t, "plant.yaml", tt.plant))
			}

			_, err := LoadFromFile(filepath.Join(t.TempDir(), ".env"))
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigLoad_MissingPlantFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PLANT_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := LoadFromFile(filepath.Join(t.TempDir(), ".env"))
	assert.Error(t, err)
}

func TestConfigLoad_StrictDurationAndBurst(t *testing.T) {
	clearEnv(t)
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("RATE_LIMIT_BURST", "7")

	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 7, cfg.RateLimitBurst)

	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	_, err = LoadFromFile(filepath.Join(t.TempDir(), ".env"))
	assert.ErrorContains(t, err, "SHUTDOWN_TIMEOUT")
}
