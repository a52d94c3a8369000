package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Not parallel: these tests mutate the process environment.

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvResultsDir, "")
	t.Setenv(EnvExpectFile, "")
	t.Setenv(EnvNoColor, "")
	t.Setenv(EnvVerbose, "")
	t.Setenv(EnvFailedDir, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, &Config{ResultsDir: DefaultResultsDir}, cfg)
}

func TestLoad_DotEnv(t *testing.T) {
	t.Setenv(EnvResultsDir, "")
	t.Setenv(EnvExpectFile, "")
	t.Setenv(EnvNoColor, "")
	t.Setenv(EnvVerbose, "")
	t.Setenv(EnvFailedDir, "")

	envFile := filepath.Join(t.TempDir(), "test.env")
	content := "ALLURE_RESULTS_DIR=build/allure\nALLURE_EXPECT_FILE=expect.yaml\nALLURE_NO_COLOR=true\nALLURE_FAILED_DIR=build/failed\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o644))

	// godotenv does not override variables that are already set, so clear
	// the ones t.Setenv registered for restoration.
	for _, key := range []string{EnvResultsDir, EnvExpectFile, EnvNoColor, EnvFailedDir} {
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(
		t, &Config{ResultsDir: "build/allure", ExpectFile: "expect.yaml", NoColor: true, FailedDir: "build/failed"}, cfg,
	)
}

func TestLoad_InvalidBool(t *testing.T) {
	t.Setenv(EnvVerbose, "loud")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvVerbose)
}
