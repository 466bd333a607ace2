package config

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/raiffeisen-csv/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches to dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(originalDir))
	})
}

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	config, err := InitializeConfig("")
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "utf-8-sig", config.Plugin.Charset)
	assert.Equal(t, "default", config.Plugin.Account)
	assert.Equal(t, "Raiffeisen", config.Plugin.Bank)
	assert.Equal(t, "sha256", config.Plugin.IDScheme)
	assert.Empty(t, config.Plugin.LayoutFile)
	assert.Equal(t, Default(), config)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	testEnvVars := map[string]string{
		"RAIFFEISEN_LOG_LEVEL":        "debug",
		"RAIFFEISEN_LOG_FORMAT":       "json",
		"RAIFFEISEN_PLUGIN_CHARSET":   "cp1252",
		"RAIFFEISEN_PLUGIN_ACCOUNT":   "AT611904300234573201",
		"RAIFFEISEN_PLUGIN_ID_SCHEME": "uuid",
	}
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig("")
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "cp1252", config.Plugin.Charset)
	assert.Equal(t, "AT611904300234573201", config.Plugin.Account)
	assert.Equal(t, "Raiffeisen", config.Plugin.Bank)
	assert.Equal(t, "uuid", config.Plugin.IDScheme)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)
	tempDir := t.TempDir()

	configContent := `
log:
  level: "warn"
  format: "json"
plugin:
  charset: "windows-1252"
  bank: "RLB NOE-Wien"
  layout_file: "layouts/elba.yaml"
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0600))
	chdir(t, tempDir)

	config, err := InitializeConfig("")
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "windows-1252", config.Plugin.Charset)
	assert.Equal(t, "RLB NOE-Wien", config.Plugin.Bank)
	assert.Equal(t, "default", config.Plugin.Account)
	assert.Equal(t, "layouts/elba.yaml", config.Plugin.LayoutFile)
}

func TestInitializeConfig_ExplicitFile(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("plugin:\n  account: savings\n"), 0600))

	config, err := InitializeConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "savings", config.Plugin.Account)

	_, err = InitializeConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "error reading config file")
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	clearTestEnvVars(t)
	tempDir := t.TempDir()

	configContent := `
log:
  level: "warn"
plugin:
  charset: "cp1252"
  account: "from-file"
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0600))
	t.Setenv("RAIFFEISEN_LOG_LEVEL", "error")
	t.Setenv("RAIFFEISEN_PLUGIN_ACCOUNT", "from-env")
	chdir(t, tempDir)

	config, err := InitializeConfig("")
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level)
	assert.Equal(t, "cp1252", config.Plugin.Charset)
	assert.Equal(t, "from-env", config.Plugin.Account)
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{
			name:         "invalid log level",
			modifyConfig: func(c *Config) { c.Log.Level = "invalid" },
			expectError:  "invalid log level",
		},
		{
			name:         "invalid log format",
			modifyConfig: func(c *Config) { c.Log.Format = "xml" },
			expectError:  "invalid log format",
		},
		{
			name:         "empty charset",
			modifyConfig: func(c *Config) { c.Plugin.Charset = " " },
			expectError:  "plugin.charset cannot be empty",
		},
		{
			name:         "unknown id scheme",
			modifyConfig: func(c *Config) { c.Plugin.IDScheme = "md5" },
			expectError:  "invalid plugin.id_scheme",
		},
		{
			name:         "empty account",
			modifyConfig: func(c *Config) { c.Plugin.Account = "" },
			expectError:  "plugin.account cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Default()
			require.NoError(t, validateConfig(config))

			tt.modifyConfig(config)
			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestLoadEnv(t *testing.T) {
	clearTestEnvVars(t)
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, ".env"), []byte("RAIFFEISEN_PLUGIN_BANK=Raiba Test\n"), 0600))
	chdir(t, tempDir)

	logger := logging.NewMockLogger()
	assert.Equal(t, ".env", LoadEnv(logger))
	assert.Equal(t, "Raiba Test", os.Getenv("RAIFFEISEN_PLUGIN_BANK"))
	assert.True(t, logger.HasEntry("DEBUG", "Loaded environment variables"))
}

func TestLoadEnv_NoFile(t *testing.T) {
	chdir(t, t.TempDir())
	assert.Equal(t, "", LoadEnv(nil))
}

// clearTestEnvVars unsets every variable the config reads; t.Setenv restores
// the previous values after the test.
func clearTestEnvVars(t *testing.T) {
	t.Helper()
	envVars := []string{
		"RAIFFEISEN_LOG_LEVEL",
		"RAIFFEISEN_LOG_FORMAT",
		"RAIFFEISEN_PLUGIN_CHARSET",
		"RAIFFEISEN_PLUGIN_ACCOUNT",
		"RAIFFEISEN_PLUGIN_BANK",
		"RAIFFEISEN_PLUGIN_ID_SCHEME",
		"RAIFFEISEN_PLUGIN_LAYOUT_FILE",
	}
	for _, envVar := range envVars {
		t.Setenv(envVar, "")
		require.NoError(t, os.Unsetenv(envVar))
	}
}
