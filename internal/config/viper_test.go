package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty directory with an empty HOME so that no
// real config.yaml is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	clearTestEnvVars(t)
	return dir
}

func TestInitializeConfig_Defaults(t *testing.T) {
	isolate(t)

	config, err := InitializeConfig("")
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "", config.Data.Directory)
	assert.Equal(t, "categories.yaml", config.Reference.CategoriesFile)
	assert.Equal(t, "tax_rules.yaml", config.Reference.TaxRulesFile)
	assert.False(t, config.Permissions.Strict)
	assert.Equal(t, "text", config.Report.Format)
	assert.Equal(t, ",", config.CSV.Delimiter)
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Report.Format)
	assert.NoError(t, validateConfig(config))
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	isolate(t)

	testEnvVars := map[string]string{
		"NGTAX_LOG_LEVEL":                 "debug",
		"NGTAX_LOG_FORMAT":                "json",
		"NGTAX_CSV_DELIMITER":             ";",
		"NGTAX_PERMISSIONS_STRICT":        "true",
		"NGTAX_REPORT_FORMAT":             "yaml",
		"NGTAX_REFERENCE_TAX_RULES_FILE":  "/etc/ngtax/rules.yaml",
		"NGTAX_DATA_DIRECTORY":            "/var/lib/ngtax",
		"NGTAX_REFERENCE_CATEGORIES_FILE": "cats.yaml",
	}
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig("")
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, ";", config.CSV.Delimiter)
	assert.True(t, config.Permissions.Strict)
	assert.Equal(t, "yaml", config.Report.Format)
	assert.Equal(t, "/etc/ngtax/rules.yaml", config.Reference.TaxRulesFile)
	assert.Equal(t, "/var/lib/ngtax", config.Data.Directory)
	assert.Equal(t, "cats.yaml", config.Reference.CategoriesFile)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	dir := isolate(t)

	configContent := `log:
  level: warn
  format: json
report:
  format: xml
permissions:
  strict: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(configContent), 0600))

	config, err := InitializeConfig("")
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "xml", config.Report.Format)
	assert.True(t, config.Permissions.Strict)
	assert.Equal(t, ",", config.CSV.Delimiter, "unset keys keep their defaults")
}

func TestInitializeConfig_ExplicitFile(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("report:\n  format: json\n"), 0600))

	config, err := InitializeConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "json", config.Report.Format)

	_, err = InitializeConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	dir := isolate(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("log:\n  level: warn\nreport:\n  format: xml\n"), 0600))
	t.Setenv("NGTAX_LOG_LEVEL", "error")

	config, err := InitializeConfig("")
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level, "environment overrides file")
	assert.Equal(t, "xml", config.Report.Format, "file overrides defaults")
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*Config)
		errContains string
	}{
		{
			name:        "invalid log level",
			modify:      func(c *Config) { c.Log.Level = "verbose" },
			errContains: "invalid log level",
		},
		{
			name:        "invalid log format",
			modify:      func(c *Config) { c.Log.Format = "xml" },
			errContains: "invalid log format",
		},
		{
			name:        "invalid report format",
			modify:      func(c *Config) { c.Report.Format = "csv" },
			errContains: "invalid report format",
		},
		{
			name:        "multi character delimiter",
			modify:      func(c *Config) { c.CSV.Delimiter = ";;" },
			errContains: "CSV delimiter must be a single character",
		},
		{
			name:        "empty delimiter",
			modify:      func(c *Config) { c.CSV.Delimiter = "" },
			errContains: "CSV delimiter must be a single character",
		},
		{
			name:        "empty rules file",
			modify:      func(c *Config) { c.Reference.TaxRulesFile = "" },
			errContains: "reference file names must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(config)

			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestInitializeConfig_InvalidEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("NGTAX_REPORT_FORMAT", "pdf")

	_, err := InitializeConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	tests := []struct {
		name          string
		level         string
		format        string
		expectedLevel logrus.Level
		expectJSON    bool
	}{
		{"debug text", "debug", "text", logrus.DebugLevel, false},
		{"warn json", "warn", "json", logrus.WarnLevel, true},
		{"invalid level falls back to info", "loud", "text", logrus.InfoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			config.Log.Level = tt.level
			config.Log.Format = tt.format

			logger := ConfigureLoggingFromConfig(config)
			assert.Equal(t, tt.expectedLevel, logger.GetLevel())

			_, isJSON := logger.Formatter.(*logrus.JSONFormatter)
			assert.Equal(t, tt.expectJSON, isJSON)
		})
	}
}

func TestLoadEnv(t *testing.T) {
	dir := isolate(t)

	loaded, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "", loaded)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("NGTAX_TEST_FROM_DOTENV=yes\n"), 0600))
	t.Setenv("NGTAX_TEST_FROM_DOTENV", "")
	require.NoError(t, os.Unsetenv("NGTAX_TEST_FROM_DOTENV"))

	loaded, err = LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, ".env", loaded)
	assert.Equal(t, "yes", os.Getenv("NGTAX_TEST_FROM_DOTENV"))
}

func clearTestEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"NGTAX_LOG_LEVEL",
		"NGTAX_LOG_FORMAT",
		"NGTAX_CSV_DELIMITER",
		"NGTAX_PERMISSIONS_STRICT",
		"NGTAX_REPORT_FORMAT",
		"NGTAX_DATA_DIRECTORY",
		"NGTAX_REFERENCE_CATEGORIES_FILE",
		"NGTAX_REFERENCE_TAX_RULES_FILE",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}
