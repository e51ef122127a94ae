package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobsearch/internal/credentials"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"company": "Acme",
		"mode": "deep",
		"timeout": 120,
		"jsearch_api_key": "rapid-key",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "Acme", cfg.Company)
	assert.Equal(t, "deep", cfg.Mode)
	assert.Equal(t, 120, cfg.Timeout)
	assert.Equal(t, "rapid-key", cfg.JSearchAPIKey)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty config", Config{}, ""},
		{"valid mode", Config{Mode: "quick"}, ""},
		{"bad mode", Config{Mode: "thorough"}, "'mode' must be"},
		{"negative timeout", Config{Timeout: -1}, "'timeout'"},
		{"bad port", Config{Port: 70000}, "'port'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Company: "Othercorp",
		Mode:    "quick",
		Timeout: 60,
		Port:    8080,
	}

	partial := Config{Company: "Acme"}
	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "Acme", merged.Company)

	// Default values should fill in empty fields
	assert.Equal(t, "quick", merged.Mode)
	assert.Equal(t, 60, merged.Timeout)
	assert.Equal(t, 8080, merged.Port)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{Company: "Acme", Mode: "deep"}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "Acme", merged.Company)
	assert.Equal(t, "deep", merged.Mode)
}

func TestMergeWithDefaults_ModeFallsBackToAuto(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})
	assert.Equal(t, "auto", merged.Mode)
}

func TestCredentialsLayering(t *testing.T) {
	t.Setenv("JSEARCH_API_KEY", "from-env")
	t.Setenv("SERPAPI_API_KEY", "env-serp")

	cfg := Config{JSearchAPIKey: "from-config"}
	store := cfg.Credentials()

	assert.Equal(t, "from-config", store.Get(credentials.KeyJSearch), "config overrides env")
	assert.Equal(t, "env-serp", store.Get(credentials.KeySerpAPI), "env fills the gaps")
}
