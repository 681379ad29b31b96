package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, s := range settings {
		t.Setenv(s.env, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.OpenAI.APIKey)
	assert.Equal(t, "https://api.openai.com/v1", cfg.OpenAI.BaseURL)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAI.Model)
	assert.Equal(t, 500, cfg.OpenAI.MaxTokens)
	assert.InDelta(t, 0.7, cfg.OpenAI.Temperature, 1e-9)
	assert.Equal(t, "mistralai/Mistral-7B-Instruct-v0.2", cfg.HuggingFace.Model)
	assert.InDelta(t, 0.95, cfg.HuggingFace.TopP, 1e-9)
	assert.Equal(t, 60*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("OPENAI_MAX_TOKENS", "256")
	t.Setenv("HUGGINGFACE_API_TOKEN", "hf-test")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, 256, cfg.OpenAI.MaxTokens)
	assert.Equal(t, "hf-test", cfg.HuggingFace.Token)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "financeguru.yaml")
	content := "openai:\n  model: gpt-4o\nserver:\n  port: \"7070\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.Equal(t, "7070", cfg.Server.Port)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "financeguru.yaml")
	require.NoError(t, os.WriteFile(path, []byte("openai:\n  model: gpt-4o\n"), 0o644))
	t.Setenv("OPENAI_MODEL", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.OpenAI.Model)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoad_Validation(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		env   string
		value string
	}{
		{"OPENAI_MAX_TOKENS", "0"},
		{"OPENAI_TEMPERATURE", "3"},
		{"OPENAI_TEMPERATURE", "warm"},
		{"OPENAI_MAX_TOKENS", "lots"},
		{"HTTP_TIMEOUT", "sixty"},
		{"HUGGINGFACE_MAX_NEW_TOKENS", "-1"},
		{"HUGGINGFACE_TEMPERATURE", "-0.5"},
		{"HUGGINGFACE_TOP_P", "1.5"},
		{"HTTP_TIMEOUT", "-1s"},
		{"LOG_FORMAT", "xml"},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)
			_, err := Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.env)
		})
	}
}
