package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kbchat/internal/config"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("VECTOR_STORE_ID", "vs_test")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "kbchat", cfg.ServiceName)
	assert.Equal(t, "127.0.0.1:8002", cfg.Addr())
	assert.Equal(t, "gpt-4.1-mini", cfg.AssistantModel)
	assert.InDelta(t, 0.3, cfg.AssistantTemperature, 0.001)
	assert.Equal(t, 5, cfg.MaxSearchResults)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "documents.yaml", cfg.DocumentManifest)
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("VECTOR_STORE_ID", "vs_test")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "temperature above range", key: "ASSISTANT_TEMPERATURE", value: "1.5"},
		{name: "temperature below range", key: "ASSISTANT_TEMPERATURE", value: "-0.1"},
		{name: "zero search results", key: "MAX_SEARCH_RESULTS", value: "0"},
		{name: "negative search results", key: "MAX_SEARCH_RESULTS", value: "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadParsesCORSOrigins(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CORS_ORIGINS", "https://app.example.com,https://admin.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
}

func TestInstructionsRendering(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ASSISTANT_NAME", "Acme Support Bot")

	cfg, err := config.Load()
	require.NoError(t, err)

	rendered := cfg.Instructions()
	assert.Contains(t, rendered, "Acme Support Bot")
	assert.False(t, strings.Contains(rendered, "{assistant_name}"), "substitution point must be filled")
}

func TestInstructionsCustomTemplate(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ASSISTANT_INSTRUCTIONS", "Answer as {assistant_name}, briefly.")
	t.Setenv("ASSISTANT_NAME", "Helper")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "Answer as Helper, briefly.", cfg.Instructions())
}
