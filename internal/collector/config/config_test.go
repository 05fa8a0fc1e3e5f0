package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBindsCredentialEnvVars(t *testing.T) {
	// the file carries no credential keys at all; they must still arrive
	// from the environment
	path := writeConfigFile(t, `
app:
  name: "test-collector"
naver:
  max_request_per_minute: 60
ai:
  provider: "openai"
`)

	t.Setenv("NAVER_CLIENT_ID", "env-client-id")
	t.Setenv("NAVER_CLIENT_SECRET", "env-client-secret")
	t.Setenv("OPENAI_API_KEY", "env-openai-key")
	t.Setenv("GEMINI_API_KEY", "env-gemini-key")
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-bot-token")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-client-id", cfg.Naver.ClientID)
	assert.Equal(t, "env-client-secret", cfg.Naver.ClientSecret)
	assert.Equal(t, "env-openai-key", cfg.OpenAI.APIKey)
	assert.Equal(t, "env-gemini-key", cfg.Gemini.APIKey)
	assert.Equal(t, "env-bot-token", cfg.Telegram.BotToken)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
app:
  name: "test-collector"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Collector.NewsPerEntity)
	assert.Equal(t, 0.6, cfg.Collector.MinRelevanceScore)
	assert.Equal(t, "data/apartment_news.json", cfg.Collector.ApartmentOutputPath)
	assert.Equal(t, "data/news_headlines.json", cfg.Collector.RegionOutputPath)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, "https://openapi.naver.com/v1/search/news.json", cfg.Naver.BaseURL)
}
