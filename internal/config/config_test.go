package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "./content", cfg.Site.ContentDir)
	assert.Equal(t, "Europe/Paris", cfg.Site.Timezone)
	assert.Equal(t, "fr", cfg.Site.Locale)
	assert.Equal(t, "mistral", cfg.Chat.Provider)
	assert.Equal(t, "ag_019bc0529c8c70749ee22136fe48d793", cfg.Chat.AgentID)
	assert.Equal(t, 20, cfg.Chat.RateLimit.PerMinute)
	assert.Equal(t, 50, cfg.Chat.MaxTurns)
	assert.Empty(t, cfg.Chat.GeminiBaseURL)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("SITE_CONTENT_DIR", "/srv/site/content")
	t.Setenv("CHAT_PROVIDER", "gemini")
	t.Setenv("CHAT_RATE_LIMIT_BURST", "2")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "/srv/site/content", cfg.Site.ContentDir)
	assert.Equal(t, "gemini", cfg.Chat.Provider)
	assert.Equal(t, 2, cfg.Chat.RateLimit.Burst)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoadConfig_InvalidValue(t *testing.T) {
	t.Setenv("SERVER_READ_TIMEOUT", "ten")

	_, err := LoadConfig()
	assert.Error(t, err)
}
