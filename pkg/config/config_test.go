package config_test

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BOKA26/lovotech-nexus/pkg/config"
)

func TestLoad_SecretsComeFromEnvironment(t *testing.T) {
	viper.Reset()
	t.Setenv("SERVER_JWT_SECRET", "env-jwt-secret")
	t.Setenv("DATABASE_PASSWORD", "env-db-password")
	t.Setenv("CHAT_API_KEY", "env-chat-key")
	t.Setenv("GITHUB_TOKEN", "env-github-token")

	require.NoError(t, config.Load(t.TempDir()))

	cfg := config.GetConfig()
	assert.Equal(t, "env-jwt-secret", cfg.Server.JWTSecret)
	assert.Equal(t, "env-db-password", cfg.Database.Password)
	assert.Equal(t, "env-chat-key", cfg.Chat.APIKey)
	assert.Equal(t, "env-github-token", cfg.GitHub.Token)
}

func TestLoad_DefaultsApplyWithoutConfigFile(t *testing.T) {
	viper.Reset()

	require.NoError(t, config.Load(t.TempDir()))

	cfg := config.GetConfig()
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 9090, cfg.Server.MetricsPort)
	assert.Equal(t, "google/gemini-2.5-flash", cfg.Chat.Model)
	assert.Equal(t, 10, cfg.Chat.RateLimit)
	assert.Equal(t, 60000, cfg.Chat.RateWindowMs)
	assert.Equal(t, "lovotech-nexus", cfg.Projects.ExcludeName)
}
