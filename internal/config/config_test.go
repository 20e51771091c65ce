package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadConfig(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "9090"
  mode: debug
jwt:
  secret: test-secret
  expire_hours: 3
storage:
  type: minio
quiz:
  question_limit: 24
  session_store: redis
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3*time.Hour, cfg.JWT.ExpireTime)
	assert.Equal(t, 24, cfg.Quiz.QuestionLimit)
	assert.Equal(t, SessionStoreRedis, cfg.Quiz.SessionStore)
	assert.Equal(t, "en", cfg.Quiz.DefaultLocale)
	assert.Equal(t, 2*time.Hour, cfg.Quiz.SessionTTL())
	assert.Equal(t, "logs/app.log", cfg.Log.Filename)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := writeConfig(t, "jwt:\n  secret: from-file\n")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("SESSION_STORE", "memory")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, SessionStoreMemory, cfg.Quiz.SessionStore)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Server: ServerConfig{Mode: "debug"},
			JWT:    JWTConfig{Secret: "s"},
			Quiz:   QuizConfig{SessionStore: SessionStoreMemory, QuestionLimit: 10, SessionTTLMinutes: 5},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"ok", func(*Config) {}, false},
		{"short secret in release", func(c *Config) { c.Server.Mode = "release" }, true},
		{"unknown mode", func(c *Config) { c.Server.Mode = "prod" }, true},
		{"missing secret", func(c *Config) { c.JWT.Secret = "" }, true},
		{"unknown store", func(c *Config) { c.Quiz.SessionStore = "disk" }, true},
		{"negative limit", func(c *Config) { c.Quiz.QuestionLimit = -1 }, true},
		{"zero ttl", func(c *Config) { c.Quiz.SessionTTLMinutes = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
