package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "test-project")
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "test-project")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_API_KEY")
}

func TestLoadRequiresProject(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "k")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_CLOUD_PROJECT")
}

func TestLoadUsesDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "us-central1", cfg.Google.Location)
	assert.Equal(t, "gemini-1.5-pro", cfg.Model.Name)
	assert.InDelta(t, 1.0, cfg.Model.Temperature, 1e-6)
	assert.InDelta(t, 0.95, cfg.Model.TopP, 1e-6)
	assert.Equal(t, int32(40), cfg.Model.TopK)
	assert.Equal(t, int32(8192), cfg.Model.MaxOutputTokens)
	assert.Equal(t, 30*time.Second, cfg.Model.Timeout)
	assert.Equal(t, StoreMemory, cfg.Store.Backend)
	assert.Equal(t, 24*time.Hour, cfg.Store.TTL)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "info", cfg.LogLevel)

	opts := cfg.LLMOptions()
	assert.Equal(t, "test-key", opts.APIKey)
	assert.Equal(t, "test-project", opts.ProjectID)
	assert.Equal(t, 30*time.Second, opts.Timeout)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("MODEL_NAME", "gemini-1.5-flash")
	t.Setenv("MODEL_TIMEOUT", "5s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://example.org")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "gemini-1.5-flash", cfg.Model.Name)
	assert.Equal(t, 5*time.Second, cfg.Model.Timeout)
	assert.Equal(t, []string{"http://localhost:3000", "https://example.org"}, cfg.AllowedOrigins)
}

func TestLoadRedisStoreNeedsAddress(t *testing.T) {
	setRequired(t)
	t.Setenv("CONVERSATION_STORE", "redis")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REDIS_URL", "")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Store.Redis())
}

func TestLoadRejectsUnknownStore(t *testing.T) {
	setRequired(t)
	t.Setenv("CONVERSATION_STORE", "postgres")

	_, err := Load()
	assert.Error(t, err)
}

func TestNewRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	rdb, err := NewRedis(context.Background(), mr.Addr())
	require.NoError(t, err)
	_ = rdb.Close()

	rdb, err = NewRedis(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	_ = rdb.Close()

	_, err = NewRedis(context.Background(), "")
	assert.Error(t, err)
}

func TestLoadRejectsUnknownGinMode(t *testing.T) {
	setRequired(t)
	t.Setenv("GIN_MODE", "production")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GIN_MODE")
}

func TestLoadReadsLogLevelFromDotEnv(t *testing.T) {
	setRequired(t)
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_LEVEL")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\n"), 0o600))
	t.Chdir(dir)
	t.Cleanup(func() { os.Unsetenv("LOG_LEVEL") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}
