package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
	assert.Equal(t, DefaultTimeout, cfg.Timeout.Std())
	assert.Equal(t, "en", cfg.GeoLanguage)
	assert.False(t, cfg.GeoUseArticleLanguage)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultWikipediaEndpoint, cfg.Endpoints.Wikipedia)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wikilookup.yaml")
	content := `
user_agent: TestAgent/2.0
timeout: 5s
log_level: debug
geo_language: de
geo_use_article_language: true
endpoints:
  wikipedia: http://localhost:8080/{lang}/api.php
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "TestAgent/2.0", cfg.UserAgent)
	assert.Equal(t, 5*time.Second, cfg.Timeout.Std())
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, "de", cfg.GeoLanguage)
	assert.True(t, cfg.GeoUseArticleLanguage)
	assert.Equal(t, "http://localhost:8080/{lang}/api.php", cfg.Endpoints.Wikipedia)
	// untouched keys keep their defaults
	assert.Equal(t, DefaultWikidataEndpoint, cfg.Endpoints.Wikidata)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wikilookup.yaml")
	require.NoError(t, os.WriteFile(path, []byte("user_agent: FromFile/1.0\n"), 0o600))

	t.Setenv("WIKILOOKUP_USER_AGENT", "FromEnv/1.0")
	t.Setenv("WIKILOOKUP_TIMEOUT", "2s")
	t.Setenv("WIKILOOKUP_GEO_USE_ARTICLE_LANGUAGE", "true")
	t.Setenv("WIKILOOKUP_SUGGEST_ENDPOINT", "http://localhost/suggest")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "FromEnv/1.0", cfg.UserAgent)
	assert.Equal(t, 2*time.Second, cfg.Timeout.Std())
	assert.True(t, cfg.GeoUseArticleLanguage)
	assert.Equal(t, "http://localhost/suggest", cfg.Endpoints.Suggest)
}

func TestLoad_NoFile(t *testing.T) {
	t.Setenv("WIKILOOKUP_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultWikipediaEndpoint, cfg.Endpoints.Wikipedia)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("timeout: soon\n"), 0o600))
	_, err = Load(bad)
	assert.Error(t, err)

	noLang := filepath.Join(dir, "nolang.yaml")
	require.NoError(t, os.WriteFile(noLang, []byte("endpoints:\n  wikipedia: https://en.wikipedia.org/w/api.php\n"), 0o600))
	_, err = Load(noLang)
	assert.ErrorContains(t, err, LangPlaceholder)
}

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		cfg := &Config{LogLevel: in}
		assert.Equal(t, want, cfg.SlogLevel(), in)
	}
}
