package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSiteConfig_YAMLAndDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "title: My Blog\nauthor: Ana\nbaseurl: https://ana.dev\nsanitize: true\n")

	cfg, err := LoadSiteConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "My Blog", cfg.Title)
	assert.Equal(t, "Ana", cfg.Author)
	assert.Equal(t, "https://ana.dev", cfg.BaseURL)
	assert.True(t, cfg.Sanitize)
	assert.False(t, cfg.Editorial)
	assert.Equal(t, DefaultContentDir, cfg.ContentDir)
	assert.Equal(t, DefaultRenderer, cfg.Renderer)
	assert.Equal(t, DefaultLocale, cfg.Locale)
	assert.Equal(t, DefaultArticlesRoute, cfg.ArticlesRoute)
	assert.Equal(t, dir, cfg.Root)
	assert.Equal(t, filepath.Join(dir, DefaultOutputDir), cfg.Path(cfg.OutputDir))
}

func TestLoadSiteConfig_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "title: From YAML\nrenderer: builtin\n")

	t.Setenv("FOLIO_TITLE", "From Env")
	t.Setenv("FOLIO_RENDERER", "goldmark")
	t.Setenv("FOLIO_EDITORIAL", "true")

	cfg, err := LoadSiteConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "From Env", cfg.Title)
	assert.Equal(t, "goldmark", cfg.Renderer)
	assert.True(t, cfg.Editorial)
}

func TestLoadSiteConfig_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "title: x\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FOLIO_OUTPUT_DIR=dist\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("FOLIO_OUTPUT_DIR") })

	cfg, err := LoadSiteConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "dist", cfg.OutputDir)
}

func TestLoadSiteConfig_Missing(t *testing.T) {
	_, err := LoadSiteConfig(filepath.Join(t.TempDir(), "site.yaml"))
	assert.ErrorIs(t, err, ErrNoConfig)
}

func TestLoadSiteConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "title: [unclosed\n")
	_, err := LoadSiteConfig(path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoConfig)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, DefaultTemplate, cfg.Template)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "/abs/out", cfg.Path("/abs/out"))
}
