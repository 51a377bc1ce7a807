package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ContainerID != "slides" {
		t.Errorf("expected ContainerID=slides, got %s", cfg.ContainerID)
	}
	if cfg.SectionTag != "section" {
		t.Errorf("expected SectionTag=section, got %s", cfg.SectionTag)
	}
	if cfg.MaxDepth != 1 {
		t.Errorf("expected MaxDepth=1, got %d", cfg.MaxDepth)
	}
	if cfg.Output.Atomic {
		t.Error("expected direct overwrite by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_EmptyPathAndMissingFile(t *testing.T) {
	t.Setenv("SLIDEMERGE_LOG_LEVEL", "")
	t.Setenv("SLIDEMERGE_LOG_FORMAT", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("SLIDEMERGE_LOG_LEVEL", "")
	t.Setenv("SLIDEMERGE_LOG_FORMAT", "")

	path := filepath.Join(t.TempDir(), "slidemerge.yaml")

	cfg := DefaultConfig()
	cfg.ContainerID = "deck"
	cfg.Locale = "de"
	cfg.Output.Atomic = true
	cfg.Watch.ExitOnError = true
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "deck", loaded.ContainerID)
	assert.Equal(t, "de", loaded.Locale)
	assert.True(t, loaded.Output.Atomic)
	assert.True(t, loaded.Watch.ExitOnError)
	assert.Equal(t, "de", loaded.Language().String())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv("SLIDEMERGE_LOG_LEVEL", "")
	t.Setenv("SLIDEMERGE_LOG_FORMAT", "")

	path := filepath.Join(t.TempDir(), "slidemerge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("section_tag: div\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "div", cfg.SectionTag)
	assert.Equal(t, "slides", cfg.ContainerID)
	assert.Equal(t, os.FileMode(0644), cfg.Output.Perm)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slidemerge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("container_id: [unclosed\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SLIDEMERGE_LOG_LEVEL", "debug")
	t.Setenv("SLIDEMERGE_LOG_FORMAT", "console")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty container", func(c *Config) { c.ContainerID = " " }},
		{"empty section tag", func(c *Config) { c.SectionTag = "" }},
		{"negative depth", func(c *Config) { c.MaxDepth = -1 }},
		{"extension without dot", func(c *Config) { c.Extension = "html" }},
		{"bad locale", func(c *Config) { c.Locale = "not a locale!" }},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
