package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Config holds all slidemerge configuration.
type Config struct {
	// Id of the template element that receives the horizontal slides.
	ContainerID string `yaml:"container_id"`

	// Tag used for each horizontal slide element.
	SectionTag string `yaml:"section_tag"`

	// BCP 47 tag used for collating slide names and group labels.
	Locale string `yaml:"locale"`

	// Nesting levels below the slides root that are scanned for fragments.
	MaxDepth int `yaml:"max_depth"`

	// File extension accepted as a slide fragment.
	Extension string `yaml:"extension"`

	Output  OutputConfig  `yaml:"output"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig configures how the presentation is written.
type OutputConfig struct {
	// Atomic writes to a temp file in the output directory and renames it
	// into place. Off by default: the output is overwritten directly.
	Atomic bool `yaml:"atomic"`

	// Perm is the file mode of a newly created output file.
	Perm os.FileMode `yaml:"perm"`
}

// WatchConfig configures the rebuild loop.
type WatchConfig struct {
	// ExitOnError stops watching on the first failed rebuild.
	ExitOnError bool `yaml:"exit_on_error"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ContainerID: "slides",
		SectionTag:  "section",
		Locale:      "en",
		MaxDepth:    1,
		Extension:   ".html",

		Output: OutputConfig{
			Atomic: false,
			Perm:   0644,
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load loads configuration from a YAML file.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()
	if cfg.Output.Perm == 0 {
		cfg.Output.Perm = 0644
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("SLIDEMERGE_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv("SLIDEMERGE_LOG_FORMAT"); format != "" {
		c.Logging.Format = format
	}
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ContainerID) == "" {
		return fmt.Errorf("container_id must not be empty")
	}
	if strings.TrimSpace(c.SectionTag) == "" {
		return fmt.Errorf("section_tag must not be empty")
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must be >= 0, got %d", c.MaxDepth)
	}
	if !strings.HasPrefix(c.Extension, ".") {
		return fmt.Errorf("extension must start with '.', got %q", c.Extension)
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}
	return c.Logging.Validate()
}

// Language returns the parsed collation locale, falling back to English.
func (c *Config) Language() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}
