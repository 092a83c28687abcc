package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// FileName is the per-project configuration file looked up by LoadFromDir.
const FileName = ".rsend.yaml"

// Config holds all configuration for rsend.
type Config struct {
	Files    FilesConfig    `yaml:"files"`
	Watch    WatchConfig    `yaml:"watch"`
	Send     SendConfig     `yaml:"send"`
	Resolver ResolverConfig `yaml:"resolver"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// FilesConfig selects the source files picked up from disk.
type FilesConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// WatchConfig controls polling of files that are not open in the editor.
type WatchConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
}

// SendConfig shapes the text extracted for a statement.
type SendConfig struct {
	DropCommentLines bool `yaml:"drop_comment_lines"`
}

type ResolverConfig struct {
	ScanLimitFactor int `yaml:"scan_limit_factor"`
}

type LoggingConfig struct {
	Verbosity int    `yaml:"verbosity"`
	Path      string `yaml:"path"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Files: FilesConfig{
			Includes: []string{"**/*.R", "**/*.r", "**/*.Rprofile"},
			Excludes: []string{"**/.git/**", "**/renv/**", "**/packrat/**"},
		},
		Watch: WatchConfig{
			Enabled:  true,
			Interval: 1 * time.Second,
		},
		Send: SendConfig{
			DropCommentLines: true,
		},
		Resolver: ResolverConfig{
			ScanLimitFactor: 4,
		},
	}
}

// Load reads configuration from a YAML file. Missing files yield the defaults;
// keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromDir loads dir/.rsend.yaml, falling back to the defaults.
func LoadFromDir(dir string) (*Config, error) {
	return Load(filepath.Join(dir, FileName))
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Watch.Interval <= 0 {
		return fmt.Errorf("watch.interval must be positive, got %s", c.Watch.Interval)
	}
	if c.Resolver.ScanLimitFactor <= 0 {
		return fmt.Errorf("resolver.scan_limit_factor must be positive, got %d", c.Resolver.ScanLimitFactor)
	}
	for _, pattern := range append(append([]string{}, c.Files.Includes...), c.Files.Excludes...) {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid file pattern %q", pattern)
		}
	}
	return nil
}
