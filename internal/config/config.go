// Package config loads Swatchbook configuration from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/swatchbook/pkg/colour"
)

// Environment variables that override file configuration.
const (
	EnvLibrary  = "SWATCHBOOK_LIBRARY"
	EnvLogLevel = "SWATCHBOOK_LOG_LEVEL"
	EnvPreview  = "SWATCHBOOK_PREVIEW"
	EnvConfig   = "SWATCHBOOK_CONFIG"
)

// PreviewMode controls when colour previews are rendered.
type PreviewMode string

const (
	PreviewAuto   PreviewMode = "auto"
	PreviewAlways PreviewMode = "always"
	PreviewNever  PreviewMode = "never"
)

// Config holds Swatchbook settings.
type Config struct {
	// Library is the path of the colour library document.
	Library string `yaml:"library"`

	// LogLevel is an hclog level name.
	LogLevel string `yaml:"log_level"`

	// Preview controls terminal colour previews.
	Preview PreviewMode `yaml:"preview"`

	// DefaultSpace is the mixing space used when none is given.
	DefaultSpace string `yaml:"default_space"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Library:      filepath.Join(dataDir(), "swatchbook", "library.json"),
		LogLevel:     "warn",
		Preview:      PreviewAuto,
		DefaultSpace: colour.SpacePerceptual.String(),
	}
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	if c.Library == "" {
		return fmt.Errorf("library path must not be empty")
	}
	switch c.Preview {
	case PreviewAuto, PreviewAlways, PreviewNever:
	default:
		return fmt.Errorf("invalid preview mode: %s (valid: auto, always, never)", c.Preview)
	}
	if _, ok := colour.ParseSpace(c.DefaultSpace); !ok {
		return fmt.Errorf("invalid default_space: %s (valid: device, perceptual)", c.DefaultSpace)
	}
	return nil
}

// Space returns DefaultSpace parsed as a colour.Space.
func (c Config) Space() colour.Space {
	s, _ := colour.ParseSpace(c.DefaultSpace)
	return s
}

// Builder provides a fluent interface for assembling a Config.
// Sources apply in order: defaults, file, environment, explicit overrides.
type Builder struct {
	config   Config
	filePath string
	useFile  bool
	useEnv   bool
	override func(*Config)
}

// NewBuilder creates a builder seeded with Default().
func NewBuilder() *Builder {
	return &Builder{config: Default()}
}

// WithFile loads configuration from path. An empty path selects DefaultPath().
// A missing file is not an error.
func (b *Builder) WithFile(path string) *Builder {
	b.useFile = true
	b.filePath = path
	return b
}

// WithEnvConfig applies SWATCHBOOK_* environment overrides.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithOverride applies fn last, typically from command-line flags.
func (b *Builder) WithOverride(fn func(*Config)) *Builder {
	b.override = fn
	return b
}

// Build assembles and validates the configuration.
func (b *Builder) Build() (Config, error) {
	cfg := b.config

	if b.useFile {
		path := b.filePath
		if path == "" && b.useEnv {
			path = os.Getenv(EnvConfig)
		}
		if path == "" {
			path = DefaultPath()
		}
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if b.useEnv {
		applyEnv(&cfg)
	}

	if b.override != nil {
		b.override(&cfg)
	}

	cfg.Library = expandHome(cfg.Library)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// DefaultPath returns the default configuration file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "swatchbook", "config.yaml")
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path) // #nosec G304 - config path chosen by the user
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvLibrary); v != "" {
		cfg.Library = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvPreview); v != "" {
		cfg.Preview = PreviewMode(strings.ToLower(v))
	}
}

// dataDir follows XDG_DATA_HOME, falling back to ~/.local/share.
func dataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
