package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmylchreest/swatchbook/pkg/colour"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
	if cfg.Space() != colour.SpacePerceptual {
		t.Errorf("Space() = %v, want perceptual", cfg.Space())
	}
}

func TestBuilderMissingFile(t *testing.T) {
	cfg, err := NewBuilder().WithFile(filepath.Join(t.TempDir(), "nope.yaml")).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if cfg.Preview != PreviewAuto {
		t.Errorf("Preview = %q, want auto", cfg.Preview)
	}
}

func TestBuilderFileEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "library: " + filepath.Join(dir, "file.json") + "\nlog_level: info\npreview: never\ndefault_space: device\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Run("file", func(t *testing.T) {
		cfg, err := NewBuilder().WithFile(path).Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if cfg.Library != filepath.Join(dir, "file.json") || cfg.LogLevel != "info" || cfg.Preview != PreviewNever {
			t.Errorf("cfg = %+v", cfg)
		}
		if cfg.Space() != colour.SpaceDevice {
			t.Errorf("Space() = %v, want device", cfg.Space())
		}
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv(EnvLibrary, filepath.Join(dir, "env.json"))
		t.Setenv(EnvPreview, "ALWAYS")

		cfg, err := NewBuilder().WithFile(path).WithEnvConfig().Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if cfg.Library != filepath.Join(dir, "env.json") {
			t.Errorf("Library = %q", cfg.Library)
		}
		if cfg.Preview != PreviewAlways {
			t.Errorf("Preview = %q", cfg.Preview)
		}
	})

	t.Run("override wins", func(t *testing.T) {
		t.Setenv(EnvLibrary, filepath.Join(dir, "env.json"))

		cfg, err := NewBuilder().WithFile(path).WithEnvConfig().WithOverride(func(c *Config) {
			c.Library = filepath.Join(dir, "flag.json")
		}).Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if cfg.Library != filepath.Join(dir, "flag.json") {
			t.Errorf("Library = %q", cfg.Library)
		}
	})
}

func TestBuilderInvalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("preview: sometimes\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewBuilder().WithFile(bad).Build(); err == nil {
		t.Error("expected error for invalid preview mode")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("library: [unterminated\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewBuilder().WithFile(broken).Build(); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandHome("~/colours.json"); got != filepath.Join(home, "colours.json") {
		t.Errorf("expandHome() = %q", got)
	}
	if got := expandHome("/abs/colours.json"); got != "/abs/colours.json" {
		t.Errorf("expandHome() = %q", got)
	}
}
