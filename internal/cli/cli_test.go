// Package cli_test provides tests for the CLI package.
package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/swatchbook/internal/cli"
	"github.com/jmylchreest/swatchbook/internal/library"
)

// testEnv isolates a CLI run from the user's configuration.
type testEnv struct {
	dir     string
	library string
	config  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("SWATCHBOOK_LIBRARY", "")
	t.Setenv("SWATCHBOOK_PREVIEW", "")
	t.Setenv("SWATCHBOOK_LOG_LEVEL", "")
	return &testEnv{
		dir:     dir,
		library: filepath.Join(dir, "library.json"),
		config:  filepath.Join(dir, "config.yaml"),
	}
}

// run executes the CLI with args and returns stdout.
func (e *testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(append([]string{"--config", e.config, "--library", e.library, "--preview", "never"}, args...))

	err := rootCmd.Execute()
	return outBuf.String(), err
}

func (e *testEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, args...)
	if err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out
}

func TestAddAndList(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "add", "hex", "Test Red", "#FF0000")
	if !strings.Contains(out, `Added "Test Red" #FF0000 (hex #FF0000)`) {
		t.Errorf("add hex output = %q", out)
	}

	out = env.mustRun(t, "add", "colour", "Label", "#1C1C1E")
	if !strings.Contains(out, "system primary") {
		t.Errorf("add colour should classify as system colour: %q", out)
	}

	env.mustRun(t, "add", "system", "Warning", "Orange")
	env.mustRun(t, "add", "mix", "Violet", "#FF0000", "#0000FF", "--fraction", "0.25", "--space", "device")
	env.mustRun(t, "add", "intensity", "Soft Accent", "accent", "--intensity", "tertiary")
	env.mustRun(t, "add", "intensity", "Faded Teal", "teal", "-i", "quinary")

	out = env.mustRun(t, "list")
	for _, want := range []string{
		"Test Red", "Label", "Warning", "system orange",
		"mix #FF0000 + #0000FF @ 0.25 (device)",
		"tertiary of accent", "quinary of #008080",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}

	lib, err := library.Load(env.library, nil, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if lib.Len() != 6 {
		t.Errorf("library has %d colours, want 6", lib.Len())
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	env := newTestEnv(t)

	tests := [][]string{
		{"add", "hex", "Bad", "FF0000"},
		{"add", "colour", "Bad", "notacolour"},
		{"add", "system", "Bad", "teal"},
		{"add", "mix", "Bad", "#FF0000", "#0000FF", "--fraction", "1.5"},
		{"add", "mix", "Bad", "#FF0000", "#0000FF", "--space", "cmyk"},
		{"add", "intensity", "Bad", "red", "--intensity", "loud"},
	}
	for _, args := range tests {
		if _, err := env.run(t, args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}

	env.mustRun(t, "add", "hex", "Dup", "#123456")
	if _, err := env.run(t, "add", "hex", "dup", "#123456"); err == nil {
		t.Error("expected duplicate error")
	}
}

func TestShowAndRemove(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "add", "system", "Warning", "orange")

	out := env.mustRun(t, "show", "warning")
	for _, want := range []string{"Name:     Warning", "#FF9500", `"encoding":"systemColor"`, `"systemColorName":"orange"`} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}

	out = env.mustRun(t, "remove", "Warning")
	if !strings.Contains(out, `Removed "Warning"`) {
		t.Errorf("remove output = %q", out)
	}
	if _, err := env.run(t, "show", "Warning"); err == nil {
		t.Error("expected error after removal")
	}
}

func TestExportImport(t *testing.T) {
	src := newTestEnv(t)
	src.mustRun(t, "add", "hex", "One", "#010203")
	src.mustRun(t, "add", "system", "Two", "green")
	src.mustRun(t, "add", "mix", "Three", "white", "black", "-f", "0.5")

	for _, name := range []string{"export.json", "export.json.xz"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(src.dir, name)
			out := src.mustRun(t, "export", path)
			if !strings.Contains(out, "Exported 3 colours") {
				t.Errorf("export output = %q", out)
			}

			dst := newTestEnv(t)
			dst.mustRun(t, "add", "hex", "One", "#010203")

			out = dst.mustRun(t, "import", path)
			if !strings.Contains(out, "Imported 2 new colours (1 duplicate skipped)") {
				t.Errorf("import output = %q", out)
			}

			out = dst.mustRun(t, "import", path)
			if !strings.Contains(out, "Imported 0 new colours (3 duplicates skipped)") {
				t.Errorf("second import output = %q", out)
			}
		})
	}
}

func TestImportInvalidDocument(t *testing.T) {
	env := newTestEnv(t)
	path := filepath.Join(env.dir, "bad.json")
	doc := `[{"data":{"name":"x","id":"1","encoding":"bogus"}}]`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := env.run(t, "import", path)
	if err == nil {
		t.Fatal("expected import error")
	}
	if !strings.Contains(err.Error(), `unsupported colour encoding "bogus"`) {
		t.Errorf("error = %v", err)
	}
}

func TestEncodeDecode(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "add", "hex", "Test Red", "#FF0000")
	env.mustRun(t, "add", "intensity", "Half Blue", "#0000FF", "-i", "tertiary")

	single := env.mustRun(t, "encode", "Test Red")
	if !strings.HasPrefix(single, `{"data":{"name":"Test Red","id":"`) ||
		!strings.Contains(single, `"encoding":"hexString","hexString":"#FF0000"}}`) {
		t.Errorf("encode output = %q", single)
	}

	all := env.mustRun(t, "encode")
	if !strings.HasPrefix(strings.TrimSpace(all), "[") || !strings.Contains(all, `"baseColorHex": "#0000FF"`) {
		t.Errorf("encode all output = %q", all)
	}

	var outBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(single))
	rootCmd.SetArgs([]string{"--config", env.config, "--library", env.library, "--preview", "never", "decode"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if !strings.Contains(outBuf.String(), "Test Red") || !strings.Contains(outBuf.String(), "hex #FF0000") {
		t.Errorf("decode output = %q", outBuf.String())
	}

	if _, err := env.run(t, "encode", "Missing"); err == nil {
		t.Error("expected error for unknown colour")
	}
}

func TestRegistryCommand(t *testing.T) {
	env := newTestEnv(t)
	out := env.mustRun(t, "registry")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 16 {
		t.Fatalf("registry output has %d lines, want 16:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[2], "clear") || !strings.HasPrefix(lines[15], "accent") {
		t.Errorf("unexpected registry order:\n%s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	env := newTestEnv(t)
	out := env.mustRun(t, "version")
	if !strings.Contains(out, "swatchbook version") {
		t.Errorf("version output = %q", out)
	}
}
