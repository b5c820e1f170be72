package library

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmylchreest/swatchbook/pkg/colour"
	"github.com/jmylchreest/swatchbook/pkg/swatch"
)

func newTestLibrary(t *testing.T) *Library {
	t.Helper()
	lib := New(nil, nil)
	for _, n := range []swatch.NamedColor{
		swatch.FromHex("Brand Red", "#E63946"),
		swatch.FromSystemColor("Accent", swatch.SystemAccent),
		swatch.FromMix("Dusk", colour.RGBA(1, 0.5, 0, 1), colour.RGBA(0.2, 0, 0.6, 1), 0.4, colour.SpacePerceptual),
	} {
		if err := lib.Add(n); err != nil {
			t.Fatalf("Add(%s) error = %v", n.Name(), err)
		}
	}
	return lib
}

func TestAddRejectsDuplicates(t *testing.T) {
	lib := newTestLibrary(t)

	tests := []struct {
		name   string
		colour swatch.NamedColor
		dup    bool
	}{
		{name: "same name and colour", colour: swatch.FromHex("brand red", "#E63946"), dup: true},
		{name: "same name and colour via value", colour: swatch.FromColor("BRAND RED", colour.RGBA8(0xE6, 0x39, 0x46, 1)), dup: true},
		{name: "same name different colour", colour: swatch.FromHex("Brand Red", "#E63947"), dup: false},
		{name: "same colour different name", colour: swatch.FromHex("Alarm", "#E63946"), dup: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lib.IsDuplicate(tt.colour); got != tt.dup {
				t.Errorf("IsDuplicate() = %v, want %v", got, tt.dup)
			}
		})
	}

	err := lib.Add(swatch.FromHex("Brand Red", "#E63946"))
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("Add() error = %v, want ErrDuplicate", err)
	}
	if lib.Len() != 3 {
		t.Errorf("Len() = %d, want 3", lib.Len())
	}
}

func TestFindAndRemove(t *testing.T) {
	lib := newTestLibrary(t)

	accent, ok := lib.Find("accent")
	if !ok {
		t.Fatal("Find(accent) failed")
	}
	byID, ok := lib.Find(accent.ID())
	if !ok || byID.Name() != "Accent" {
		t.Errorf("Find(id) = %v, %v", byID.Name(), ok)
	}

	removed, err := lib.Remove(accent.ID())
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if removed.Name() != "Accent" {
		t.Errorf("removed %q", removed.Name())
	}
	if lib.Len() != 2 {
		t.Errorf("Len() = %d, want 2", lib.Len())
	}

	if _, err := lib.Remove("accent"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove() error = %v, want ErrNotFound", err)
	}
}

func TestAllIterator(t *testing.T) {
	lib := newTestLibrary(t)

	var names []string
	for _, c := range lib.All() {
		names = append(names, c.Name())
	}
	want := []string{"Brand Red", "Accent", "Dusk"}
	if len(names) != len(want) {
		t.Fatalf("names = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	count := 0
	for range lib.All() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("early break yielded %d", count)
	}
}

func TestExportImport(t *testing.T) {
	src := newTestLibrary(t)
	data, err := src.Export()
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	dst := New(nil, nil)
	if err := dst.Add(swatch.FromHex("Brand Red", "#E63946")); err != nil {
		t.Fatal(err)
	}

	result, err := dst.Import(data)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if result.Added != 2 || result.Duplicates != 1 {
		t.Errorf("Import() = %+v, want 2 added, 1 duplicate", result)
	}

	again, err := dst.Import(data)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if again.Added != 0 || again.Duplicates != 3 {
		t.Errorf("second Import() = %+v, want all duplicates", again)
	}

	dusk, ok := dst.Find("dusk")
	if !ok {
		t.Fatal("Dusk not imported")
	}
	if dusk.Method().Kind() != swatch.KindMixedColors {
		t.Errorf("Dusk method = %s, want mix", dusk.Method().Kind())
	}
}

func TestImportDuplicatesWithinDocument(t *testing.T) {
	data := []byte(`[
		{"data":{"name":"Sky","id":"1","encoding":"hexString","hexString":"#87CEEB"}},
		{"data":{"name":"sky","id":"2","encoding":"hexString","hexString":"#87ceeb"}}
	]`)

	lib := New(nil, nil)
	result, err := lib.Import(data)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if result.Added != 1 || result.Duplicates != 1 {
		t.Errorf("Import() = %+v", result)
	}
}

func TestImportStructuralErrorLeavesLibraryUnchanged(t *testing.T) {
	lib := newTestLibrary(t)
	data := []byte(`[
		{"data":{"name":"New","id":"n1","encoding":"hexString","hexString":"#123456"}},
		{"data":{"name":"Broken","id":"n2","encoding":"hexString"}}
	]`)

	if _, err := lib.Import(data); !errors.Is(err, swatch.ErrMalformedRecord) {
		t.Fatalf("Import() error = %v, want ErrMalformedRecord", err)
	}
	if lib.Len() != 3 {
		t.Errorf("Len() = %d, want 3", lib.Len())
	}
}

func TestSaveLoad(t *testing.T) {
	for _, name := range []string{"library.json", "library.json.xz", "library.json.gz"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			src := newTestLibrary(t)

			if err := src.Save(path); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("Stat() error = %v", err)
			}
			if perm := info.Mode().Perm(); perm != 0o600 {
				t.Errorf("mode = %o, want 600", perm)
			}

			loaded, err := Load(path, nil, nil)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if loaded.Len() != src.Len() {
				t.Fatalf("loaded %d colours, want %d", loaded.Len(), src.Len())
			}
			for i, c := range src.Colours() {
				got := loaded.Colours()[i]
				if got.ID() != c.ID() || got.Name() != c.Name() {
					t.Errorf("colour %d = %s/%s, want %s/%s", i, got.Name(), got.ID(), c.Name(), c.ID())
				}
				if !got.Color().Equal(c.Color(), 0.01) {
					t.Errorf("colour %d = %v, want %v", i, got.Color(), c.Color())
				}
			}
		})
	}
}

func TestLoadMissingIsEmpty(t *testing.T) {
	lib, err := Load(filepath.Join(t.TempDir(), "missing.json"), nil, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if lib.Len() != 0 {
		t.Errorf("Len() = %d, want 0", lib.Len())
	}
}

func TestLoadRejectsBadDocuments(t *testing.T) {
	dir := t.TempDir()

	corrupt := filepath.Join(dir, "corrupt.json")
	if err := os.WriteFile(corrupt, []byte(`[{"data":{"name":"x","encoding":"bogus"}}]`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(corrupt, nil, nil); !errors.Is(err, swatch.ErrUnknownEncoding) {
		t.Errorf("Load() error = %v, want ErrUnknownEncoding", err)
	}

	if _, err := Load(filepath.Join(dir, "library.txt"), nil, nil); err == nil {
		t.Error("expected error for unsupported extension")
	}
}
