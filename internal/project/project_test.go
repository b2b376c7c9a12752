package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/maxrects/internal/engine"
	"github.com/piwi3910/maxrects/internal/model"
)

func buildProject(t *testing.T) model.Project {
	t.Helper()
	p := model.NewProject("demo")

	for _, size := range [][2]int{{5, 6}, {4, 4}, {30, 30}} {
		b, err := model.NewBox(size[0], size[1])
		if err != nil {
			t.Fatal(err)
		}
		p.Boxes = append(p.Boxes, b)
	}
	bin, err := model.NewBin(10, 20, 0, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	p.Bins = append(p.Bins, bin)

	result, err := engine.Pack(p.Boxes, p.Bins)
	if err != nil {
		t.Fatal(err)
	}
	p.Result = &result
	return p
}

func TestSaveLoad_AllFormats(t *testing.T) {
	for _, name := range []string{"p.json", "p.yaml", "p.yml", "p.toml"} {
		t.Run(name, func(t *testing.T) {
			original := buildProject(t)
			path := filepath.Join(t.TempDir(), "nested", name)

			if err := Save(path, original); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			loaded, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}

			if loaded.ID != original.ID || loaded.Name != original.Name {
				t.Errorf("identity mismatch: got %s/%s", loaded.ID, loaded.Name)
			}
			if loaded.Settings != original.Settings {
				t.Errorf("settings mismatch: got %+v", loaded.Settings)
			}
			if len(loaded.Boxes) != 3 || loaded.Boxes[0] != original.Boxes[0] {
				t.Errorf("boxes mismatch: got %+v", loaded.Boxes)
			}
			if loaded.Result == nil {
				t.Fatal("result was lost")
			}
			if len(loaded.Result.Placed) != 2 || len(loaded.Result.Remaining) != 1 {
				t.Errorf("expected 2 placed and 1 remaining, got %d and %d",
					len(loaded.Result.Placed), len(loaded.Result.Remaining))
			}
			if loaded.Result.Placed[1] != original.Result.Placed[1] {
				t.Errorf("placement mismatch: got %+v", loaded.Result.Placed[1])
			}

			bin := loaded.Result.Bins[0]
			if len(bin.FreeRects) != len(original.Result.Bins[0].FreeRects) {
				t.Errorf("free rects mismatch: got %v", bin.FreeRects)
			}
		})
	}
}

func TestLoad_NormalizesMissingSlices(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bare.json")
	if err := os.WriteFile(path, []byte(`{"id":"x","name":"bare","bins":[{"id":1,"width":5,"height":5}]}`), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Boxes == nil {
		t.Error("expected non-nil boxes")
	}
	if p.Bins[0].Placed == nil || p.Bins[0].FreeRects == nil {
		t.Error("expected non-nil bin slices")
	}
}

func TestLoad_RejectsInvalidDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("boxes:\n  - id: a\n    width: 0\n    height: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, model.ErrInvalidDimension) {
		t.Fatalf("expected ErrInvalidDimension, got %v", err)
	}
}

func TestSave_UnknownExtension(t *testing.T) {
	if err := Save(filepath.Join(t.TempDir(), "p.xml"), model.NewProject("x")); err == nil {
		t.Fatal("expected error for unknown extension")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "p.ini")); err == nil {
		t.Fatal("expected error for unknown extension")
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(dir, "broken.toml")
	if err := os.WriteFile(path, []byte("name = "), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestFormatFor(t *testing.T) {
	tests := map[string]Format{
		"a.JSON": FormatJSON,
		"a.yml":  FormatYAML,
		"a.yaml": FormatYAML,
		"a.toml": FormatTOML,
	}
	for path, want := range tests {
		got, err := FormatFor(path)
		if err != nil || got != want {
			t.Errorf("FormatFor(%q) = %q, %v; want %q", path, got, err, want)
		}
	}
}
