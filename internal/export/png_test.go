package export

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/piwi3910/maxrects/internal/model"
)

func mustBin(t *testing.T, w, h, x, y, id int) model.Bin {
	t.Helper()
	b, err := model.NewBin(w, h, x, y, id)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func rgbAt(img image.Image, x, y int) rgb {
	r, g, b, _ := img.At(x, y).RGBA()
	return rgb{R: int(r >> 8), G: int(g >> 8), B: int(b >> 8)}
}

func TestLayout_SideBySide(t *testing.T) {
	bins := []model.Bin{mustBin(t, 20, 20, 0, 0, 0), mustBin(t, 10, 30, 0, 0, 1), mustBin(t, 20, 5, 0, 0, 2)}
	layout := Layout(bins, 10)

	want := []model.Rect{
		model.NewRect(0, 0, 20, 20),
		model.NewRect(30, 0, 10, 30),
		model.NewRect(60, 0, 20, 5),
	}
	for i := range want {
		if layout[i] != want[i] {
			t.Errorf("bin %d: expected %+v, got %+v", i, want[i], layout[i])
		}
	}

	w, h := CanvasSize(layout)
	if w != 80 || h != 30 {
		t.Errorf("expected 80x30 canvas, got %dx%d", w, h)
	}
}

func TestLayout_UsesOffsets(t *testing.T) {
	bins := []model.Bin{mustBin(t, 10, 10, 5, 5, 0), mustBin(t, 10, 10, 25, 40, 1)}
	layout := Layout(bins, 10)

	if layout[0] != model.NewRect(0, 0, 10, 10) {
		t.Errorf("expected first bin at origin, got %+v", layout[0])
	}
	if layout[1] != model.NewRect(20, 35, 10, 10) {
		t.Errorf("expected second bin shifted by the minimum offset, got %+v", layout[1])
	}
}

func TestRender_Colours(t *testing.T) {
	left := mustBin(t, 20, 20, 0, 0, 0)
	box, err := model.NewBox(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	left.Placed = append(left.Placed, model.PlacedItem{Box: box, BinID: 0, Rect: model.NewRect(0, 0, 10, 10)})
	right := mustBin(t, 20, 20, 0, 0, 1)

	img, err := Render([]model.Bin{left, right}, 10)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 50 || b.Dy() != 20 {
		t.Fatalf("expected 50x20 image, got %v", b)
	}

	checks := []struct {
		name string
		x, y int
		want rgb
	}{
		{"item", 5, 5, palette[0]},
		{"empty bin area", 15, 15, binColor},
		{"buffer", 25, 5, backgroundColor},
		{"second bin", 35, 5, binColor},
	}
	for _, c := range checks {
		if got := rgbAt(img, c.x, c.y); got != c.want {
			t.Errorf("%s at (%d,%d): expected %+v, got %+v", c.name, c.x, c.y, c.want, got)
		}
	}
}

func TestWritePNG_Decodes(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, buildTestResult(t).Bins, 10); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 120+10+100 {
		t.Errorf("unexpected width %d", img.Bounds().Dx())
	}
}

func TestExportPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := ExportPNG(path, buildTestResult(t).Bins, 10); err != nil {
		t.Fatal(err)
	}
	assertNonEmptyFile(t, path, 100)

	if err := ExportPNG(path, nil, 10); !errors.Is(err, ErrNothingToExport) {
		t.Errorf("expected ErrNothingToExport, got %v", err)
	}
}
