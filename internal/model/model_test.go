package model

import (
	"errors"
	"testing"
)

func TestNewBox(t *testing.T) {
	b, err := NewBox(5, 6)
	if err != nil {
		t.Fatalf("NewBox failed: %v", err)
	}
	if b.Width != 5 || b.Height != 6 {
		t.Errorf("expected 5x6, got %dx%d", b.Width, b.Height)
	}
	if len(b.ID) != 8 {
		t.Errorf("expected 8 character ID, got %q", b.ID)
	}
	if b.Area() != 30 {
		t.Errorf("expected area 30, got %d", b.Area())
	}
}

func TestNewBoxRejectsNonPositiveSides(t *testing.T) {
	cases := [][2]int{{0, 5}, {5, 0}, {-1, 5}, {5, -3}, {0, 0}}
	for _, c := range cases {
		_, err := NewBox(c[0], c[1])
		if !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("NewBox(%d, %d): expected ErrInvalidDimension, got %v", c[0], c[1], err)
		}
		var de *DimensionError
		if !errors.As(err, &de) || de.Subject != "box" {
			t.Errorf("NewBox(%d, %d): expected box DimensionError, got %v", c[0], c[1], err)
		}
	}
}

func TestNewBin(t *testing.T) {
	b, err := NewBin(10, 20, 5, 5, 1)
	if err != nil {
		t.Fatalf("NewBin failed: %v", err)
	}
	if b.Width != 10 || b.Height != 20 || b.OffsetX != 5 || b.OffsetY != 5 || b.ID != 1 {
		t.Errorf("unexpected bin fields: %+v", b)
	}
	if len(b.FreeRects) != 1 || b.FreeRects[0] != NewRect(0, 0, 10, 20) {
		t.Errorf("expected one full-bin free rect, got %v", b.FreeRects)
	}
	if len(b.Placed) != 0 {
		t.Errorf("expected no placed items, got %d", len(b.Placed))
	}
	if b.Area() != 200 {
		t.Errorf("expected area 200, got %d", b.Area())
	}
	if b.CanvasRect() != NewRect(5, 5, 10, 20) {
		t.Errorf("unexpected canvas rect %v", b.CanvasRect())
	}
}

func TestNewBinRejectsNonPositiveSides(t *testing.T) {
	_, err := NewBin(0, 10, 0, 0, 1)
	if !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("expected ErrInvalidDimension, got %v", err)
	}
	_, err = NewBin(10, -10, 0, 0, 1)
	if !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("expected ErrInvalidDimension, got %v", err)
	}
}

func TestBinUsageStats(t *testing.T) {
	b, _ := NewBin(10, 10, 0, 0, 1)
	b.Placed = append(b.Placed, PlacedItem{BinID: 1, Rect: NewRect(0, 0, 5, 5)})

	if b.UsedArea() != 25 {
		t.Errorf("expected used area 25, got %d", b.UsedArea())
	}
	if b.FreeArea() != 75 {
		t.Errorf("expected free area 75, got %d", b.FreeArea())
	}
	if b.Efficiency() != 25.0 {
		t.Errorf("expected 25%% efficiency, got %f", b.Efficiency())
	}
}

func TestBinCloneDoesNotAlias(t *testing.T) {
	b, _ := NewBin(10, 10, 0, 0, 1)
	cp := b.Clone()
	cp.FreeRects[0] = NewRect(1, 1, 1, 1)
	cp.Placed = append(cp.Placed, PlacedItem{})

	if b.FreeRects[0] != NewRect(0, 0, 10, 10) {
		t.Error("clone shares free rects with the original")
	}
	if len(b.Placed) != 0 {
		t.Error("clone shares placed items with the original")
	}
}

func TestPlacementResultBinsUsed(t *testing.T) {
	empty, _ := NewBin(10, 10, 0, 0, 1)
	used, _ := NewBin(10, 10, 0, 0, 2)
	used.Placed = []PlacedItem{{BinID: 2, Rect: NewRect(0, 0, 1, 1)}}

	r := PlacementResult{Bins: []Bin{empty, used}}
	if r.BinsUsed() != 1 {
		t.Errorf("expected 1 bin used, got %d", r.BinsUsed())
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.Heuristic != HeuristicBestAreaFit {
		t.Errorf("expected best-area-fit, got %s", s.Heuristic)
	}
	if s.BinWidth != 200 || s.BinHeight != 200 {
		t.Errorf("expected 200x200 bins, got %dx%d", s.BinWidth, s.BinHeight)
	}
	if s.MinBoxSide != 1 || s.MaxBoxSide != 99 {
		t.Errorf("expected box sides 1..99, got %d..%d", s.MinBoxSide, s.MaxBoxSide)
	}
}

func TestNewProject(t *testing.T) {
	p := NewProject("demo")
	if p.Name != "demo" || p.ID == "" {
		t.Errorf("unexpected project header: %+v", p)
	}
	if p.Boxes == nil || p.Bins == nil {
		t.Error("expected non-nil box and bin slices")
	}
	if p.Result != nil {
		t.Error("expected nil result")
	}
}
