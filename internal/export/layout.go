// Package export renders packing results as PNG images, PDF reports, QR label
// sheets and DXF drawings.
package export

import (
	"errors"

	"github.com/piwi3910/maxrects/internal/model"
)

// ErrNothingToExport is returned when a result has no bins to draw.
var ErrNothingToExport = errors.New("no bins to export")

type rgb struct {
	R, G, B int
}

var (
	binColor        = rgb{R: 200, G: 200, B: 200}
	backgroundColor = rgb{R: 0, G: 0, B: 0}
)

// palette colours placed items in placement order.
var palette = []rgb{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

func itemColor(i int) rgb {
	return palette[i%len(palette)]
}

// Layout returns where each bin sits on a shared canvas. When every bin
// has a zero display offset the bins are placed side by side, each in a
// slot as wide as the widest bin plus buffer. Otherwise the offsets are used
// as given, shifted so the canvas starts at the origin.
func Layout(bins []model.Bin, buffer int) []model.Rect {
	rects := make([]model.Rect, len(bins))
	if len(bins) == 0 {
		return rects
	}

	useOffsets := false
	for _, b := range bins {
		if b.OffsetX != 0 || b.OffsetY != 0 {
			useOffsets = true
			break
		}
	}

	if !useOffsets {
		slot := 0
		for _, b := range bins {
			slot = max(slot, b.Width)
		}
		for i, b := range bins {
			rects[i] = model.NewRect(i*(slot+max(buffer, 0)), 0, b.Width, b.Height)
		}
		return rects
	}

	minX, minY := bins[0].OffsetX, bins[0].OffsetY
	for _, b := range bins {
		minX, minY = min(minX, b.OffsetX), min(minY, b.OffsetY)
	}
	for i, b := range bins {
		rects[i] = b.CanvasRect().Translate(-minX, -minY)
	}
	return rects
}

// CanvasSize returns the smallest canvas holding every laid out bin.
func CanvasSize(layout []model.Rect) (w, h int) {
	for _, r := range layout {
		w, h = max(w, r.Right()), max(h, r.Bottom())
	}
	return w, h
}
