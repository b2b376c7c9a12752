package engine

import (
	"errors"
	"fmt"
	"iter"

	"github.com/piwi3910/maxrects/internal/model"
)

// ErrNoFit is returned by Tracker.Commit when the box does not fit the
// requested free rectangle.
var ErrNoFit = errors.New("box does not fit free rectangle")

// Tracker maintains the maximal free rectangles of a single bin.
//
// Boxes are anchored at the top-left corner of the free rectangle they are
// committed to. After every commit each free rectangle overlapping the new
// item is split into up to four maximal strips, and any free rectangle
// contained in another is pruned.
type Tracker struct {
	bin model.Bin
}

// NewTracker takes a private copy of bin. A bin with no free rectangles and no
// placed items is treated as empty and gets one free rectangle covering it.
func NewTracker(bin model.Bin) *Tracker {
	b := bin.Clone()
	if len(b.FreeRects) == 0 && len(b.Placed) == 0 {
		b.FreeRects = []model.Rect{b.Bounds()}
	}
	return &Tracker{bin: b}
}

// Candidates yields, in list order, every free rectangle at least w wide and
// h high along with its index. It does not modify the tracker.
func (t *Tracker) Candidates(w, h int) iter.Seq2[int, model.Rect] {
	return func(yield func(int, model.Rect) bool) {
		for i, r := range t.bin.FreeRects {
			if r.Width >= w && r.Height >= h {
				if !yield(i, r) {
					return
				}
			}
		}
	}
}

// Fits reports whether any free rectangle can take a w x h box.
func (t *Tracker) Fits(w, h int) bool {
	for range t.Candidates(w, h) {
		return true
	}
	return false
}

// Commit places box at the top-left corner of free and updates the free list.
// free must be one of the tracker's current free rectangles and large enough
// for the box.
func (t *Tracker) Commit(free model.Rect, box model.Box) (model.PlacedItem, error) {
	if box.Width > free.Width || box.Height > free.Height {
		return model.PlacedItem{}, fmt.Errorf("%w: %dx%d into %dx%d",
			ErrNoFit, box.Width, box.Height, free.Width, free.Height)
	}
	if !t.owns(free) {
		return model.PlacedItem{}, fmt.Errorf("%w: %v is not a free rectangle of bin %d",
			ErrNoFit, free, t.bin.ID)
	}
	return t.place(free, box), nil
}

func (t *Tracker) place(free model.Rect, box model.Box) model.PlacedItem {
	item := model.PlacedItem{
		Box:   box,
		BinID: t.bin.ID,
		Rect:  model.NewRect(free.X, free.Y, box.Width, box.Height),
	}
	t.bin.Placed = append(t.bin.Placed, item)
	t.bin.FreeRects = pruneContained(splitAround(t.bin.FreeRects, item.Rect))
	return item
}

func (t *Tracker) owns(r model.Rect) bool {
	for _, f := range t.bin.FreeRects {
		if f == r {
			return true
		}
	}
	return false
}

// FreeRects returns a copy of the current free list.
func (t *Tracker) FreeRects() []model.Rect {
	return append([]model.Rect(nil), t.bin.FreeRects...)
}

// Placed returns the items committed so far. The slice must not be modified.
func (t *Tracker) Placed() []model.PlacedItem {
	return t.bin.Placed
}

// Bin returns a deep copy of the bin with its current occupancy.
func (t *Tracker) Bin() model.Bin {
	return t.bin.Clone()
}

// splitAround builds a new free list: rectangles not overlapping placed are
// kept as they are, overlapping ones are replaced in place by their maximal
// strips above, below, left of and right of placed.
func splitAround(free []model.Rect, placed model.Rect) []model.Rect {
	out := make([]model.Rect, 0, len(free)+3)
	for _, r := range free {
		if !r.Intersects(placed) {
			out = append(out, r)
			continue
		}

		// Above (full width of the original rect)
		if placed.Y > r.Y {
			out = append(out, model.NewRect(r.X, r.Y, r.Width, placed.Y-r.Y))
		}
		// Below (full width)
		if placed.Bottom() < r.Bottom() {
			out = append(out, model.NewRect(r.X, placed.Bottom(), r.Width, r.Bottom()-placed.Bottom()))
		}
		// Left (full height)
		if placed.X > r.X {
			out = append(out, model.NewRect(r.X, r.Y, placed.X-r.X, r.Height))
		}
		// Right (full height)
		if placed.Right() < r.Right() {
			out = append(out, model.NewRect(placed.Right(), r.Y, r.Right()-placed.Right(), r.Height))
		}
	}
	return out
}

// pruneContained removes every rect contained in another one. Of a group of
// identical rects only the first is kept.
func pruneContained(rects []model.Rect) []model.Rect {
	if len(rects) <= 1 {
		return rects
	}
	kept := make([]model.Rect, 0, len(rects))
	for i, a := range rects {
		redundant := false
		for j, b := range rects {
			if i == j || !b.Contains(a) {
				continue
			}
			if a != b || j < i {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, a)
		}
	}
	return kept
}
