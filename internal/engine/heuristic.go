package engine

import (
	"fmt"

	"github.com/piwi3910/maxrects/internal/model"
)

// Score ranks a candidate placement. Lower scores are better; Secondary only
// matters when Primary is equal.
type Score struct {
	Primary   int
	Secondary int
}

// Less returns true if s ranks strictly ahead of o.
func (s Score) Less(o Score) bool {
	if s.Primary != o.Primary {
		return s.Primary < o.Primary
	}
	return s.Secondary < o.Secondary
}

// Candidate is one possible placement of a box: the box anchored at the
// top-left corner of Free inside a BinWidth x BinHeight bin that already holds
// Placed. Heuristics must treat Placed as read-only.
type Candidate struct {
	Width     int
	Height    int
	Free      model.Rect
	BinWidth  int
	BinHeight int
	Placed    []model.PlacedItem
}

// Heuristic is a pure scoring rule for candidates.
type Heuristic func(c Candidate) Score

func leftovers(c Candidate) (short, long int) {
	dw := c.Free.Width - c.Width
	dh := c.Free.Height - c.Height
	return min(dw, dh), max(dw, dh)
}

// BestAreaFit prefers the free rectangle with the least leftover area, breaking
// ties by the smaller short-side leftover.
func BestAreaFit(c Candidate) Score {
	short, _ := leftovers(c)
	return Score{
		Primary:   c.Free.Area() - c.Width*c.Height,
		Secondary: short,
	}
}

// BestShortSideFit prefers the smallest short-side leftover, then long side.
func BestShortSideFit(c Candidate) Score {
	short, long := leftovers(c)
	return Score{Primary: short, Secondary: long}
}

// BestLongSideFit prefers the smallest long-side leftover, then short side.
func BestLongSideFit(c Candidate) Score {
	short, long := leftovers(c)
	return Score{Primary: long, Secondary: short}
}

// BottomLeft does the Tetris placement: lowest bottom edge first, then leftmost.
// Y grows downward, so "lowest" is the smallest y+height.
func BottomLeft(c Candidate) Score {
	return Score{Primary: c.Free.Y + c.Height, Secondary: c.Free.X}
}

// ContactPoint prefers the placement whose perimeter touches the bin edges and
// already placed items the most. The contact length is negated so that lower
// still wins.
func ContactPoint(c Candidate) Score {
	x, y, w, h := c.Free.X, c.Free.Y, c.Width, c.Height
	score := 0

	if x == 0 || x+w == c.BinWidth {
		score += h
	}
	if y == 0 || y+h == c.BinHeight {
		score += w
	}

	for _, p := range c.Placed {
		r := p.Rect
		if r.X == x+w || r.Right() == x {
			score += commonInterval(r.Y, r.Bottom(), y, y+h)
		}
		if r.Y == y+h || r.Bottom() == y {
			score += commonInterval(r.X, r.Right(), x, x+w)
		}
	}
	return Score{Primary: -score}
}

// commonInterval returns the overlap length of [aStart, aEnd) and [bStart, bEnd).
func commonInterval(aStart, aEnd, bStart, bEnd int) int {
	if aEnd < bStart || bEnd < aStart {
		return 0
	}
	return min(aEnd, bEnd) - max(aStart, bStart)
}

var heuristics = []struct {
	name model.Heuristic
	fn   Heuristic
}{
	{model.HeuristicBestAreaFit, BestAreaFit},
	{model.HeuristicBestShortSideFit, BestShortSideFit},
	{model.HeuristicBestLongSideFit, BestLongSideFit},
	{model.HeuristicBottomLeft, BottomLeft},
	{model.HeuristicContactPoint, ContactPoint},
}

// HeuristicNames lists every known heuristic, default first.
func HeuristicNames() []model.Heuristic {
	names := make([]model.Heuristic, len(heuristics))
	for i, h := range heuristics {
		names[i] = h.name
	}
	return names
}

// ParseHeuristic resolves a heuristic by name. An empty name selects
// BestAreaFit.
func ParseHeuristic(name model.Heuristic) (Heuristic, error) {
	if name == "" {
		return BestAreaFit, nil
	}
	for _, h := range heuristics {
		if h.name == name {
			return h.fn, nil
		}
	}
	return nil, fmt.Errorf("unknown heuristic %q (want one of %v)", name, HeuristicNames())
}
