// Package engine implements MaxRects 2D bin packing: a per-bin free-space
// tracker, pluggable candidate scoring, and a greedy orchestrator that places
// boxes largest first.
package engine

import (
	"cmp"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/piwi3910/maxrects/internal/model"
)

// Packer runs a single greedy packing pass over a fixed set of boxes and bins.
//
// New takes private copies of its inputs and Run hands the updated bins back
// in the result, after which the Packer holds nothing. Calling Run again
// returns an empty result.
type Packer struct {
	boxes     []model.Box
	trackers  []*Tracker
	heuristic Heuristic
	logger    *log.Logger
}

// Option configures a Packer.
type Option func(*Packer)

// WithHeuristic selects the scoring rule. The default is BestAreaFit.
func WithHeuristic(h Heuristic) Option {
	return func(p *Packer) {
		if h != nil {
			p.heuristic = h
		}
	}
}

// WithLogger makes the packer log each placement decision at debug level.
func WithLogger(l *log.Logger) Option {
	return func(p *Packer) {
		if l != nil {
			p.logger = l
		}
	}
}

// New validates the inputs and builds a packer. It fails with
// model.ErrNoBins when bins is empty and with a model.DimensionError when any
// box or bin has a non-positive side.
func New(boxes []model.Box, bins []model.Bin, opts ...Option) (*Packer, error) {
	if len(bins) == 0 {
		return nil, model.ErrNoBins
	}
	for _, b := range boxes {
		if err := b.Validate(); err != nil {
			return nil, err
		}
	}

	p := &Packer{
		boxes:     slices.Clone(boxes),
		trackers:  make([]*Tracker, 0, len(bins)),
		heuristic: BestAreaFit,
		logger:    log.New(io.Discard),
	}
	for _, b := range bins {
		if err := b.Validate(); err != nil {
			return nil, err
		}
		p.trackers = append(p.trackers, NewTracker(b))
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Pack is a convenience wrapper around New and Run.
func Pack(boxes []model.Box, bins []model.Bin, opts ...Option) (model.PlacementResult, error) {
	p, err := New(boxes, bins, opts...)
	if err != nil {
		return model.PlacementResult{}, err
	}
	return p.Run(), nil
}

// choice is the winning candidate for one box.
type choice struct {
	bin   int
	free  model.Rect
	score Score
}

// Run places every box, largest area first, into the best-scoring free
// rectangle over all bins. Boxes that fit nowhere go to the remainder in the
// order they were considered.
func (p *Packer) Run() model.PlacementResult {
	result := model.PlacementResult{
		Placed:    []model.PlacedItem{},
		Remaining: []model.Box{},
		Bins:      []model.Bin{},
	}

	for _, box := range sortByAreaDesc(p.boxes) {
		best, ok := p.bestCandidate(box)
		if !ok {
			p.logger.Debug("box fits no bin", "box", box.ID, "w", box.Width, "h", box.Height)
			result.Remaining = append(result.Remaining, box)
			continue
		}

		item := p.trackers[best.bin].place(best.free, box)
		p.logger.Debug("placed box",
			"box", box.ID, "bin", item.BinID,
			"x", item.Rect.X, "y", item.Rect.Y, "w", item.Rect.Width, "h", item.Rect.Height,
			"score", best.score.Primary, "free", len(p.trackers[best.bin].bin.FreeRects))
		result.Placed = append(result.Placed, item)
	}

	for _, t := range p.trackers {
		result.Bins = append(result.Bins, t.bin)
	}

	// Ownership of the bin state moves to the caller.
	p.boxes = nil
	p.trackers = nil
	return result
}

// bestCandidate scores every fitting free rectangle of every bin. Bins are
// visited in input order and free rectangles in list order; the first
// candidate with the lowest score wins.
func (p *Packer) bestCandidate(box model.Box) (choice, bool) {
	var best choice
	found := false

	for bi, t := range p.trackers {
		for _, free := range t.Candidates(box.Width, box.Height) {
			s := p.heuristic(Candidate{
				Width:     box.Width,
				Height:    box.Height,
				Free:      free,
				BinWidth:  t.bin.Width,
				BinHeight: t.bin.Height,
				Placed:    t.bin.Placed,
			})
			if !found || s.Less(best.score) {
				best = choice{bin: bi, free: free, score: s}
				found = true
			}
		}
	}
	return best, found
}

// sortByAreaDesc returns boxes ordered by descending area. Equal areas keep
// their input order.
func sortByAreaDesc(boxes []model.Box) []model.Box {
	sorted := slices.Clone(boxes)
	slices.SortStableFunc(sorted, func(a, b model.Box) int {
		return cmp.Compare(b.Area(), a.Area())
	})
	return sorted
}
