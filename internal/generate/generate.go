// Package generate builds sample inputs for demos and benchmarks.
package generate

import (
	"fmt"
	"math/rand/v2"

	"github.com/piwi3910/maxrects/internal/model"
)

// Boxes returns n boxes whose sides are drawn uniformly from [minSide, maxSide].
// The same seed always yields the same sizes.
func Boxes(n, minSide, maxSide int, seed int64) ([]model.Box, error) {
	if n < 0 {
		return nil, fmt.Errorf("box count must not be negative, got %d", n)
	}
	if minSide <= 0 || maxSide < minSide {
		return nil, fmt.Errorf("invalid side range [%d, %d]", minSide, maxSide)
	}

	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
	span := maxSide - minSide + 1

	boxes := make([]model.Box, 0, n)
	for i := 0; i < n; i++ {
		b, err := model.NewBox(minSide+rng.IntN(span), minSide+rng.IntN(span))
		if err != nil {
			return nil, err
		}
		b.Label = fmt.Sprintf("box-%d", i+1)
		boxes = append(boxes, b)
	}
	return boxes, nil
}

// Bins returns n empty w x h bins with ids 0..n-1, laid out left to right on
// the canvas with buffer pixels between neighbours.
func Bins(n, w, h, buffer int) ([]model.Bin, error) {
	if n < 0 {
		return nil, fmt.Errorf("bin count must not be negative, got %d", n)
	}
	if buffer < 0 {
		buffer = 0
	}

	bins := make([]model.Bin, 0, n)
	for i := 0; i < n; i++ {
		b, err := model.NewBin(w, h, i*(w+buffer), 0, i)
		if err != nil {
			return nil, err
		}
		bins = append(bins, b)
	}
	return bins, nil
}

// FromSettings generates the sample boxes and bins described by s.
func FromSettings(s model.Settings) ([]model.Box, []model.Bin, error) {
	boxes, err := Boxes(s.BoxCount, s.MinBoxSide, s.MaxBoxSide, s.Seed)
	if err != nil {
		return nil, nil, err
	}
	bins, err := Bins(s.BinCount, s.BinWidth, s.BinHeight, s.RenderBuffer)
	if err != nil {
		return nil, nil, err
	}
	return boxes, bins, nil
}
