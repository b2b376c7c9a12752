package engine

import (
	"github.com/charmbracelet/log"

	"github.com/piwi3910/maxrects/internal/model"
)

// ComparisonResult holds the packing result and computed statistics for one
// heuristic.
type ComparisonResult struct {
	Heuristic     model.Heuristic
	Result        model.PlacementResult
	BinsUsed      int
	PlacedCount   int
	UnplacedCount int
	Efficiency    float64
}

// CompareHeuristics packs the same boxes and bins once per named heuristic and
// returns the results in the order given. Each run works on its own copy of
// the inputs, so results are independent. A nil names slice compares every
// known heuristic.
func CompareHeuristics(boxes []model.Box, bins []model.Bin, names []model.Heuristic, logger *log.Logger) ([]ComparisonResult, error) {
	if names == nil {
		names = HeuristicNames()
	}

	results := make([]ComparisonResult, 0, len(names))
	for _, name := range names {
		h, err := ParseHeuristic(name)
		if err != nil {
			return nil, err
		}

		result, err := Pack(boxes, bins, WithHeuristic(h), WithLogger(logger))
		if err != nil {
			return nil, err
		}

		results = append(results, ComparisonResult{
			Heuristic:     name,
			Result:        result,
			BinsUsed:      result.BinsUsed(),
			PlacedCount:   len(result.Placed),
			UnplacedCount: len(result.Remaining),
			Efficiency:    result.Efficiency(),
		})
	}
	return results, nil
}

// Best returns the index of the result that placed the most area, preferring
// fewer bins used on a tie and the earlier entry after that. It returns -1 for
// an empty slice.
func Best(results []ComparisonResult) int {
	best := -1
	for i, r := range results {
		if best < 0 {
			best = i
			continue
		}
		b := results[best]
		if r.Efficiency > b.Efficiency || (r.Efficiency == b.Efficiency && r.BinsUsed < b.BinsUsed) {
			best = i
		}
	}
	return best
}
