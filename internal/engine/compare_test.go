package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/maxrects/internal/model"
)

func TestCompareHeuristics_AllByDefault(t *testing.T) {
	boxes, bins := randomInput(t, 3, 40, 2)

	results, err := CompareHeuristics(boxes, bins, nil, nil)
	require.NoError(t, err)
	require.Len(t, results, len(HeuristicNames()))

	for i, r := range results {
		assert.Equal(t, HeuristicNames()[i], r.Heuristic)
		assert.Equal(t, len(boxes), r.PlacedCount+r.UnplacedCount, r.Heuristic)
		assert.Equal(t, len(r.Result.Placed), r.PlacedCount)
		assert.Equal(t, r.Result.BinsUsed(), r.BinsUsed)
		assert.InDelta(t, r.Result.Efficiency(), r.Efficiency, 1e-9)
		assertConserved(t, boxes, r.Result)
	}
}

func TestCompareHeuristics_SelectedOrder(t *testing.T) {
	names := []model.Heuristic{model.HeuristicBottomLeft, model.HeuristicBestAreaFit}
	results, err := CompareHeuristics(
		[]model.Box{mustBox(t, 3, 3)},
		[]model.Bin{mustBin(t, 10, 10, 1)},
		names, nil,
	)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, model.HeuristicBottomLeft, results[0].Heuristic)
	assert.Equal(t, model.HeuristicBestAreaFit, results[1].Heuristic)
}

func TestCompareHeuristics_Errors(t *testing.T) {
	_, err := CompareHeuristics(
		[]model.Box{mustBox(t, 1, 1)},
		[]model.Bin{mustBin(t, 10, 10, 1)},
		[]model.Heuristic{"nope"}, nil,
	)
	assert.ErrorContains(t, err, "unknown heuristic")

	_, err = CompareHeuristics([]model.Box{mustBox(t, 1, 1)}, nil, nil, nil)
	assert.ErrorIs(t, err, model.ErrNoBins)
}

func TestBest(t *testing.T) {
	assert.Equal(t, -1, Best(nil))

	results := []ComparisonResult{
		{Heuristic: model.HeuristicBestAreaFit, Efficiency: 80, BinsUsed: 3},
		{Heuristic: model.HeuristicBottomLeft, Efficiency: 90, BinsUsed: 3},
		{Heuristic: model.HeuristicContactPoint, Efficiency: 90, BinsUsed: 2},
		{Heuristic: model.HeuristicBestLongSideFit, Efficiency: 90, BinsUsed: 2},
	}
	assert.Equal(t, 2, Best(results))
}
