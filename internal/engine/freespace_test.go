package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/maxrects/internal/model"
)

func mustBox(t *testing.T, w, h int) model.Box {
	t.Helper()
	b, err := model.NewBox(w, h)
	require.NoError(t, err)
	return b
}

func mustBin(t *testing.T, w, h, id int) model.Bin {
	t.Helper()
	b, err := model.NewBin(w, h, 0, 0, id)
	require.NoError(t, err)
	return b
}

func rect(x, y, w, h int) model.Rect {
	return model.NewRect(x, y, w, h)
}

func TestTracker_StartsWithFullBin(t *testing.T) {
	tr := NewTracker(mustBin(t, 10, 20, 1))
	assert.Equal(t, []model.Rect{rect(0, 0, 10, 20)}, tr.FreeRects())
	assert.Empty(t, tr.Placed())
}

func TestTracker_BareBinLiteralGetsFullFreeRect(t *testing.T) {
	tr := NewTracker(model.Bin{ID: 3, Width: 8, Height: 4})
	assert.Equal(t, []model.Rect{rect(0, 0, 8, 4)}, tr.FreeRects())
}

func TestTracker_CandidatesFilterBySize(t *testing.T) {
	bin := mustBin(t, 10, 10, 1)
	bin.FreeRects = []model.Rect{rect(0, 0, 3, 10), rect(0, 0, 10, 3), rect(5, 5, 5, 5)}
	tr := NewTracker(bin)

	var got []int
	for i := range tr.Candidates(4, 4) {
		got = append(got, i)
	}
	assert.Equal(t, []int{2}, got)

	got = got[:0]
	for i := range tr.Candidates(3, 3) {
		got = append(got, i)
	}
	assert.Equal(t, []int{0, 1, 2}, got)

	assert.True(t, tr.Fits(5, 5))
	assert.False(t, tr.Fits(6, 6))
}

func TestTracker_CandidatesStopEarly(t *testing.T) {
	bin := mustBin(t, 10, 10, 1)
	bin.FreeRects = []model.Rect{rect(0, 0, 10, 10), rect(0, 0, 10, 10)}
	tr := NewTracker(bin)

	n := 0
	for range tr.Candidates(1, 1) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestTracker_CommitSplitsAtTopLeft(t *testing.T) {
	tr := NewTracker(mustBin(t, 10, 20, 1))
	item, err := tr.Commit(rect(0, 0, 10, 20), mustBox(t, 5, 6))
	require.NoError(t, err)

	assert.Equal(t, rect(0, 0, 5, 6), item.Rect)
	assert.Equal(t, 1, item.BinID)
	assert.Equal(t, []model.Rect{
		rect(0, 6, 10, 14), // below
		rect(5, 0, 5, 20),  // right
	}, tr.FreeRects())
	assert.Len(t, tr.Placed(), 1)
}

func TestTracker_SecondCommitSplitsOnlyOverlappingRects(t *testing.T) {
	tr := NewTracker(mustBin(t, 10, 20, 1))
	_, err := tr.Commit(rect(0, 0, 10, 20), mustBox(t, 5, 6))
	require.NoError(t, err)

	item, err := tr.Commit(rect(5, 0, 5, 20), mustBox(t, 4, 4))
	require.NoError(t, err)

	assert.Equal(t, rect(5, 0, 4, 4), item.Rect)
	assert.Equal(t, []model.Rect{
		rect(0, 6, 10, 14), // untouched
		rect(5, 4, 5, 16),  // below the new item
		rect(9, 0, 1, 20),  // right of the new item
	}, tr.FreeRects())
}

func TestTracker_ExactFillConsumesFreeRect(t *testing.T) {
	tr := NewTracker(mustBin(t, 10, 10, 1))
	_, err := tr.Commit(rect(0, 0, 10, 10), mustBox(t, 10, 10))
	require.NoError(t, err)

	assert.Empty(t, tr.FreeRects())
	assert.False(t, tr.Fits(1, 1))
}

func TestTracker_EdgeTouchingBoxLeavesNoDegenerateRects(t *testing.T) {
	tr := NewTracker(mustBin(t, 10, 10, 1))
	_, err := tr.Commit(rect(0, 0, 10, 10), mustBox(t, 10, 4))
	require.NoError(t, err)

	assert.Equal(t, []model.Rect{rect(0, 4, 10, 6)}, tr.FreeRects())
	for _, r := range tr.FreeRects() {
		assert.False(t, r.Empty(), "degenerate free rect %v", r)
	}
}

func TestTracker_CommitRejectsOversizedBox(t *testing.T) {
	tr := NewTracker(mustBin(t, 10, 10, 1))
	_, err := tr.Commit(rect(0, 0, 10, 10), mustBox(t, 11, 1))
	assert.ErrorIs(t, err, ErrNoFit)
	assert.Empty(t, tr.Placed())
}

func TestTracker_CommitRejectsForeignRect(t *testing.T) {
	tr := NewTracker(mustBin(t, 10, 10, 1))
	_, err := tr.Commit(rect(1, 1, 5, 5), mustBox(t, 2, 2))
	assert.ErrorIs(t, err, ErrNoFit)
	assert.Equal(t, []model.Rect{rect(0, 0, 10, 10)}, tr.FreeRects())
}

func TestTracker_BinReturnsCopy(t *testing.T) {
	tr := NewTracker(mustBin(t, 10, 10, 1))
	b := tr.Bin()
	b.FreeRects[0] = rect(0, 0, 1, 1)
	assert.Equal(t, []model.Rect{rect(0, 0, 10, 10)}, tr.FreeRects())
}

func TestTracker_DoesNotAliasInputBin(t *testing.T) {
	bin := mustBin(t, 10, 10, 1)
	tr := NewTracker(bin)
	_, err := tr.Commit(rect(0, 0, 10, 10), mustBox(t, 3, 3))
	require.NoError(t, err)

	assert.Equal(t, []model.Rect{rect(0, 0, 10, 10)}, bin.FreeRects)
	assert.Empty(t, bin.Placed)
}

func TestSplitAround_KeepsDisjointRectsInPlace(t *testing.T) {
	free := []model.Rect{rect(0, 0, 2, 2), rect(5, 5, 5, 5), rect(20, 20, 1, 1)}
	got := splitAround(free, rect(6, 6, 2, 2))
	assert.Equal(t, []model.Rect{
		rect(0, 0, 2, 2),
		rect(5, 5, 5, 1), // above
		rect(5, 8, 5, 2), // below
		rect(5, 5, 1, 5), // left
		rect(8, 5, 2, 5), // right
		rect(20, 20, 1, 1),
	}, got)
}

func TestPruneContained_RemovesSubsetsAndDuplicates(t *testing.T) {
	big := rect(0, 0, 10, 10)
	got := pruneContained([]model.Rect{
		rect(2, 2, 2, 2),
		big,
		rect(5, 0, 5, 20),
		big,
		rect(0, 0, 10, 10),
	})
	assert.Equal(t, []model.Rect{big, rect(5, 0, 5, 20)}, got)
}

func TestPruneContained_KeepsOverlappingRects(t *testing.T) {
	in := []model.Rect{rect(0, 6, 10, 14), rect(5, 0, 5, 20)}
	assert.Equal(t, in, pruneContained(in))
}

func TestPruneContained_SingleAndEmpty(t *testing.T) {
	assert.Empty(t, pruneContained(nil))
	assert.Equal(t, []model.Rect{rect(0, 0, 1, 1)}, pruneContained([]model.Rect{rect(0, 0, 1, 1)}))
}
