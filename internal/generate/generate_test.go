package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/maxrects/internal/model"
)

func TestBoxes_SidesInRange(t *testing.T) {
	boxes, err := Boxes(500, 1, 99, 7)
	require.NoError(t, err)
	require.Len(t, boxes, 500)

	for _, b := range boxes {
		assert.GreaterOrEqual(t, b.Width, 1)
		assert.LessOrEqual(t, b.Width, 99)
		assert.GreaterOrEqual(t, b.Height, 1)
		assert.LessOrEqual(t, b.Height, 99)
		assert.NotEmpty(t, b.ID)
	}
	assert.Equal(t, "box-1", boxes[0].Label)
}

func TestBoxes_SameSeedSameSizes(t *testing.T) {
	a, err := Boxes(50, 1, 99, 42)
	require.NoError(t, err)
	b, err := Boxes(50, 1, 99, 42)
	require.NoError(t, err)

	for i := range a {
		assert.Equal(t, a[i].Width, b[i].Width)
		assert.Equal(t, a[i].Height, b[i].Height)
	}
}

func TestBoxes_FixedSide(t *testing.T) {
	boxes, err := Boxes(3, 5, 5, 1)
	require.NoError(t, err)
	for _, b := range boxes {
		assert.Equal(t, 5, b.Width)
		assert.Equal(t, 5, b.Height)
	}
}

func TestBoxes_InvalidArguments(t *testing.T) {
	_, err := Boxes(-1, 1, 2, 1)
	assert.Error(t, err)
	_, err = Boxes(1, 0, 2, 1)
	assert.Error(t, err)
	_, err = Boxes(1, 5, 4, 1)
	assert.Error(t, err)

	boxes, err := Boxes(0, 1, 2, 1)
	require.NoError(t, err)
	assert.Empty(t, boxes)
}

func TestBins_LaidOutLeftToRight(t *testing.T) {
	bins, err := Bins(3, 200, 150, 10)
	require.NoError(t, err)
	require.Len(t, bins, 3)

	for i, b := range bins {
		assert.Equal(t, i, b.ID)
		assert.Equal(t, i*210, b.OffsetX)
		assert.Zero(t, b.OffsetY)
		assert.Equal(t, []model.Rect{model.NewRect(0, 0, 200, 150)}, b.FreeRects)
	}
}

func TestBins_InvalidDimension(t *testing.T) {
	_, err := Bins(1, 0, 10, 10)
	assert.ErrorIs(t, err, model.ErrInvalidDimension)
}

func TestFromSettings(t *testing.T) {
	boxes, bins, err := FromSettings(model.DefaultSettings())
	require.NoError(t, err)
	assert.Len(t, boxes, 10)
	require.Len(t, bins, 1)
	assert.Equal(t, 200, bins[0].Width)
}
