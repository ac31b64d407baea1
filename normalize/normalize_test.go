package normalize

import (
	"testing"

	"github.com/jsphweid/pianoroll/constants"
	"github.com/jsphweid/pianoroll/model"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestNormalizeRectsStayInUnitSquare(t *testing.T) {
	c := model.Chunk{Notes: []model.Note{
		{Pitch: 64, Onset: 2.0, Duration: 0.5},
		{Pitch: 40, Onset: 2.5, Duration: 1.0},
		{Pitch: 90, Onset: 3.0, Duration: 2.25},
		{Pitch: 64, Onset: 4.0, Duration: 0.1},
	}}
	l := Normalize(c)

	assert := assert.New(t)
	assert.Len(l.Rects, 4)
	assert.InDelta(0, l.Rects[0].X, eps)
	for i, r := range l.Rects {
		assert.Equal(i, r.Index)
		assert.GreaterOrEqual(r.X, 0.0)
		assert.LessOrEqual(r.X, 1.0)
		assert.LessOrEqual(r.Right(), 1.0+eps)
		assert.GreaterOrEqual(r.Y, 0.0)
		assert.LessOrEqual(r.Y+r.Height, 1.0+eps)
	}
	assert.InDelta(1.0, l.Rects[2].Right(), eps)
}

func TestNormalizeKeepsInputOrder(t *testing.T) {
	c := model.Chunk{Notes: []model.Note{
		{Pitch: 60, Onset: 1.0, Duration: 1},
		{Pitch: 61, Onset: 0.0, Duration: 1},
	}}
	l := Normalize(c)

	assert := assert.New(t)
	assert.Equal(60, l.Rects[0].Pitch)
	assert.Equal(61, l.Rects[1].Pitch)
	assert.InDelta(0.5, l.Rects[0].X, eps)
	assert.InDelta(0, l.Rects[1].X, eps)
}

func TestNormalizeSpecExample(t *testing.T) {
	c := model.Chunk{Notes: []model.Note{
		{Pitch: 60, Onset: 0, Duration: 0.1},
		{Pitch: 62, Onset: 0.5, Duration: 0.1},
		{Pitch: 64, Onset: 0.9, Duration: 0.1},
	}}
	l := Normalize(c)

	assert := assert.New(t)
	assert.InDelta(0, l.Rects[0].X, eps)
	assert.InDelta(0.5, l.Rects[1].X, eps)
	assert.InDelta(0.9, l.Rects[2].X, eps)
	assert.InDelta(0.1, l.Rects[2].Width, eps)
}

func TestNormalizeZeroSpanDoesNotDivideByZero(t *testing.T) {
	c := model.Chunk{Notes: []model.Note{{Pitch: 60, Onset: 3, Duration: 0}}}
	l := Normalize(c)

	assert := assert.New(t)
	assert.Equal(constants.Epsilon, l.TimeSpan)
	assert.InDelta(0, l.Rects[0].X, eps)
	assert.InDelta(0, l.Rects[0].Width, eps)
}

func TestNormalizeEmptyChunk(t *testing.T) {
	l := Normalize(model.Chunk{Index: 4})

	assert := assert.New(t)
	assert.Empty(l.Rects)
	assert.Greater(l.RowHeight, 0.0)
}

func TestPitchRowsAreFixedHeight(t *testing.T) {
	c := model.Chunk{Notes: []model.Note{
		{Pitch: 60, Onset: 0, Duration: 1},
		{Pitch: 61, Onset: 1, Duration: 1},
	}}
	l := Normalize(c)

	assert := assert.New(t)
	rows := constants.MinPitchSpan + 2*constants.PitchMargin + 1
	assert.Equal(rows, l.Rows())
	assert.InDelta(1/float64(rows), l.RowHeight, eps)
	assert.InDelta(l.RowHeight, l.Rects[0].Y-l.Rects[1].Y, eps)
	assert.InDelta(l.RowHeight, l.Rects[0].Height, eps)
}

func TestPitchRange(t *testing.T) {
	assert := assert.New(t)

	lo, hi := PitchRange(60, 61)
	assert.Equal(60-12-constants.PitchMargin, lo)
	assert.Equal(61+11+constants.PitchMargin, hi)

	lo, hi = PitchRange(20, 100)
	assert.Equal(17, lo)
	assert.Equal(103, hi)

	lo, hi = PitchRange(0, 2)
	assert.Equal(0, lo)
	assert.Equal(30, hi)

	lo, hi = PitchRange(126, 127)
	assert.Equal(127, hi)
	assert.Equal(97, lo)
}
