// Package normalize maps a chunk of notes into the unit square so a roll
// looks the same whatever pixel size its container gives it.
//
// Time runs left to right across the chunk's own extent, from the earliest
// onset to the latest note end. Pitch uses fixed-height rows: the chunk's
// pitch range is widened to at least two octaves, padded by a few
// semitones and split into equal rows, highest pitch on top.
package normalize

import (
	"github.com/jsphweid/pianoroll/constants"
	"github.com/jsphweid/pianoroll/model"
	"github.com/jsphweid/pianoroll/util"
)

type Layout struct {
	Rects []model.NormalizedRect

	MinOnset float64
	TimeSpan float64

	PitchMin  int
	PitchMax  int
	RowHeight float64
}

func (l Layout) Rows() int {
	return l.PitchMax - l.PitchMin + 1
}

// RowY is the top of the row a pitch is drawn in.
func (l Layout) RowY(pitch int) float64 {
	return float64(l.PitchMax-pitch) * l.RowHeight
}

func (l Layout) TimeToX(t float64) float64 {
	return (t - l.MinOnset) / l.TimeSpan
}

// PitchRange widens [lo, hi] to MinPitchSpan and adds PitchMargin on both
// sides, staying inside the MIDI range.
func PitchRange(lo, hi int) (int, int) {
	if span := hi - lo; span < constants.MinPitchSpan {
		diff := constants.MinPitchSpan - span
		lo -= (diff + 1) / 2
		hi += diff / 2
	}
	lo -= constants.PitchMargin
	hi += constants.PitchMargin

	// shift back inside 0..127 before clipping so the span survives
	if lo < model.MinPitch {
		hi += model.MinPitch - lo
		lo = model.MinPitch
	}
	if hi > model.MaxPitch {
		lo -= hi - model.MaxPitch
		hi = model.MaxPitch
	}
	return util.Max(lo, model.MinPitch), hi
}

func defaultLayout() Layout {
	lo, hi := PitchRange(60, 60)
	return Layout{
		TimeSpan:  1,
		PitchMin:  lo,
		PitchMax:  hi,
		RowHeight: 1 / float64(hi-lo+1),
	}
}

func Normalize(c model.Chunk) Layout {
	if c.Empty() {
		return defaultLayout()
	}

	first := c.Notes[0]
	minOnset, maxEnd := first.Onset, first.End()
	lo, hi := first.Pitch, first.Pitch
	for _, n := range c.Notes[1:] {
		minOnset = util.Min(minOnset, n.Onset)
		maxEnd = util.Max(maxEnd, n.End())
		lo = util.Min(lo, n.Pitch)
		hi = util.Max(hi, n.Pitch)
	}

	l := Layout{
		MinOnset: minOnset,
		TimeSpan: util.Max(maxEnd-minOnset, constants.Epsilon),
	}
	l.PitchMin, l.PitchMax = PitchRange(lo, hi)
	l.RowHeight = 1 / float64(l.Rows())

	l.Rects = make([]model.NormalizedRect, 0, len(c.Notes))
	for i, n := range c.Notes {
		l.Rects = append(l.Rects, model.NormalizedRect{
			X:        l.TimeToX(n.Onset),
			Y:        l.RowY(n.Pitch),
			Width:    n.Duration / l.TimeSpan,
			Height:   l.RowHeight,
			Index:    i,
			Pitch:    n.Pitch,
			Velocity: n.Velocity,
		})
	}
	return l
}
