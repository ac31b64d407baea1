package model

import (
	"fmt"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"

	"github.com/jsphweid/pianoroll/errs"
)

const (
	MinPitch = 0
	MaxPitch = 127
)

// Note is one playable event. Onset and Duration are in the source's time
// units (seconds for every source in this repo).
type Note struct {
	Pitch    int
	Onset    float64
	Duration float64
	Velocity int
}

func (n Note) End() float64 {
	return n.Onset + n.Duration
}

// NoteSequence is trusted to be in temporal order.
type NoteSequence = []Note

// RawNote is the record shape served by the remote feed.
type RawNote struct {
	Pitch    int     `json:"pitch" dynamodbav:"pitch"`
	Start    float64 `json:"start" dynamodbav:"start"`
	End      float64 `json:"end" dynamodbav:"end"`
	Velocity int     `json:"velocity" dynamodbav:"velocity"`
}

func (r RawNote) Note() (Note, error) {
	var n Note
	switch {
	case r.Pitch < MinPitch || r.Pitch > MaxPitch:
		return n, invalidNote(fmt.Sprintf("pitch %d out of range", r.Pitch))
	case r.Start < 0:
		return n, invalidNote(fmt.Sprintf("negative start %v", r.Start))
	case r.End <= r.Start:
		return n, invalidNote(fmt.Sprintf("end %v not after start %v", r.End, r.Start))
	}

	velocity := r.Velocity
	if velocity < 0 || velocity > 127 {
		velocity = 127
	}

	return Note{
		Pitch:    r.Pitch,
		Onset:    r.Start,
		Duration: r.End - r.Start,
		Velocity: velocity,
	}, nil
}

func invalidNote(msg string) error {
	return fault.Wrap(fault.New(msg), ftag.With(errs.InvalidNote), fmsg.With("invalid note record"))
}

func FromNote(n Note) RawNote {
	return RawNote{
		Pitch:    n.Pitch,
		Start:    n.Onset,
		End:      n.End(),
		Velocity: n.Velocity,
	}
}
