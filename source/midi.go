package source

import (
	"context"

	"github.com/jsphweid/pianoroll/midi"
	"github.com/jsphweid/pianoroll/model"
)

// MidiFile reads notes out of a standard MIDI file on disk.
type MidiFile struct {
	Path string
}

func (m *MidiFile) Load(ctx context.Context) (model.NoteSequence, error) {
	if err := ctx.Err(); err != nil {
		return nil, unavailable(err, "load cancelled")
	}
	parsed, err := midi.ReadMidiFile(m.Path)
	if err != nil {
		return nil, unavailable(err, "could not read midi file")
	}
	return toSequence(midi.RawNotes(parsed)), nil
}
