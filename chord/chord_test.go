package chord

import (
	"testing"

	"github.com/jsphweid/pianoroll/model"
	"github.com/stretchr/testify/assert"
)

func chunkOf(notes ...model.Note) model.Chunk {
	return model.Chunk{Notes: notes}
}

func TestKeySortsPitches(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("60-64-67", Key([]int{67, 60, 64}))
	assert.Equal("", Key(nil))
}

func TestTriadFormsOneChord(t *testing.T) {
	chords := Chords(chunkOf(
		model.Note{Pitch: 67, Onset: 0, Duration: 1},
		model.Note{Pitch: 60, Onset: 0, Duration: 1},
		model.Note{Pitch: 64, Onset: 0, Duration: 1},
	))

	assert := assert.New(t)
	assert.Len(chords, 1)
	assert.Equal("60-64-67", chords[0].Key())
	assert.Equal(3, Polyphony(chords))
}

func TestTouchingNotesDoNotOverlap(t *testing.T) {
	chords := Chords(chunkOf(
		model.Note{Pitch: 60, Onset: 0, Duration: 1},
		model.Note{Pitch: 62, Onset: 1, Duration: 1},
	))

	assert := assert.New(t)
	assert.Len(chords, 2)
	assert.Equal([]int{60}, chords[0].Pitches)
	assert.Equal([]int{62}, chords[1].Pitches)
	assert.Equal(1, Polyphony(chords))
}

func TestHeldNoteCarriesThrough(t *testing.T) {
	chords := Chords(chunkOf(
		model.Note{Pitch: 48, Onset: 0, Duration: 4},
		model.Note{Pitch: 64, Onset: 1, Duration: 1},
		model.Note{Pitch: 65, Onset: 2, Duration: 1},
	))

	assert := assert.New(t)
	keys := make([]string, 0, len(chords))
	for _, c := range chords {
		keys = append(keys, c.Key())
	}
	assert.Equal([]string{"48", "48-64", "48-65", "48"}, keys)
	assert.Equal(2.0, chords[2].Onset)
}

func TestEmptyChunkHasNoChords(t *testing.T) {
	assert.Empty(t, Chords(model.Chunk{}))
}
