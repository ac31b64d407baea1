package midi

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/pianoroll/model"
	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"
)

func testChunk() model.Chunk {
	return model.Chunk{Notes: []model.Note{
		{Pitch: 60, Onset: 10, Duration: 0.5, Velocity: 100},
		{Pitch: 64, Onset: 10.5, Duration: 0.25, Velocity: 80},
		{Pitch: 67, Onset: 10.5, Duration: 1, Velocity: 0},
		{Pitch: 60, Onset: 11, Duration: 0.5, Velocity: 60},
	}}
}

func TestWriteChunkReadsBack(t *testing.T) {
	var buf bytes.Buffer
	assert := assert.New(t)
	assert.NoError(WriteChunk(&buf, testChunk()))

	parsed, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	assert.NoError(err)

	raw := RawNotes(parsed)
	assert.Len(raw, 4)

	want := []model.RawNote{
		{Pitch: 60, Start: 0, End: 0.5, Velocity: 100},
		{Pitch: 64, Start: 0.5, End: 0.75, Velocity: 80},
		{Pitch: 67, Start: 0.5, End: 1.5, Velocity: 1},
		{Pitch: 60, Start: 1, End: 1.5, Velocity: 60},
	}
	for i, w := range want {
		assert.Equal(w.Pitch, raw[i].Pitch)
		assert.Equal(w.Velocity, raw[i].Velocity)
		assert.InDelta(w.Start, raw[i].Start, 0.001)
		assert.InDelta(w.End, raw[i].End, 0.001)
	}
}

func TestReadMidiFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roll.mid")
	var buf bytes.Buffer
	assert := assert.New(t)
	assert.NoError(WriteChunk(&buf, testChunk()))
	assert.NoError(os.WriteFile(path, buf.Bytes(), 0644))

	parsed, err := ReadMidiFile(path)
	assert.NoError(err)
	assert.Len(RawNotes(parsed), 4)
}

func TestReadMissingMidiFile(t *testing.T) {
	_, err := ReadMidiFile(filepath.Join(t.TempDir(), "nope.mid"))
	assert.Error(t, err)
}

func TestWriteEmptyChunk(t *testing.T) {
	var buf bytes.Buffer
	assert := assert.New(t)
	assert.NoError(WriteChunk(&buf, model.Chunk{}))

	parsed, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	assert.NoError(err)
	assert.Empty(RawNotes(parsed))
}
