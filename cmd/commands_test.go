package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jsphweid/pianoroll/errs"
	"github.com/stretchr/testify/assert"
)

func TestCountSelection(t *testing.T) {
	g := newGrid()
	g.SetData(testSequence())

	assert := assert.New(t)
	n, err := countSelection(g, 0, 0, 0.51)
	assert.NoError(err)
	assert.Equal(31, n)

	n, err = countSelection(g, 1, 1, 0)
	assert.NoError(err)
	assert.Equal(60, n)

	_, err = countSelection(g, 42, 0, 1)
	assert.True(errs.Is(err, errs.InvalidArgument))
}

func TestReport(t *testing.T) {
	g := newGrid()
	g.SetData(testSequence())

	var out bytes.Buffer
	report(&out, g)
	text := out.String()

	assert := assert.New(t)
	assert.Contains(text, "notes in sequence: 130\n")
	assert.Contains(text, "notes in rolls: 130\n")
	assert.Contains(text, "roll  3: empty\n")
	assert.Contains(text, "polyphony 1")
}

func TestInspect(t *testing.T) {
	g := newGrid()
	g.SetData(testSequence())

	text, err := inspect(g, 0, 40)

	assert := assert.New(t)
	assert.NoError(err)
	assert.True(strings.Contains(text, "This is a piano roll number 0 (60 notes)"))
	assert.Contains(text, "C4")

	_, err = inspect(g, 99, 40)
	assert.True(errs.Is(err, errs.NotFound))
}

func TestNoteName(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C4", noteName(60))
	assert.Equal("A0", noteName(21))
	assert.Equal("C#-1", noteName(1))
}
