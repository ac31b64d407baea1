package source

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/pianoroll/config"
	"github.com/jsphweid/pianoroll/errs"
	"github.com/jsphweid/pianoroll/midi"
	"github.com/jsphweid/pianoroll/model"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func serve(status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestHTTPLoad(t *testing.T) {
	srv := serve(http.StatusOK, `[
		{"pitch": 60, "start": 0.5, "end": 1.0, "velocity": 100},
		{"pitch": 200, "start": 1.0, "end": 2.0, "velocity": 100},
		{"pitch": 62, "start": 1.0, "end": 1.0, "velocity": 100},
		{"pitch": 64, "start": 1.5, "end": 2.5, "velocity": 90}
	]`)
	defer srv.Close()

	seq, err := NewHTTP(srv.URL).Load(context.Background())

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(model.NoteSequence{
		{Pitch: 60, Onset: 0.5, Duration: 0.5, Velocity: 100},
		{Pitch: 64, Onset: 1.5, Duration: 1.0, Velocity: 90},
	}, seq)
}

func TestSkippedRecordWarningNamesTheField(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	seq := toSequence([]model.RawNote{
		{Pitch: 60, Start: 0, End: 1, Velocity: 80},
		{Pitch: 200, Start: 0, End: 1, Velocity: 80},
	})

	assert := assert.New(t)
	assert.Len(seq, 1)
	entry := hook.LastEntry()
	assert.NotNil(entry)
	assert.Equal(log.WarnLevel, entry.Level)
	assert.Equal(1, entry.Data["record"])
	err, ok := entry.Data[log.ErrorKey].(error)
	assert.True(ok)
	assert.Contains(err.Error(), "pitch 200 out of range")
	assert.True(errs.Is(err, errs.InvalidNote))
}

func TestHTTPFailuresAreDataUnavailable(t *testing.T) {
	cases := map[string]*httptest.Server{
		"status":  serve(http.StatusInternalServerError, `[]`),
		"garbage": serve(http.StatusOK, `{"not": "a list"`),
	}

	for name, srv := range cases {
		t.Run(name, func(t *testing.T) {
			defer srv.Close()
			seq, err := NewHTTP(srv.URL).Load(context.Background())

			assert := assert.New(t)
			assert.Nil(seq)
			assert.True(errs.Is(err, errs.DataUnavailable))
			assert.Equal("The piano roll data could not be loaded", errs.Message(err))
		})
	}
}

func TestHTTPUnreachable(t *testing.T) {
	srv := serve(http.StatusOK, `[]`)
	url := srv.URL
	srv.Close()

	_, err := NewHTTP(url).Load(context.Background())
	assert.True(t, errs.Is(err, errs.DataUnavailable))
}

func TestMidiFileLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.mid")
	var buf bytes.Buffer
	c := model.Chunk{Notes: []model.Note{
		{Pitch: 60, Onset: 0, Duration: 0.5, Velocity: 100},
		{Pitch: 67, Onset: 0.5, Duration: 0.5, Velocity: 80},
	}}
	assert := assert.New(t)
	assert.NoError(midi.WriteChunk(&buf, c))
	assert.NoError(os.WriteFile(path, buf.Bytes(), 0644))

	seq, err := (&MidiFile{Path: path}).Load(context.Background())
	assert.NoError(err)
	assert.Len(seq, 2)
	assert.Equal(67, seq[1].Pitch)
	assert.InDelta(0.5, seq[1].Onset, 0.001)
}

func TestMidiFileMissing(t *testing.T) {
	_, err := (&MidiFile{Path: filepath.Join(t.TempDir(), "none.mid")}).Load(context.Background())
	assert.True(t, errs.Is(err, errs.DataUnavailable))
}

func TestNewPicksKind(t *testing.T) {
	assert := assert.New(t)

	src, err := New(config.Source{Kind: "http", URL: "http://example.com/notes"})
	assert.NoError(err)
	assert.Equal("http://example.com/notes", src.(*HTTP).URL)

	src, err = New(config.Source{})
	assert.NoError(err)
	assert.IsType(&HTTP{}, src)

	src, err = New(config.Source{Kind: "midi", Path: "a.mid"})
	assert.NoError(err)
	assert.IsType(&MidiFile{}, src)

	src, err = New(config.Source{Kind: "dynamo", Table: "t", Key: "k"})
	assert.NoError(err)
	assert.IsType(&Dynamo{}, src)

	_, err = New(config.Source{Kind: "ftp"})
	assert.True(errs.Is(err, errs.InvalidArgument))
}
