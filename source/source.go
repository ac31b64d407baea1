// Package source retrieves the note sequence a grid displays. Every
// failure comes back tagged errs.DataUnavailable so callers can treat the
// dataset as absent.
package source

import (
	"context"
	"fmt"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	log "github.com/sirupsen/logrus"

	"github.com/jsphweid/pianoroll/config"
	"github.com/jsphweid/pianoroll/errs"
	"github.com/jsphweid/pianoroll/model"
)

type Source interface {
	Load(ctx context.Context) (model.NoteSequence, error)
}

const (
	KindHTTP   = "http"
	KindMidi   = "midi"
	KindDynamo = "dynamo"
)

func New(cfg config.Source) (Source, error) {
	switch cfg.Kind {
	case "", KindHTTP:
		return NewHTTP(cfg.URL), nil
	case KindMidi:
		return &MidiFile{Path: cfg.Path}, nil
	case KindDynamo:
		return &Dynamo{
			Endpoint: cfg.Endpoint,
			Region:   cfg.Region,
			Table:    cfg.Table,
			Key:      cfg.Key,
		}, nil
	}
	return nil, fault.Wrap(fault.New(fmt.Sprintf("unknown source kind %q", cfg.Kind)),
		ftag.With(errs.InvalidArgument),
		fmsg.With("bad data source configuration"))
}

func unavailable(err error, msg string) error {
	return fault.Wrap(err,
		ftag.With(errs.DataUnavailable),
		fmsg.WithDesc(msg, "The piano roll data could not be loaded"))
}

// toSequence converts wire records, skipping the ones that don't describe
// a playable note.
func toSequence(raw []model.RawNote) model.NoteSequence {
	seq := make(model.NoteSequence, 0, len(raw))
	for i, r := range raw {
		n, err := r.Note()
		if err != nil {
			log.WithError(err).WithField("record", i).Warn("skipping note record")
			continue
		}
		seq = append(seq, n)
	}
	return seq
}
