package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	log "github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/pianoroll/model"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF
	var err error

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)

	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))

	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

type reducedEvent struct {
	offset    int64 // microseconds
	isNoteOff bool
	channel   uint8
	key       uint8
	velocity  uint8
}

// RawNotes pairs note-on and note-off events across all tracks into notes
// with start and end in seconds, ordered by start.
func RawNotes(s *smf.SMF) []model.RawNote {
	var events []reducedEvent
	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				events = append(events, reducedEvent{
					offset:    s.TimeAt(absTicks),
					isNoteOff: velocity == 0,
					channel:   channel,
					key:       key,
					velocity:  velocity,
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				events = append(events, reducedEvent{
					offset:    s.TimeAt(absTicks),
					isNoteOff: true,
					channel:   channel,
					key:       key,
				})
			}
		}
	}

	// earlier first, note offs before note ons at the same time
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].offset != events[j].offset {
			return events[i].offset < events[j].offset
		}
		return events[i].isNoteOff && !events[j].isNoteOff
	})

	var res []model.RawNote
	pressed := make(map[uint16]int)
	for _, evt := range events {
		id := uint16(evt.channel)<<8 | uint16(evt.key)
		if evt.isNoteOff {
			idx, ok := pressed[id]
			if !ok {
				log.WithFields(log.Fields{"key": evt.key, "channel": evt.channel}).Debug("note off for unpressed note")
				continue
			}
			res[idx].End = float64(evt.offset) / 1e6
			delete(pressed, id)
			continue
		}
		if _, ok := pressed[id]; ok {
			log.WithFields(log.Fields{"key": evt.key, "channel": evt.channel}).Debug("note double pressed")
			continue
		}
		pressed[id] = len(res)
		res = append(res, model.RawNote{
			Pitch:    int(evt.key),
			Start:    float64(evt.offset) / 1e6,
			Velocity: int(evt.velocity),
		})
	}

	for _, idx := range pressed {
		log.WithField("key", res[idx].Pitch).Warn("missing note off")
	}
	return res
}
