package midi

import (
	"io"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/pianoroll/model"
)

// Resolution of exported files. With the default tempo of 120bpm one
// second is 2*Resolution ticks.
const Resolution = 960

const ticksPerSecond = 2 * Resolution

type timedMessage struct {
	tick  uint32
	isOff bool
	msg   midi.Message
}

// WriteChunk writes the notes of c as a single track SMF on channel 0,
// shifted so the earliest onset lands on tick 0.
func WriteChunk(w io.Writer, c model.Chunk) error {
	var start float64
	for i, n := range c.Notes {
		if i == 0 || n.Onset < start {
			start = n.Onset
		}
	}

	var msgs []timedMessage
	for _, n := range c.Notes {
		on := toTicks(n.Onset - start)
		off := toTicks(n.End() - start)
		if off <= on {
			off = on + 1
		}
		// a note on with velocity 0 would read back as a note off
		velocity := n.Velocity
		if velocity < 1 {
			velocity = 1
		}
		msgs = append(msgs,
			timedMessage{tick: on, msg: midi.NoteOn(0, uint8(n.Pitch), uint8(velocity))},
			timedMessage{tick: off, isOff: true, msg: midi.NoteOff(0, uint8(n.Pitch))},
		)
	}
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].tick != msgs[j].tick {
			return msgs[i].tick < msgs[j].tick
		}
		return msgs[i].isOff && !msgs[j].isOff
	})

	var track smf.Track
	var last uint32
	for _, m := range msgs {
		track.Add(m.tick-last, m.msg)
		last = m.tick
	}
	track.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(Resolution)
	if err := s.Add(track); err != nil {
		return err
	}
	_, err := s.WriteTo(w)
	return err
}

func toTicks(seconds float64) uint32 {
	if seconds <= 0 {
		return 0
	}
	return uint32(seconds*ticksPerSecond + 0.5)
}
