package chord

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jsphweid/pianoroll/model"
)

// Chord is the set of pitches sounding from Onset until the next note
// starts or stops.
type Chord struct {
	Onset   float64
	Pitches []int
}

func (c Chord) Key() string {
	return Key(c.Pitches)
}

// Key sorts pitches in place and joins them, e.g. "60-64-67".
func Key(pitches []int) string {
	sort.Ints(pitches)
	parts := make([]string, len(pitches))
	for i, p := range pitches {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, "-")
}

type event struct {
	at    float64
	off   bool
	pitch int
}

func snapshot(at float64, pressed map[int]int) Chord {
	c := Chord{Onset: at}
	for pitch := range pressed {
		c.Pitches = append(c.Pitches, pitch)
	}
	sort.Ints(c.Pitches)
	return c
}

// Chords sweeps a chunk's note starts and ends in time order and returns
// every non-empty chord, earliest first. A note ending exactly when another
// starts does not sound with it.
func Chords(c model.Chunk) []Chord {
	events := make([]event, 0, 2*c.Len())
	for _, n := range c.Notes {
		events = append(events,
			event{at: n.Onset, pitch: n.Pitch},
			event{at: n.End(), off: true, pitch: n.Pitch})
	}

	// prioritize earlier times then note off
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].at != events[j].at {
			return events[i].at < events[j].at
		}
		return events[i].off && !events[j].off
	})

	var chords []Chord
	pressed := make(map[int]int)
	for i, evt := range events {
		if evt.off {
			if pressed[evt.pitch]--; pressed[evt.pitch] <= 0 {
				delete(pressed, evt.pitch)
			}
		} else {
			pressed[evt.pitch]++
		}
		if i+1 < len(events) && events[i+1].at == evt.at {
			continue
		}
		if len(pressed) > 0 {
			chords = append(chords, snapshot(evt.at, pressed))
		}
	}
	return chords
}

// Polyphony is the largest number of distinct pitches sounding at once.
func Polyphony(chords []Chord) int {
	var n int
	for _, c := range chords {
		if len(c.Pitches) > n {
			n = len(c.Pitches)
		}
	}
	return n
}
