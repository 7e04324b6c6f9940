package decoder

import (
	"math"
	"slices"
)

// Note is a sounding note with absolute start and stop times in seconds.
type Note struct {
	Start float64 `yaml:"start"`
	Stop  float64 `yaml:"stop"`
	Note  uint8   `yaml:"note"`
	Level uint8   `yaml:"level"`
}

// Duration returns how long the note sounds, in seconds.
func (n Note) Duration() float64 {
	return n.Stop - n.Start
}

// Frequency returns the equal temperament frequency of the note in Hz, with
// A4 (note 69) at 440 Hz.
func (n Note) Frequency() float64 {
	return 440 * math.Pow(2, (float64(n.Note)-69)/12)
}

// End returns the latest stop time of all notes, or 0 if there are none.
func End(notes []Note) float64 {
	var end float64
	for _, n := range notes {
		if n.Stop > end {
			end = n.Stop
		}
	}
	return end
}

// SortByStart sorts notes chronologically by start time. Notes starting at the
// same time keep their decode order.
//
// Decode itself returns notes in the order they were closed; callers that want
// chronological order must ask for it explicitly.
func SortByStart(notes []Note) {
	slices.SortStableFunc(notes, func(a, b Note) int {
		if a.Start < b.Start {
			return -1
		}
		if a.Start > b.Start {
			return +1
		}
		return 0
	})
}
