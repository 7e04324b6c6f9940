// Package decoder turns the delta-timed events of a MIDI file into a flat list
// of notes with absolute start and stop times in seconds.
package decoder

// DefaultTempo is the tempo before any tempo event, in microseconds per
// quarter note (120 BPM).
const DefaultTempo = 500000

// Stats counts what happened during a decode.
type Stats struct {
	Tracks       int
	Events       int
	TempoChanges int
	// Restrikes counts note starts that ended a still sounding note of the same key.
	Restrikes int
	// OrphanNoteOffs counts note ends without a sounding note.
	OrphanNoteOffs int
	// Dropped counts notes still sounding at the end of their track. They are
	// not part of the output.
	Dropped int
}

type pending struct {
	start float64
	level uint8
	open  bool
}

// decoder holds the state of one Decode call. The tick duration is shared by
// all tracks; the pending notes belong to the current track.
type decoder struct {
	timeDivision uint16
	tick         float64
	notes        []Note
	stats        Stats
}

func (d *decoder) setTempo(tempo uint32) {
	d.tick = float64(tempo) * 1e-6 / float64(d.timeDivision)
}

func (d *decoder) track(events Track) {
	var (
		t     float64
		table [128]pending
	)
	end := func(key uint8) bool {
		p := &table[key]
		if !p.open {
			return false
		}
		d.notes = append(d.notes, Note{
			Start: p.start,
			Stop:  t,
			Note:  key,
			Level: p.level,
		})
		*p = pending{}
		return true
	}
	for _, ev := range events {
		d.stats.Events++
		t += float64(ev.Delta) * d.tick
		switch ev.Kind {
		case MetaTempo:
			d.setTempo(ev.Tempo)
			d.stats.TempoChanges++
		case NoteOn:
			if ev.Key > 127 {
				continue
			}
			if end(ev.Key) && ev.Velocity > 0 {
				d.stats.Restrikes++
			}
			if ev.Velocity > 0 {
				table[ev.Key] = pending{start: t, level: ev.Velocity, open: true}
			}
		case NoteOff:
			if ev.Key > 127 {
				continue
			}
			if !end(ev.Key) {
				d.stats.OrphanNoteOffs++
			}
		}
	}
	for _, p := range table {
		if p.open {
			d.stats.Dropped++
		}
	}
}

// Decode decodes the given tracks into notes.
//
// Tempo events apply from their position onwards to all later events, including
// those of later tracks. Notes are returned grouped by track in track order, and
// within a track in the order they ended. Notes that never end are dropped.
//
// timeDivision must be positive, and tempo events must not be zero.
func Decode(timeDivision uint16, tracks []Track) []Note {
	notes, _ := DecodeWithStats(timeDivision, tracks)
	return notes
}

// DecodeWithStats is like Decode, but also reports statistics.
func DecodeWithStats(timeDivision uint16, tracks []Track) ([]Note, Stats) {
	d := decoder{
		timeDivision: timeDivision,
	}
	d.setTempo(DefaultTempo)
	for _, t := range tracks {
		d.stats.Tracks++
		d.track(t)
	}
	return d.notes, d.stats
}

// DecodeFile decodes a whole file.
func DecodeFile(f *File) []Note {
	return Decode(f.TimeDivision, f.Tracks)
}
