package decoder

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2/smf"
)

// FromSMF converts a parsed MIDI file into the decoder's event model.
func FromSMF(mid *smf.SMF) (*File, error) {
	ticks, ok := mid.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, fmt.Errorf("unsupported time format: %v", mid.TimeFormat)
	}
	if ticks == 0 {
		return nil, fmt.Errorf("invalid time division: %d", ticks)
	}
	f := &File{
		TimeDivision: uint16(ticks),
		Tracks:       make([]Track, 0, len(mid.Tracks)),
	}
	for _, t := range mid.Tracks {
		track := make(Track, 0, len(t))
		for _, ev := range t {
			track = append(track, convert(ev))
		}
		f.Tracks = append(f.Tracks, track)
	}
	return f, nil
}

// convert maps a single SMF event. Running status has already been expanded by
// the SMF reader, so the status byte is always first.
func convert(ev smf.Event) Event {
	out := Event{
		Delta: ev.Delta,
		Kind:  Other,
	}
	msg := ev.Message
	switch {
	case msg.Is(smf.MetaTempoMsg):
		// FF 51 03 tt tt tt
		if len(msg) < 6 {
			out.Kind = OtherMeta
			break
		}
		out.Kind = MetaTempo
		out.Tempo = uint32(msg[3])<<16 | uint32(msg[4])<<8 | uint32(msg[5])
	case msg.IsMeta():
		out.Kind = OtherMeta
	case len(msg) == 3 && msg[0]&0xF0 == 0x90:
		out.Kind = NoteOn
		out.Key, out.Velocity = msg[1], msg[2]
	case len(msg) == 3 && msg[0]&0xF0 == 0x80:
		out.Kind = NoteOff
		out.Key, out.Velocity = msg[1], msg[2]
	}
	return out
}
