package decoder

// Kind is the type of an Event as far as the decoder cares.
type Kind uint8

const (
	// Other is any channel-voice or system event the decoder skips.
	Other Kind = iota
	// NoteOn starts a note. Velocity 0 ends it instead.
	NoteOn
	// NoteOff ends a note.
	NoteOff
	// MetaTempo sets the tempo in microseconds per quarter note.
	MetaTempo
	// OtherMeta is any meta event other than a tempo change.
	OtherMeta
)

func (k Kind) String() string {
	switch k {
	case NoteOn:
		return "NoteOn"
	case NoteOff:
		return "NoteOff"
	case MetaTempo:
		return "MetaTempo"
	case OtherMeta:
		return "OtherMeta"
	default:
		return "Other"
	}
}

// Event is a single delta-timed event of a track.
type Event struct {
	// Delta is the number of ticks since the previous event of the same track.
	Delta uint32
	Kind  Kind

	// Key and Velocity apply to NoteOn and NoteOff.
	Key      uint8
	Velocity uint8

	// Tempo applies to MetaTempo, in microseconds per quarter note.
	Tempo uint32
}

// Track is an ordered sequence of events.
type Track []Event

// File is a parsed MIDI file reduced to what the decoder needs.
type File struct {
	// TimeDivision is the number of ticks per quarter note. Must be positive.
	TimeDivision uint16
	Tracks       []Track
}
