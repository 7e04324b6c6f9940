package decoder

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func genEvent(kinds ...interface{}) gopter.Gen {
	return gopter.CombineGens(
		gen.UInt32Range(0, 960),
		gen.OneConstOf(kinds...),
		gen.UInt8Range(0, 127),
		gen.UInt8Range(0, 127),
		gen.UInt32Range(1, 2000000),
	).Map(func(v []interface{}) Event {
		return Event{
			Delta:    v[0].(uint32),
			Kind:     v[1].(Kind),
			Key:      v[2].(uint8),
			Velocity: v[3].(uint8),
			Tempo:    v[4].(uint32),
		}
	})
}

func genTrack() gopter.Gen {
	return gen.SliceOf(genEvent(Other, NoteOn, NoteOn, NoteOff, MetaTempo, OtherMeta))
}

func genTrackWithoutTempo() gopter.Gen {
	return gen.SliceOf(genEvent(Other, NoteOn, NoteOff, OtherMeta))
}

func TestDecodeProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("notes have valid keys and nonzero levels", prop.ForAll(
		func(td uint16, a, b []Event) bool {
			for _, n := range Decode(td, []Track{a, b}) {
				if n.Note > 127 || n.Level < 1 || n.Level > 127 {
					return false
				}
			}
			return true
		},
		gen.UInt16Range(1, 960), genTrack(), genTrack(),
	))

	properties.Property("notes never stop before they start", prop.ForAll(
		func(td uint16, a []Event) bool {
			for _, n := range Decode(td, []Track{a}) {
				if n.Stop < n.Start {
					return false
				}
			}
			return true
		},
		gen.UInt16Range(1, 960), genTrack(),
	))

	properties.Property("decoding is deterministic", prop.ForAll(
		func(td uint16, a, b []Event) bool {
			tracks := []Track{a, b}
			return reflect.DeepEqual(Decode(td, tracks), Decode(td, tracks))
		},
		gen.UInt16Range(1, 960), genTrack(), genTrack(),
	))

	properties.Property("every started note is emitted or dropped", prop.ForAll(
		func(td uint16, a, b []Event) bool {
			started := 0
			for _, tr := range [][]Event{a, b} {
				for _, ev := range tr {
					if ev.Kind == NoteOn && ev.Velocity > 0 {
						started++
					}
				}
			}
			notes, stats := DecodeWithStats(td, []Track{a, b})
			return len(notes)+stats.Dropped == started
		},
		gen.UInt16Range(1, 960), genTrack(), genTrack(),
	))

	properties.Property("without tempo events tracks decode independently", prop.ForAll(
		func(td uint16, a, b []Event) bool {
			both := Decode(td, []Track{a, b})
			separate := append(Decode(td, []Track{a}), Decode(td, []Track{b})...)
			if len(both) == 0 && len(separate) == 0 {
				return true
			}
			return reflect.DeepEqual(both, separate)
		},
		gen.UInt16Range(1, 960), genTrackWithoutTempo(), genTrackWithoutTempo(),
	))

	properties.TestingRun(t)
}
