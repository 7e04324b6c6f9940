package processor

import (
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/dontillman/piano-roll/internal/decoder"
)

// defaultBPM is the tempo a MIDI file plays at before its first tempo event.
const defaultBPM = 60000000.0 / decoder.DefaultTempo

// forceTempo sets the tempo.
func forceTempo(mid *smf.SMF, bpm float64) error {
	if len(mid.Tracks) == 0 {
		return nil
	}
	b := newTrackBuilder(mid)
	b.add(0, 0, smf.MetaTempo(bpm))
	err := ForEachEventWithTime(mid, func(time int64, track int, msg smf.Message) error {
		if msg.Is(smf.MetaTempoMsg) {
			return nil
		}
		b.add(track, time, msg)
		return nil
	})
	if err != nil {
		return err
	}
	b.finish(mid)
	return nil
}

// adjustTempo multiplies all tempos by factor. If the first track does not set
// a tempo at its start, the default tempo is adjusted as well.
func adjustTempo(mid *smf.SMF, factor float64) error {
	if len(mid.Tracks) == 0 {
		return nil
	}
	b := newTrackBuilder(mid)
	if !hasInitialTempo(mid) {
		b.add(0, 0, smf.MetaTempo(defaultBPM*factor))
	}
	err := ForEachEventWithTime(mid, func(time int64, track int, msg smf.Message) error {
		var bpm float64
		if msg.GetMetaTempo(&bpm) {
			msg = smf.MetaTempo(bpm * factor)
		}
		b.add(track, time, msg)
		return nil
	})
	if err != nil {
		return err
	}
	b.finish(mid)
	return nil
}

// hasInitialTempo returns whether the first track sets a tempo at tick 0.
// Tempo events at tick 0 of later tracks do not count, as the first track has
// already been played at the default tempo by then.
func hasInitialTempo(mid *smf.SMF) bool {
	found := false
	ForEachEventWithTime(mid, func(time int64, track int, msg smf.Message) error {
		if time > 0 {
			return StopIteration
		}
		if track == 0 && msg.Is(smf.MetaTempoMsg) {
			found = true
			return StopIteration
		}
		return nil
	})
	return found
}
