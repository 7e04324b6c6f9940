package processor

import (
	"errors"

	"gitlab.com/gomidi/midi/v2/smf"
)

// StopIteration can be returned to return without failure.
var StopIteration = errors.New("ForEachEventWithTime: StopIteration")

// ForEachEventWithTime runs the given function for each event of all tracks in
// order of absolute time. At the same tick, note ends come before other events,
// and otherwise lower tracks come first. End of track events are skipped.
func ForEachEventWithTime(mid *smf.SMF, yield func(time int64, track int, msg smf.Message) error) error {
	// trackPos is the index of the NEXT event from each track.
	trackPos := make([]int, len(mid.Tracks))
	// trackTime is the time of the LAST event from each track.
	trackTime := make([]int64, len(mid.Tracks))
	for {
		earliestTrack := -1
		var earliestTime int64
		var earliestNoteOff bool
		for i, t := range mid.Tracks {
			p := trackPos[i]
			if p >= len(t) {
				continue
			}
			time := trackTime[i] + int64(t[p].Delta)
			noteOff := t[p].Message.GetNoteEnd(nil, nil)
			if earliestTrack < 0 || time < earliestTime || (time == earliestTime && noteOff && !earliestNoteOff) {
				earliestTime = time
				earliestTrack = i
				earliestNoteOff = noteOff
			}
		}
		if earliestTrack < 0 {
			return nil
		}
		msg := mid.Tracks[earliestTrack][trackPos[earliestTrack]].Message
		if !msg.Is(smf.MetaEndOfTrackMsg) {
			err := yield(earliestTime, earliestTrack, msg)
			if errors.Is(err, StopIteration) {
				return nil
			}
			if err != nil {
				return err
			}
		}
		trackPos[earliestTrack]++
		trackTime[earliestTrack] = earliestTime
	}
}

// trackBuilder turns absolute-time events back into delta-timed tracks.
type trackBuilder struct {
	tracks []smf.Track
	times  []int64
	ends   []int64
}

// newTrackBuilder prepares one output track per input track. Each output track
// ends at the same tick as its input track.
func newTrackBuilder(mid *smf.SMF) *trackBuilder {
	b := &trackBuilder{
		tracks: make([]smf.Track, len(mid.Tracks)),
		times:  make([]int64, len(mid.Tracks)),
		ends:   make([]int64, len(mid.Tracks)),
	}
	for i, t := range mid.Tracks {
		for _, ev := range t {
			b.ends[i] += int64(ev.Delta)
		}
	}
	return b
}

func (b *trackBuilder) add(track int, time int64, msg smf.Message) {
	b.tracks[track] = append(b.tracks[track], smf.Event{
		Delta:   uint32(time - b.times[track]),
		Message: msg,
	})
	b.times[track] = time
}

// finish closes all tracks and replaces the tracks of mid.
func (b *trackBuilder) finish(mid *smf.SMF) {
	for i := range b.tracks {
		end := b.ends[i]
		if end < b.times[i] {
			end = b.times[i]
		}
		b.tracks[i].Close(uint32(end - b.times[i]))
	}
	mid.Tracks = b.tracks
}
