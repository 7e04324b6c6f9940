package processor

import (
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"
)

// sortNoteOffFirst reorders the events of each track so that at any tick, note
// ends come before everything else. This turns a note-on/note-off pair of the
// same key at the same tick into a restart instead of a zero length note.
func sortNoteOffFirst(mid *smf.SMF) {
	for _, t := range mid.Tracks {
		sortNoteOffFirstTrack(t)
	}
}

func sortNoteOffFirstTrack(track smf.Track) {
	// A group is one event with nonzero delta followed by all events with zero
	// delta. Within a group, sort stably by note end first, then restore the
	// deltas.
	fixup := func(begin, end int) {
		if end <= begin+1 {
			return
		}
		delta := track[begin].Delta
		group := track[begin:end]
		sort.SliceStable(group, func(i, j int) bool {
			iOff := group[i].Message.GetNoteEnd(nil, nil)
			jOff := group[j].Message.GetNoteEnd(nil, nil)
			return iOff && !jOff
		})
		group[0].Delta = delta
		for i := 1; i < len(group); i++ {
			group[i].Delta = 0
		}
	}

	begin := 0
	for i, ev := range track {
		if ev.Delta != 0 {
			fixup(begin, i)
			begin = i
		}
	}
	fixup(begin, len(track))
}
