package processor

import (
	"gitlab.com/gomidi/midi/v2/smf"
)

// dumpTempo logs the tempo changes of the file in concise form.
func dumpTempo(mid *smf.SMF) {
	l := logger()
	if ticks, ok := mid.TimeFormat.(smf.MetricTicks); ok {
		l.Debug("time format", "ticks_per_quarter", uint16(ticks), "tracks", len(mid.Tracks))
	} else {
		l.Debug("time format", "format", mid.TimeFormat, "tracks", len(mid.Tracks))
	}
	n := 0
	ForEachEventWithTime(mid, func(time int64, track int, msg smf.Message) error {
		var bpm float64
		if !msg.GetMetaTempo(&bpm) {
			return nil
		}
		n++
		l.Debug("tempo", "tick", time, "track", track, "bpm", bpm)
		return nil
	})
	if n == 0 {
		l.Debug("no tempo events, using default", "bpm", defaultBPM)
	}
}
