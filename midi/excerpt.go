package midi

import (
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"
)

// BarTicks is the length of a bar in ticks, or 0 when the file does not use
// metric time.
func BarTicks(mf *smf.SMF, beatsPerBar uint8) int64 {
	ticks, ok := mf.TimeFormat.(smf.MetricTicks)
	if !ok {
		return 0
	}
	return int64(ticks.Ticks4th()) * int64(beatsPerBar)
}

type placedEvent struct {
	at  int64
	msg smf.Message
}

func isEndOfTrack(msg smf.Message) bool {
	return len(msg) >= 2 && msg[0] == 0xFF && msg[1] == 0x2F
}

// Excerpt keeps what sounds in [from, to) ticks of every track, moved to
// start at tick 0. Notes still held at to are released there. Other events
// before from are pulled to tick 0. A to of 0 means the end of the file.
func Excerpt(mf *smf.SMF, from, to int64) *smf.SMF {
	var res *smf.SMF
	switch mf.Format() {
	case 0:
		res = smf.New()
	case 2:
		res = smf.NewSMF2()
	default:
		res = smf.NewSMF1()
	}
	res.TimeFormat = mf.TimeFormat

	for _, track := range mf.Tracks {
		var placed []placedEvent
		var absTicks int64
		for _, evt := range track {
			absTicks += int64(evt.Delta)
			at := absTicks
			if isEndOfTrack(evt.Message) {
				continue
			}
			if _, on, ok := noteEvent(evt.Message); ok && !on {
				if at < from {
					continue
				}
				if to > 0 && at > to {
					at = to
				}
			} else {
				if to > 0 && at >= to {
					continue
				}
				if at < from {
					if ok {
						continue
					}
					at = from
				}
			}
			placed = append(placed, placedEvent{at: at - from, msg: evt.Message})
		}

		sort.SliceStable(placed, func(i, j int) bool {
			return placed[i].at < placed[j].at
		})

		var newTrack smf.Track
		var prev int64
		for _, p := range placed {
			newTrack.Add(uint32(p.at-prev), p.msg)
			prev = p.at
		}
		newTrack.Close(0)
		res.Tracks = append(res.Tracks, newTrack)
	}

	return res
}
