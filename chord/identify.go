package chord

import (
	"sort"

	"github.com/jsphweid/songbook/pitch"
)

// Identify names the chord sounded by the given MIDI notes. The lowest note
// is tried as the root first; when another root matches, the lowest note
// becomes the slash bass.
func Identify(notes []uint8) (Chord, bool) {
	if len(notes) == 0 {
		return Chord{}, false
	}

	sorted := append([]uint8(nil), notes...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	var set uint16
	var roots []pitch.Tone
	for _, note := range sorted {
		t := pitch.NewTone(int(note))
		if set&(1<<uint(t)) == 0 {
			roots = append(roots, t)
		}
		set |= 1 << uint(t)
	}
	lowest := roots[0]

	for _, root := range roots {
		for _, q := range Qualities() {
			if q.pitchClassMask(root) != set {
				continue
			}
			c := Chord{Root: root, Quality: q}
			if root != lowest {
				bass := lowest
				c.Bass = &bass
			}
			return c, true
		}
	}
	return Chord{}, false
}
