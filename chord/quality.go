package chord

import (
	"fmt"
	"strings"

	"github.com/jsphweid/songbook/pitch"
)

type Quality int

const (
	Major Quality = iota
	Minor
	Dominant7
	Major7
	Minor7
	MinorMajor7
	Diminished
	Augmented
	Diminished7
	HalfDiminished7
	Sus2
	Sus4
	Power
	Add4
	MinorAdd4
	Add6
	MinorAdd6
	Dominant7Sharp5
	Major9
	Dominant9
	Dominant9Sus4
	Dominant11
)

type qualityInfo struct {
	name      string
	intervals []pitch.Interval
	// first alias is the display form
	aliases []string
}

var qualities = [...]qualityInfo{
	Major:           {"major", []pitch.Interval{0, 4, 7}, []string{"", "maj", "major"}},
	Minor:           {"minor", []pitch.Interval{0, 3, 7}, []string{"m", "min", "minor"}},
	Dominant7:       {"dominant7", []pitch.Interval{0, 4, 7, 10}, []string{"7", "dom7"}},
	Major7:          {"major7", []pitch.Interval{0, 4, 7, 11}, []string{"Maj7", "major7", "M7"}},
	Minor7:          {"minor7", []pitch.Interval{0, 3, 7, 10}, []string{"m7", "min7", "minor7"}},
	MinorMajor7:     {"minor-major7", []pitch.Interval{0, 3, 7, 11}, []string{"minMaj7", "mMaj7"}},
	Diminished:      {"diminished", []pitch.Interval{0, 3, 6}, []string{"dim", "diminished"}},
	Augmented:       {"augmented", []pitch.Interval{0, 4, 8}, []string{"aug", "augmented", "+"}},
	Diminished7:     {"diminished7", []pitch.Interval{0, 3, 6, 9}, []string{"dim7", "diminished7"}},
	HalfDiminished7: {"half-diminished7", []pitch.Interval{0, 3, 6, 10}, []string{"min7b5", "min7flat5", "half-diminished", "m7b5"}},
	Sus2:            {"sus2", []pitch.Interval{0, 2, 7}, []string{"sus2"}},
	Sus4:            {"sus4", []pitch.Interval{0, 5, 7}, []string{"sus4", "sus"}},
	Power:           {"power", []pitch.Interval{0, 7}, []string{"5"}},
	Add4:            {"add4", []pitch.Interval{0, 4, 5, 7}, []string{"add4"}},
	MinorAdd4:       {"minor-add4", []pitch.Interval{0, 3, 5, 7}, []string{"minAdd4", "mAdd4"}},
	Add6:            {"add6", []pitch.Interval{0, 4, 7, 9}, []string{"add6", "6"}},
	MinorAdd6:       {"minor-add6", []pitch.Interval{0, 3, 7, 9}, []string{"minAdd6", "mAdd6", "m6"}},
	Dominant7Sharp5: {"dominant7-sharp5", []pitch.Interval{0, 4, 8, 10}, []string{"7#5", "7+5", "aug7"}},
	Major9:          {"major9", []pitch.Interval{0, 4, 7, 11, 14}, []string{"Maj9"}},
	Dominant9:       {"dominant9", []pitch.Interval{0, 4, 7, 10, 14}, []string{"9", "dom9"}},
	Dominant9Sus4:   {"dominant9-sus4", []pitch.Interval{0, 5, 7, 10, 14}, []string{"9sus4"}},
	Dominant11:      {"dominant11", []pitch.Interval{0, 4, 7, 10, 14, 17}, []string{"11", "dom11"}},
}

var (
	exactAliases  = make(map[string]Quality)
	foldedAliases = make(map[string]Quality)
	qualityNames  = make(map[string]Quality)
)

func init() {
	for q, info := range qualities {
		qualityNames[info.name] = Quality(q)
		for _, alias := range info.aliases {
			exactAliases[alias] = Quality(q)
		}
	}
	// an exact alias wins over a case-folded collision ("m7" vs "M7")
	for q, info := range qualities {
		for _, alias := range info.aliases {
			folded := strings.ToLower(alias)
			if exact, ok := exactAliases[folded]; ok {
				foldedAliases[folded] = exact
				continue
			}
			if _, ok := foldedAliases[folded]; !ok {
				foldedAliases[folded] = Quality(q)
			}
		}
	}
}

// LookupQuality matches a chord suffix against the alias table, exact case
// first and then case-insensitively.
func LookupQuality(suffix string) (Quality, bool) {
	if q, ok := exactAliases[suffix]; ok {
		return q, true
	}
	q, ok := foldedAliases[strings.ToLower(suffix)]
	return q, ok
}

func Qualities() []Quality {
	res := make([]Quality, len(qualities))
	for i := range qualities {
		res[i] = Quality(i)
	}
	return res
}

func (q Quality) valid() bool {
	return q >= 0 && int(q) < len(qualities)
}

// Intervals are the semitone offsets of the chord tones from the root.
func (q Quality) Intervals() []pitch.Interval {
	if !q.valid() {
		return nil
	}
	return append([]pitch.Interval(nil), qualities[q].intervals...)
}

func (q Quality) Aliases() []string {
	if !q.valid() {
		return nil
	}
	return append([]string(nil), qualities[q].aliases...)
}

func (q Quality) Name() string {
	if !q.valid() {
		return fmt.Sprintf("quality(%d)", int(q))
	}
	return qualities[q].name
}

func (q Quality) String() string {
	if !q.valid() {
		return ""
	}
	return qualities[q].aliases[0]
}

// pitchClassMask is the set of pitch classes of the quality built on root.
func (q Quality) pitchClassMask(root pitch.Tone) uint16 {
	var mask uint16
	for _, interval := range q.Intervals() {
		mask |= 1 << uint(root.Transpose(interval))
	}
	return mask
}

func (q Quality) MarshalText() ([]byte, error) {
	if !q.valid() {
		return nil, fmt.Errorf("invalid chord quality %d", int(q))
	}
	return []byte(q.Name()), nil
}

func (q *Quality) UnmarshalText(text []byte) error {
	parsed, ok := qualityNames[string(text)]
	if !ok {
		return fmt.Errorf("unknown chord quality name %q", string(text))
	}
	*q = parsed
	return nil
}
