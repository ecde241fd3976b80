package chord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/songbook/pitch"
)

// Chord is a root, a quality and an optional slash bass. Raw holds the
// suffix text when it did not match any known quality; Quality is then
// meaningless.
type Chord struct {
	Root    pitch.Tone  `json:"root"`
	Quality Quality     `json:"quality"`
	Raw     string      `json:"raw,omitempty"`
	Bass    *pitch.Tone `json:"bass,omitempty"`
}

func Parse(label string) (Chord, error) {
	var c Chord

	if i := strings.LastIndex(label, "/"); i >= 0 {
		if bass, err := pitch.ParseTone(label[i+1:]); err == nil {
			c.Bass = &bass
			label = label[:i]
		}
	}

	split := 1
	if len(label) > 1 && (label[1] == '#' || label[1] == 'b') {
		split = 2
	}
	if len(label) < split {
		return Chord{}, &pitch.UnknownToneLabelError{Label: label}
	}

	root, err := pitch.ParseTone(label[:split])
	if err != nil {
		return Chord{}, err
	}
	c.Root = root

	suffix := label[split:]
	if q, ok := LookupQuality(suffix); ok {
		c.Quality = q
	} else {
		c.Raw = suffix
	}
	return c, nil
}

func MustParse(label string) Chord {
	c, err := Parse(label)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Chord) IsKnown() bool {
	return c.Raw == ""
}

func (c Chord) QualityText() string {
	if !c.IsKnown() {
		return c.Raw
	}
	return c.Quality.String()
}

func (c Chord) HasSlashBass() bool {
	return c.Bass != nil && *c.Bass != c.Root
}

// BassTone is the lowest sounding tone: the slash bass if given, else the root.
func (c Chord) BassTone() pitch.Tone {
	if c.Bass != nil {
		return *c.Bass
	}
	return c.Root
}

func (c Chord) String() string {
	res := c.Root.String() + c.QualityText()
	if c.HasSlashBass() {
		res += "/" + c.Bass.String()
	}
	return res
}

func (c Chord) Transpose(interval pitch.Interval) Chord {
	res := Chord{
		Root:    c.Root.Transpose(interval),
		Quality: c.Quality,
		Raw:     c.Raw,
	}
	if c.Bass != nil {
		bass := c.Bass.Transpose(interval)
		res.Bass = &bass
	}
	return res
}

func (c Chord) Equal(other Chord) bool {
	if c.Root != other.Root || c.Raw != other.Raw {
		return false
	}
	if c.IsKnown() && c.Quality != other.Quality {
		return false
	}
	return c.BassTone() == other.BassTone()
}

// Tones derives the chord tones from the quality, slash bass first.
// An unrecognized quality yields only the root (and bass).
func (c Chord) Tones() []pitch.Tone {
	var res []pitch.Tone
	seen := make(map[pitch.Tone]bool)
	add := func(t pitch.Tone) {
		if !seen[t] {
			seen[t] = true
			res = append(res, t)
		}
	}

	if c.HasSlashBass() {
		add(*c.Bass)
	}
	if !c.IsKnown() {
		add(c.Root)
		return res
	}
	for _, interval := range c.Quality.Intervals() {
		add(c.Root.Transpose(interval))
	}
	return res
}

func (c Chord) Key() string {
	var notes []uint8
	for _, t := range c.Tones() {
		notes = append(notes, uint8(t))
	}
	return CreateChordKey(notes)
}

// CreateChordKey joins the sorted notes with "-", e.g. "0-4-7".
func CreateChordKey(notes []uint8) string {
	sorted := append([]uint8(nil), notes...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	var res string
	for i, note := range sorted {
		res += fmt.Sprintf("%v", note)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}
