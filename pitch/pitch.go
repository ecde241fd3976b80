package pitch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnknownToneLabel = errors.New("unknown tone label")

type UnknownToneLabelError struct {
	Label string
}

func (e *UnknownToneLabelError) Error() string {
	return fmt.Sprintf("unknown tone label %q", e.Label)
}

func (e *UnknownToneLabelError) Unwrap() error {
	return ErrUnknownToneLabel
}

var tones = map[string]int{
	"C":  0,
	"C#": 1,
	"Db": 1,
	"D":  2,
	"D#": 3,
	"Eb": 3,
	"E":  4,
	"F":  5,
	"F#": 6,
	"Gb": 6,
	"G":  7,
	"G#": 8,
	"Ab": 8,
	"A":  9,
	"A#": 10,
	"Bb": 10,
	"Hb": 10,
	"B":  11,
	"H":  11,
}

var chromaticScale = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var intervals = [13]string{"P1", "m2", "M2", "m3", "M3", "P4", "TT", "P5", "m6", "M6", "m7", "M7", "P8"}

// Tone is a pitch class in [0, 11].
type Tone int

func NewTone(value int) Tone {
	v := value % 12
	if v < 0 {
		v += 12
	}
	return Tone(v)
}

func ParseTone(label string) (Tone, error) {
	v, ok := tones[label]
	if !ok {
		return 0, &UnknownToneLabelError{Label: label}
	}
	return Tone(v), nil
}

func (t Tone) Transpose(i Interval) Tone {
	return NewTone(int(t) + int(i))
}

// Distance is the upward interval from t to other, in [0, 11].
func (t Tone) Distance(other Tone) Interval {
	return Interval(NewTone(int(other) - int(t)))
}

func (t Tone) String() string {
	return chromaticScale[NewTone(int(t))]
}

func (t Tone) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tone) UnmarshalText(text []byte) error {
	parsed, err := ParseTone(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Interval is a signed semitone count. It is never reduced.
type Interval int

func (i Interval) String() string {
	n := int(i)
	var label string
	if n < 0 {
		n = -n
		label = "-"
	}
	if n < len(intervals) {
		return label + intervals[n]
	}
	return label + strconv.Itoa(n)
}

// ParseInterval accepts a signed semitone count ("5", "-3", "+2") or a
// signed interval name ("M3", "-P5").
func ParseInterval(text string) (Interval, error) {
	s := strings.TrimSpace(text)
	if n, err := strconv.Atoi(s); err == nil {
		return Interval(n), nil
	}

	sign := 1
	switch {
	case strings.HasPrefix(s, "-"):
		sign = -1
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	for n, name := range intervals {
		if name == s {
			return Interval(sign * n), nil
		}
	}
	return 0, fmt.Errorf("invalid interval %q", text)
}
