package chordpro

import (
	"fmt"
	"strings"

	"github.com/jsphweid/songbook/chord"
	"github.com/jsphweid/songbook/pitch"
)

// Part is either a literal text run or a chord.
type Part struct {
	Text  string       `json:"text,omitempty"`
	Chord *chord.Chord `json:"chord,omitempty"`
}

func TextPart(text string) Part {
	return Part{Text: text}
}

func ChordPart(c chord.Chord) Part {
	return Part{Chord: &c}
}

func (p Part) IsChord() bool {
	return p.Chord != nil
}

func (p Part) String() string {
	if p.IsChord() {
		return "[" + p.Chord.String() + "]"
	}
	return p.Text
}

type Line struct {
	Parts []Part `json:"parts"`
}

// ParseLine splits inline bracket chords from the lyric text. A missing "]"
// makes the rest of the segment part of the chord label.
func ParseLine(text string) (Line, error) {
	splits := strings.Split(text, "[")
	var line Line
	if splits[0] != "" {
		line.Parts = append(line.Parts, TextPart(splits[0]))
	}

	for _, split := range splits[1:] {
		label, rest, _ := strings.Cut(split, "]")
		c, err := chord.Parse(strings.TrimSpace(label))
		if err != nil {
			return Line{}, fmt.Errorf("parse chord %q: %w", label, err)
		}
		line.Parts = append(line.Parts, ChordPart(c))
		if rest != "" {
			line.Parts = append(line.Parts, TextPart(rest))
		}
	}
	return line, nil
}

func (l Line) String() string {
	var sb strings.Builder
	for _, part := range l.Parts {
		sb.WriteString(part.String())
	}
	return sb.String()
}

func (l Line) Transpose(interval pitch.Interval) Line {
	parts := make([]Part, len(l.Parts))
	for i, part := range l.Parts {
		if part.IsChord() {
			parts[i] = ChordPart(part.Chord.Transpose(interval))
		} else {
			parts[i] = part
		}
	}
	return Line{Parts: parts}
}

func (l Line) Chords() []chord.Chord {
	var res []chord.Chord
	for _, part := range l.Parts {
		if part.IsChord() {
			res = append(res, *part.Chord)
		}
	}
	return res
}

// Lyrics is the line with every chord removed.
func (l Line) Lyrics() string {
	var sb strings.Builder
	for _, part := range l.Parts {
		if !part.IsChord() {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}
