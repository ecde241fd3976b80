package tab

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/jsphweid/songbook/chord"
	"github.com/jsphweid/songbook/chordpro"
)

var (
	capoPattern = regexp.MustCompile(`(?i)capo:?[ \t]*(\d+)`)
	capoLine    = regexp.MustCompile(`(?i)^\s*capo:?[ \t]*\d+`)
)

// Result is a normalized song plus every anomaly met on the way.
type Result struct {
	Song     chordpro.Song `json:"song"`
	Warnings []Warning     `json:"warnings,omitempty"`
}

type normalizer struct {
	lines    []string
	warnings []Warning
}

func (n *normalizer) warn(kind WarningKind, line int, format string, args ...any) {
	n.warnings = append(n.warnings, Warning{Kind: kind, Line: line, Detail: fmt.Sprintf(format, args...)})
}

// Normalize converts a tab site export into a song. It never fails: every
// anomaly degrades the output and is reported as a warning.
func Normalize(raw, title, artist string) Result {
	n := &normalizer{}
	song := chordpro.Song{Title: title, Artist: artist}

	if title == "" {
		n.warn(MissingMetadata, 0, "song title is empty")
	}
	if artist == "" {
		n.warn(MissingMetadata, 0, "artist name is empty")
	}
	if strings.TrimSpace(raw) == "" {
		n.warn(MissingContent, 0, "tab content is empty")
		return Result{Song: song, Warnings: n.warnings}
	}

	if m := capoPattern.FindStringSubmatch(raw); m != nil {
		if capo, err := strconv.Atoi(m[1]); err == nil {
			song.Capo = &capo
		}
	}

	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	n.lines = strings.Split(text, "\n")

	// lines before the first marker form an untagged preamble
	var label, sectionTitle string
	start := 0
	for i, line := range n.lines {
		if !isMarker(line) {
			continue
		}
		if s, ok := n.section(label, sectionTitle, start, i); ok {
			song.Sections = append(song.Sections, s)
		}

		var known bool
		label, sectionTitle, known = classifyMarker(line)
		if !known {
			n.warn(UnknownMarker, i+1, "unknown section marker %q, using %s", strings.TrimSpace(line), defaultLabel)
		}
		start = i + 1
	}
	if s, ok := n.section(label, sectionTitle, start, len(n.lines)); ok {
		song.Sections = append(song.Sections, s)
	}

	return Result{Song: song, Warnings: n.warnings}
}

// section merges lines[start:end]. Empty ranges yield no section.
func (n *normalizer) section(label, title string, start, end int) (chordpro.Section, bool) {
	s := chordpro.Section{Label: label, Title: title}
	for i := start; i < end; i++ {
		line := strings.TrimRight(n.lines[i], " \t")
		if strings.TrimSpace(line) == "" || isCapoLine(line) {
			continue
		}

		switch {
		case strings.Contains(line, tabOpen):
			chords := strings.Replace(line, tabOpen, "", 1)
			if !strings.Contains(chords, chOpen) {
				s.Lines = appendText(s.Lines, chords)
				continue
			}
			lyricAt, ok := n.lyricFor(chords, i, end)
			if !ok {
				s.Lines = append(s.Lines, n.inline(stripTabTags(chords), i))
				continue
			}
			s.Lines = append(s.Lines, n.paired(stripTabTags(chords), stripTabTags(n.lines[lyricAt]), i))
			i = lyricAt
		case strings.Contains(line, chOpen):
			s.Lines = append(s.Lines, n.inline(stripTabTags(line), i))
		default:
			s.Lines = appendText(s.Lines, line)
		}
	}
	return s, len(s.Lines) > 0
}

// lyricFor finds the lyric line annotated by the chord line at index i. A
// chord line whose [tab] wrapper is still open always pairs with the next
// line; a closed one only pairs with a following plain lyric line.
func (n *normalizer) lyricFor(chords string, i, end int) (int, bool) {
	next := i + 1
	if next >= end {
		return 0, false
	}
	if !strings.Contains(chords, tabClose) {
		return next, true
	}
	line := n.lines[next]
	if strings.TrimSpace(line) == "" || strings.Contains(line, chOpen) || strings.Contains(line, tabOpen) || isMarker(line) {
		return 0, false
	}
	return next, true
}

// isCapoLine reports whether the line only declares the capo.
func isCapoLine(line string) bool {
	return capoLine.MatchString(line) && !strings.Contains(line, chOpen)
}

func appendText(lines []chordpro.Line, text string) []chordpro.Line {
	text = stripTabTags(text)
	if strings.TrimSpace(text) == "" {
		return lines
	}
	return append(lines, textLine(text))
}

func textLine(text string) chordpro.Line {
	return chordpro.Line{Parts: []chordpro.Part{chordpro.TextPart(text)}}
}

// validChords blanks out every chord token that does not parse, keeping
// the offsets of the remaining tokens intact.
func (n *normalizer) validChords(chordLine string, i int) string {
	bare := []rune(stripChordTags(chordLine))
	for _, start := range fieldStarts(string(bare)) {
		end := start
		for end < len(bare) && !unicode.IsSpace(bare[end]) {
			end++
		}
		label := string(bare[start:end])
		if _, err := chord.Parse(label); err != nil {
			n.warn(BadChord, i+1, "dropping chord %q: %v", label, err)
			for k := start; k < end; k++ {
				bare[k] = ' '
			}
		}
	}
	return string(bare)
}

func (n *normalizer) paired(chordLine, lyricLine string, i int) chordpro.Line {
	merged, ok := Splice(n.validChords(chordLine, i), lyricLine)
	if !ok {
		n.warn(SpliceMismatch, i+1, "chord offsets and labels disagree in %q, aligning by label", strings.TrimSpace(stripChordTags(chordLine)))
	}
	return n.parse(merged, lyricLine, i)
}

func (n *normalizer) inline(line string, i int) chordpro.Line {
	merged := chordTag.ReplaceAllStringFunc(line, func(tag string) string {
		label := chordTag.FindStringSubmatch(tag)[1]
		if _, err := chord.Parse(strings.TrimSpace(label)); err != nil {
			n.warn(BadChord, i+1, "keeping %q as text: %v", label, err)
			return label
		}
		return "[" + strings.TrimSpace(label) + "]"
	})
	return n.parse(merged, stripChordTags(line), i)
}

func (n *normalizer) parse(merged, fallback string, i int) chordpro.Line {
	line, err := chordpro.ParseLine(merged)
	if err != nil {
		n.warn(BadChord, i+1, "keeping line as text: %v", err)
		return textLine(fallback)
	}
	return line
}
