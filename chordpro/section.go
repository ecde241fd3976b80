package chordpro

import (
	"strings"

	"github.com/jsphweid/songbook/pitch"
)

// Section is a group of lines. Label is empty for an untagged paragraph;
// Title is only set from a "{start_of_<label>: <title>}" opener.
type Section struct {
	Label string `json:"label,omitempty"`
	Title string `json:"title,omitempty"`
	Lines []Line `json:"lines"`
}

// ParseSection parses one section's line range. A leading start_of_ tag
// sets the label and title; any other tag and blank lines are skipped.
func ParseSection(text string) (Section, error) {
	var s Section
	first := true
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimRight(raw, " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if d, ok := parseDirective(line); ok {
			if label, ok := d.opens(); ok && first {
				s.Label = label
				s.Title = d.value
			}
			first = false
			continue
		}
		first = false

		parsed, err := ParseLine(line)
		if err != nil {
			return Section{}, err
		}
		s.Lines = append(s.Lines, parsed)
	}
	return s, nil
}

func (s Section) String() string {
	var lines []string
	if s.Label != "" {
		tag := startPrefix + s.Label
		if s.Title != "" {
			tag += ": " + s.Title
		}
		lines = append(lines, "{"+tag+"}")
	}
	for _, line := range s.Lines {
		lines = append(lines, line.String())
	}
	if s.Label != "" {
		lines = append(lines, "{"+endPrefix+s.Label+"}")
	}
	return strings.Join(lines, "\n")
}

func (s Section) Transpose(interval pitch.Interval) Section {
	lines := make([]Line, len(s.Lines))
	for i, line := range s.Lines {
		lines[i] = line.Transpose(interval)
	}
	return Section{Label: s.Label, Title: s.Title, Lines: lines}
}
