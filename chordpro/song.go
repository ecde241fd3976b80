package chordpro

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/songbook/chord"
	"github.com/jsphweid/songbook/pitch"
)

type Song struct {
	Title    string    `json:"title"`
	Artist   string    `json:"artist"`
	Capo     *int      `json:"capo,omitempty"`
	Sections []Section `json:"sections"`
}

// Parse reads a whole document. Tagged sections run from their start_of_
// tag to the matching end_of_ tag and absorb blank lines; outside of them a
// blank line ends the current paragraph.
func Parse(text string) (Song, error) {
	var song Song
	var block []string
	var blockStart int
	inTagged := false

	flush := func() error {
		if len(block) == 0 {
			return nil
		}
		s, err := ParseSection(strings.Join(block, "\n"))
		block = nil
		if err != nil {
			return fmt.Errorf("line %d: %w", blockStart, err)
		}
		if s.Label != "" || len(s.Lines) > 0 {
			song.Sections = append(song.Sections, s)
		}
		return nil
	}

	text = strings.ReplaceAll(text, "\r", "")
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		if d, ok := parseDirective(line); ok {
			if _, ok := d.opens(); ok {
				if err := flush(); err != nil {
					return Song{}, err
				}
				block, blockStart = []string{line}, i+1
				inTagged = true
				continue
			}
			if _, ok := d.closes(); ok {
				if inTagged {
					block = append(block, line)
					inTagged = false
					if err := flush(); err != nil {
						return Song{}, err
					}
				}
				continue
			}
			switch d.name {
			case "title":
				song.Title = d.value
			case "artist":
				song.Artist = d.value
			case "capo":
				if capo, err := strconv.Atoi(d.value); err == nil {
					song.Capo = &capo
				}
			}
			continue
		}

		if line == "" {
			if !inTagged {
				if err := flush(); err != nil {
					return Song{}, err
				}
			}
			continue
		}
		// lines are numbered from 1
		if _, err := ParseLine(raw); err != nil {
			return Song{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(block) == 0 {
			blockStart = i + 1
		}
		block = append(block, raw)
	}

	if err := flush(); err != nil {
		return Song{}, err
	}
	return song, nil
}

func MustParse(text string) Song {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Song) String() string {
	blocks := []string{
		fmt.Sprintf("{title: %s}", s.Title),
		fmt.Sprintf("{artist: %s}", s.Artist),
	}
	if s.Capo != nil {
		blocks = append(blocks, fmt.Sprintf("{capo: %d}", *s.Capo))
	}
	for _, section := range s.Sections {
		blocks = append(blocks, section.String())
	}
	return strings.Join(blocks, "\n\n")
}

func (s Song) Transpose(interval pitch.Interval) Song {
	sections := make([]Section, len(s.Sections))
	for i, section := range s.Sections {
		sections[i] = section.Transpose(interval)
	}
	res := Song{Title: s.Title, Artist: s.Artist, Sections: sections}
	if s.Capo != nil {
		capo := *s.Capo
		res.Capo = &capo
	}
	return res
}

// Chords lists the distinct chords in order of first appearance.
func (s Song) Chords() []chord.Chord {
	var res []chord.Chord
	seen := make(map[string]bool)
	for _, section := range s.Sections {
		for _, line := range section.Lines {
			for _, c := range line.Chords() {
				if !seen[c.String()] {
					seen[c.String()] = true
					res = append(res, c)
				}
			}
		}
	}
	return res
}
