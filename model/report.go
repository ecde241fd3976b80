package model

import (
	"github.com/jsphweid/songbook/chordpro"
	"github.com/jsphweid/songbook/tab"
)

// ChordUsage counts how often a chord label is played across a songbook.
type ChordUsage struct {
	Chord string `json:"chord"`
	Plays int    `json:"plays"`
	Songs int    `json:"songs"`
}

type SongOverview struct {
	Path     string   `json:"path"`
	Title    string   `json:"title"`
	Artist   string   `json:"artist"`
	Capo     *int     `json:"capo,omitempty"`
	Sections []string `json:"sections"`
	Chords   []string `json:"chords"`
}

type Inspection struct {
	Overview SongOverview  `json:"overview"`
	Song     chordpro.Song `json:"song"`
	Warnings []tab.Warning `json:"warnings,omitempty"`
}

// NormalizeSummary is what the batch normalizer reports per input page.
type NormalizeSummary struct {
	FileNum  FileNum       `json:"file_num"`
	Input    string        `json:"input"`
	Output   string        `json:"output,omitempty"`
	Warnings []tab.Warning `json:"warnings,omitempty"`
	Error    string        `json:"detail,omitempty"`
}

func NewSongOverview(path string, song chordpro.Song) SongOverview {
	res := SongOverview{
		Path:     path,
		Title:    song.Title,
		Artist:   song.Artist,
		Capo:     song.Capo,
		Sections: []string{},
		Chords:   []string{},
	}
	for _, s := range song.Sections {
		name := s.Label
		if s.Title != "" {
			name += ": " + s.Title
		}
		if name == "" {
			name = "untagged"
		}
		res.Sections = append(res.Sections, name)
	}
	for _, c := range song.Chords() {
		res.Chords = append(res.Chords, c.String())
	}
	return res
}
