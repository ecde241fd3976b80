package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/songbook/chordpro"
	"github.com/jsphweid/songbook/constants"
	"github.com/jsphweid/songbook/tab"
	"github.com/pkg/errors"
)

func isPage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range constants.PageExts {
		if ext == e {
			return true
		}
	}
	return false
}

// loadSong reads a ChordPro file, or normalizes a saved tab page.
func loadSong(path string) (chordpro.Song, []tab.Warning, error) {
	if isPage(path) {
		res, err := tab.ReadPage(path)
		return res.Song, res.Warnings, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return chordpro.Song{}, nil, errors.Wrapf(err, "could not read song %v", path)
	}
	song, err := chordpro.Parse(string(data))
	if err != nil {
		return chordpro.Song{}, nil, errors.Wrapf(err, "could not parse song %v", path)
	}
	return song, nil, nil
}
