package model

import (
	"testing"

	"github.com/jsphweid/songbook/chordpro"
	"github.com/stretchr/testify/assert"
)

func TestNewSongOverview(t *testing.T) {
	song := chordpro.MustParse("{title: Song}\n{artist: Someone}\n{capo: 2}\n\n" +
		"[G]intro line\n\n" +
		"{start_of_chorus: Refrain}\n[C]la [G]la [C]la\n{end_of_chorus}\n")

	o := NewSongOverview("song.chordpro", song)

	assert := assert.New(t)
	assert.Equal("Song", o.Title)
	assert.Equal("Someone", o.Artist)
	assert.Equal(2, *o.Capo)
	assert.Equal([]string{"untagged", "chorus: Refrain"}, o.Sections)
	assert.Equal([]string{"G", "C"}, o.Chords)
}

func TestNewSongOverviewEmpty(t *testing.T) {
	o := NewSongOverview("", chordpro.Song{})
	assert.Empty(t, o.Sections)
	assert.NotNil(t, o.Sections)
	assert.Nil(t, o.Capo)
}
