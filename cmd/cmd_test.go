package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jsphweid/songbook/chordpro"
	"github.com/jsphweid/songbook/midi"
	"github.com/jsphweid/songbook/tab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const verse = "[Verse]\r\n[tab]  [ch]G[/ch]       [ch]D[/ch]\r\nI walk the line[/tab]\r\n"

func writeFile(t *testing.T, path, data string) string {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0777))
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func writePage(t *testing.T, path, content, title, artist string) string {
	store := map[string]any{
		"store": map[string]any{
			"page": map[string]any{
				"data": map[string]any{
					"tab_view": map[string]any{
						"wiki_tab": map[string]any{"content": content},
						"versions": []any{map[string]any{"song_name": title, "artist_name": artist}},
					},
				},
			},
		},
	}
	data, err := json.Marshal(store)
	require.NoError(t, err)
	return writeFile(t, path, `<html><body><div class="js-store" data-content="`+html.EscapeString(string(data))+`"></div></body></html>`)
}

func TestNormalizeDirectory(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	writePage(t, filepath.Join(in, "a.html"), verse, "Walk the Line", "Johnny Cash")
	writePage(t, filepath.Join(in, "nested", "b.html"), verse, "", "")
	writeFile(t, filepath.Join(in, "notes.txt"), "ignored")

	summaries, err := normalize(context.Background(), in, out, 0, 2, true)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert := assert.New(t)
	first := summaries[0]
	assert.Empty(first.Error)
	assert.Empty(first.Warnings)
	assert.Equal(filepath.Join(out, "Johnny Cash - Walk the Line.chordpro"), first.Output)

	data, err := os.ReadFile(first.Output)
	require.NoError(t, err)
	song, err := chordpro.Parse(string(data))
	require.NoError(t, err)
	assert.Equal("Walk the Line", song.Title)
	assert.Equal("I [G]walk the [D]line", song.Sections[0].Lines[0].String())

	second := summaries[1]
	assert.Equal(uint32(1), second.FileNum)
	_, err = uuid.Parse(strings.TrimSuffix(filepath.Base(second.Output), ".chordpro"))
	assert.NoError(err)
	require.Len(t, second.Warnings, 2)
	assert.Equal(tab.MissingMetadata, second.Warnings[0].Kind)
}

func TestNormalizeSinglePageKeepsExistingFiles(t *testing.T) {
	out := t.TempDir()
	page := writePage(t, filepath.Join(t.TempDir(), "page.htm"), verse, "Walk the Line", "Johnny Cash")

	_, err := normalize(context.Background(), page, out, 0, 1, false)
	require.NoError(t, err)
	summaries, err := normalize(context.Background(), page, out, 0, 1, false)
	require.NoError(t, err)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.NotEqual(t, filepath.Join(out, "Johnny Cash - Walk the Line.chordpro"), summaries[0].Output)
}

func TestNormalizeMissingInput(t *testing.T) {
	_, err := normalize(context.Background(), filepath.Join(t.TempDir(), "missing"), t.TempDir(), 0, 1, false)
	assert.Error(t, err)
}

func TestTranspose(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "song.chordpro"), "{title: T}\n{artist: A}\n\n[C]la [G/B]la\n")

	var buf bytes.Buffer
	require.NoError(t, transpose(&buf, path, "2"))
	assert.Contains(t, buf.String(), "[D]la [A/C#]la")

	buf.Reset()
	require.NoError(t, transpose(&buf, path, "-m3"))
	assert.Contains(t, buf.String(), "[A]la [E/G#]la")

	assert.Error(t, transpose(&buf, path, "up"))
	assert.Error(t, transpose(&buf, filepath.Join(t.TempDir(), "missing.chordpro"), "2"))
}

func TestInspectPage(t *testing.T) {
	path := writePage(t, filepath.Join(t.TempDir(), "page.html"), verse, "", "Johnny Cash")

	var buf bytes.Buffer
	require.NoError(t, inspect(&buf, path))

	var res struct {
		Overview struct {
			Artist string   `json:"artist"`
			Chords []string `json:"chords"`
		} `json:"overview"`
		Warnings []tab.Warning `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))

	assert := assert.New(t)
	assert.Equal("Johnny Cash", res.Overview.Artist)
	assert.Equal([]string{"G", "D"}, res.Overview.Chords)
	require.Len(t, res.Warnings, 1)
	assert.Equal(tab.MissingMetadata, res.Warnings[0].Kind)
}

func TestInspectBadSong(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "bad.chordpro"), "[Q]la\n")
	assert.Error(t, inspect(&bytes.Buffer{}, path))
}

func TestReport(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "one.chordpro"), "{title: One}\n{artist: A}\n\n[C]a [G]b [C]c\n")
	writeFile(t, filepath.Join(dir, "two.chordpro"), "{title: Two}\n{artist: A}\n{capo: 3}\n\n[C]x [Am]y\n")
	writeFile(t, filepath.Join(dir, "broken.chordpro"), "[Q]\n")

	r, err := analyzeSongs(dir)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(3, r.numFiles)
	assert.Equal(1, r.numFailed)
	assert.Equal(5, r.numPlays)
	assert.Equal(map[int]int{3: 1}, r.capos)
	require.Len(t, r.usage, 3)
	assert.Equal("C", r.usage[0].Chord)
	assert.Equal(3, r.usage[0].Plays)
	assert.Equal(2, r.usage[0].Songs)
	assert.Equal("Am", r.usage[1].Chord)
	assert.Equal("G", r.usage[2].Chord)

	var buf bytes.Buffer
	printReport(&buf, r, 1)
	assert.Contains(buf.String(), "3 plays in 2 songs")
	assert.NotContains(buf.String(), "Am")
	assert.Contains(buf.String(), "fret 3")
}

func TestMidiExportAndRead(t *testing.T) {
	dir := t.TempDir()
	song := writeFile(t, filepath.Join(dir, "song.chordpro"), "{title: T}\n{artist: A}\n\n[C]la [Am7]la\n[G/B]la [D7]la [C]la\n")
	out := filepath.Join(dir, "song.mid")

	require.NoError(t, exportProgression(song, out, midi.Options{BPM: 90}))

	var buf bytes.Buffer
	require.NoError(t, printProgression(&buf, out, 0, 0))
	assert.Equal(t, "C Am7 G/B D7 C\n", buf.String())

	buf.Reset()
	require.NoError(t, printProgression(&buf, out, 1, 2))
	assert.Equal(t, "Am7 G/B\n", buf.String())
}
