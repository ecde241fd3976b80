package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/songbook/chord"
	"github.com/jsphweid/songbook/logging"
	"github.com/jsphweid/songbook/midi"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	midiBPM     float64
	midiFromBar int
	midiBars    int
)

func init() {
	midiCmd.Flags().Float64Var(&midiBPM, "bpm", 0, "tempo (defaults to SONGBOOK_TEMPO)")
	midiCmd.Flags().IntVar(&midiFromBar, "from-bar", 0, "first bar to read, counted from 0")
	midiCmd.Flags().IntVar(&midiBars, "bars", 0, "number of bars to read (0 reads to the end)")
	rootCmd.AddCommand(midiCmd)
}

var midiCmd = &cobra.Command{
	Use:   "midi <song> [out.mid]",
	Short: "Converts between songs and MIDI chord progressions",
	Long: `Writes the chords of a song as a MIDI progression with one bar per chord.
Given a .mid file instead, prints the chords it sounds.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if isMidi(args[0]) {
			return printProgression(cmd.OutOrStdout(), args[0], midiFromBar, midiBars)
		}
		if len(args) != 2 {
			return errors.New("need an output .mid path")
		}
		bpm := midiBPM
		if bpm <= 0 {
			bpm = cfg.Tempo
		}
		return exportProgression(args[0], args[1], midi.Options{BPM: bpm})
	},
}

func isMidi(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".mid" || ext == ".midi"
}

// progression lists every chord of the song in playing order.
func progression(path string) ([]chord.Chord, error) {
	song, _, err := loadSong(path)
	if err != nil {
		return nil, err
	}
	var res []chord.Chord
	for _, section := range song.Sections {
		for _, line := range section.Lines {
			res = append(res, line.Chords()...)
		}
	}
	return res, nil
}

func exportProgression(in, out string, opts midi.Options) error {
	chords, err := progression(in)
	if err != nil {
		return err
	}
	f, err := os.Create(out)
	if err != nil {
		return errors.Wrapf(err, "couldn't create file %v", out)
	}
	defer f.Close()

	if err := midi.WriteProgression(f, chords, opts); err != nil {
		return err
	}
	logging.Info("wrote progression", "path", out, "chords", len(chords))
	return nil
}

func printProgression(w io.Writer, path string, fromBar, bars int) error {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	if fromBar > 0 || bars > 0 {
		bar := midi.BarTicks(s, 4)
		if bar == 0 {
			return errors.New("bars need a file with metric time")
		}
		var to int64
		if bars > 0 {
			to = int64(fromBar+bars) * bar
		}
		s = midi.Excerpt(s, int64(fromBar)*bar, to)
	}
	chords, err := midi.ReadProgression(s)
	if err != nil {
		return err
	}
	var labels []string
	for _, c := range chords {
		labels = append(labels, c.String())
	}
	_, err = fmt.Fprintln(w, strings.Join(labels, " "))
	return err
}
