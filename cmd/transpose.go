package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/songbook/pitch"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(transposeCmd)
}

var transposeCmd = &cobra.Command{
	Use:   "transpose <song> <interval>",
	Short: "Transposes a song",
	Long:  `Transposes a ChordPro song or saved tab page by a number of semitones or an interval name such as M3 or -P5.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return transpose(cmd.OutOrStdout(), args[0], args[1])
	},
}

func transpose(w io.Writer, path, interval string) error {
	iv, err := pitch.ParseInterval(interval)
	if err != nil {
		return err
	}
	song, _, err := loadSong(path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, song.Transpose(iv).String())
	return err
}
