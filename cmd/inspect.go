package cmd

import (
	"encoding/json"
	"io"

	"github.com/jsphweid/songbook/model"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <song>",
	Short: "Inspects a song",
	Long:  `Prints a ChordPro song or saved tab page as JSON, with any normalizer warnings.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(cmd.OutOrStdout(), args[0])
	},
}

func inspect(w io.Writer, path string) error {
	song, warnings, err := loadSong(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(model.Inspection{
		Overview: model.NewSongOverview(path, song),
		Song:     song,
		Warnings: warnings,
	})
}
