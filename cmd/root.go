package cmd

import (
	"io"

	"github.com/jsphweid/songbook/constants"
	"github.com/jsphweid/songbook/logging"
	"github.com/spf13/cobra"
)

var cfg constants.Config

var rootCmd = &cobra.Command{
	Use:   "songbook",
	Short: "Songbook tools",
	Long:  `Normalizes scraped guitar tabs into ChordPro songs and works with the result.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = constants.Load()
		if err != nil {
			return err
		}
		logging.InitLogger(logging.ParseLevel(cfg.LogLevel), logging.ParseFormat(cfg.LogFormat))
		return nil
	},
	SilenceUsage: true,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// Run executes the command line given by args, writing command output to out.
func Run(args []string, out io.Writer) error {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	return rootCmd.Execute()
}
