package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/songbook/constants"
	"github.com/jsphweid/songbook/logging"
	"github.com/jsphweid/songbook/model"
	"github.com/jsphweid/songbook/util"
	"github.com/spf13/cobra"
)

var reportTop int

func init() {
	reportCmd.Flags().IntVarP(&reportTop, "top", "n", 20, "number of chords to list")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report [dir]",
	Short: "Creates a report",
	Long:  `Reports chord usage across every ChordPro song in a directory (defaults to SONGBOOK_OUT_DIR).`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := cfg.OutDir
		if len(args) == 1 {
			dir = args[0]
		}
		r, err := analyzeSongs(dir)
		if err != nil {
			return err
		}
		printReport(cmd.OutOrStdout(), r, reportTop)
		return nil
	},
}

type songsReport struct {
	numFiles    int
	numFailed   int
	numSections int
	numLines    int
	numPlays    int
	usage       []model.ChordUsage
	capos       map[int]int
}

func analyzeSongs(dir string) (songsReport, error) {
	report := songsReport{capos: make(map[int]int)}
	paths, err := util.GatherPaths(dir, []string{constants.ChordProExt}, 0)
	if err != nil {
		return report, err
	}

	byChord := make(map[string]*model.ChordUsage)
	for _, path := range paths {
		report.numFiles += 1
		song, _, err := loadSong(path)
		if err != nil {
			logging.Warn("skipping song", "path", path, "error", err)
			report.numFailed += 1
			continue
		}
		if song.Capo != nil {
			report.capos[*song.Capo] += 1
		}

		inSong := make(map[string]bool)
		for _, section := range song.Sections {
			report.numSections += 1
			for _, line := range section.Lines {
				report.numLines += 1
				for _, c := range line.Chords() {
					label := c.String()
					usage, ok := byChord[label]
					if !ok {
						usage = &model.ChordUsage{Chord: label}
						byChord[label] = usage
					}
					usage.Plays += 1
					report.numPlays += 1
					if !inSong[label] {
						inSong[label] = true
						usage.Songs += 1
					}
				}
			}
		}
	}

	for _, label := range util.SortedKeys(byChord) {
		report.usage = append(report.usage, *byChord[label])
	}
	sort.SliceStable(report.usage, func(i, j int) bool {
		return report.usage[i].Plays > report.usage[j].Plays
	})
	return report, nil
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).MarginTop(1)
	labelStyle   = lipgloss.NewStyle().Width(16)
	chordStyle   = lipgloss.NewStyle().Width(10).Bold(true)
)

func printReport(w io.Writer, r songsReport, top int) {
	fmt.Fprintln(w, headingStyle.Render("Songs"))
	fmt.Fprintln(w, labelStyle.Render("files")+fmt.Sprint(r.numFiles))
	fmt.Fprintln(w, labelStyle.Render("unreadable")+fmt.Sprint(r.numFailed))
	fmt.Fprintln(w, labelStyle.Render("sections")+fmt.Sprint(r.numSections))
	fmt.Fprintln(w, labelStyle.Render("lines")+fmt.Sprint(r.numLines))
	fmt.Fprintln(w, labelStyle.Render("distinct chords")+fmt.Sprint(len(r.usage)))
	fmt.Fprintln(w, labelStyle.Render("chords played")+fmt.Sprint(r.numPlays))

	if len(r.capos) > 0 {
		fmt.Fprintln(w, headingStyle.Render("Capo"))
		for _, fret := range util.SortedKeys(r.capos) {
			fmt.Fprintln(w, labelStyle.Render(fmt.Sprintf("fret %d", fret))+fmt.Sprint(r.capos[fret]))
		}
	}

	fmt.Fprintln(w, headingStyle.Render("Chords"))
	if top < 0 {
		top = 0
	}
	for _, usage := range r.usage[:util.Min(top, len(r.usage))] {
		fmt.Fprintf(w, "%s%d plays in %d songs\n", chordStyle.Render(usage.Chord), usage.Plays, usage.Songs)
	}
}
