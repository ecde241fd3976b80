package cmd

import (
	"context"
	"os"
	"strconv"

	"github.com/jsphweid/songbook/constants"
	"github.com/jsphweid/songbook/file"
	"github.com/jsphweid/songbook/logging"
	"github.com/jsphweid/songbook/model"
	"github.com/jsphweid/songbook/tab"
	"github.com/jsphweid/songbook/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	normalizeOut   string
	normalizeClean bool
)

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeOut, "out", "o", "", "output directory (defaults to SONGBOOK_OUT_DIR)")
	normalizeCmd.Flags().BoolVar(&normalizeClean, "clean", false, "recreate the output directory first")
	rootCmd.AddCommand(normalizeCmd)
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize <page-or-dir> [maxNum]",
	Short: "Converts saved tab pages to ChordPro",
	Long:  `Converts one saved tab page, or every page under a directory, into ChordPro files.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var maxNum int
		if len(args) == 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.Wrap(err, "maxNum must be a number")
			}
			maxNum = n
		}
		out := normalizeOut
		if out == "" {
			out = cfg.OutDir
		}

		summaries, err := normalize(cmd.Context(), args[0], out, maxNum, cfg.Workers, normalizeClean)
		if err != nil {
			return err
		}
		var failed int
		for _, s := range summaries {
			if s.Error != "" {
				failed++
			}
		}
		logging.Info("normalized pages", "total", len(summaries), "failed", failed, "out", out)
		return nil
	},
}

// normalize converts every page found under root and writes one ChordPro
// file per page into out. A page that cannot be read is reported in its
// summary and does not stop the batch.
func normalize(ctx context.Context, root, out string, maxNum, workers int, clean bool) ([]model.NormalizeSummary, error) {
	paths, err := util.GatherPaths(root, constants.PageExts, maxNum)
	if err != nil {
		return nil, err
	}
	if clean {
		err = util.RecreateOutputDir(out)
	} else {
		err = os.MkdirAll(out, 0777)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not prepare %v", out)
	}

	fileNumMap := file.CreateFileNumMap(paths)
	summaries := make([]model.NormalizeSummary, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, fileNum := range util.SortedKeys(fileNumMap) {
		fileNum := fileNum
		path := fileNumMap[fileNum]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			summaries[fileNum] = normalizeOne(fileNum, path, out)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return summaries, err
	}
	return summaries, nil
}

func normalizeOne(fileNum model.FileNum, path, out string) model.NormalizeSummary {
	summary := model.NormalizeSummary{FileNum: fileNum, Input: path}

	res, err := tab.ReadPage(path)
	if err != nil {
		logging.Error("could not read page", "path", path, "error", err)
		summary.Error = err.Error()
		return summary
	}
	summary.Warnings = res.Warnings
	for _, w := range res.Warnings {
		logging.Warn("tab anomaly", "path", path, "kind", w.Kind, "line", w.Line, "detail", w.Detail)
	}

	name := file.SongFileName(res.Song.Title, res.Song.Artist)
	written, err := file.WriteNew(out, name, []byte(res.Song.String()+"\n"))
	if err != nil {
		logging.Error("could not write song", "path", path, "error", err)
		summary.Error = err.Error()
		return summary
	}
	summary.Output = written
	logging.Debug("normalized page", "path", path, "output", written, "warnings", len(res.Warnings))
	return summary
}
