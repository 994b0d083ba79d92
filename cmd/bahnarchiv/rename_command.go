package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"bahnarchiv/internal/renamer"
)

// withArchiveLock guards archive mutations against a second bahnarchiv
// invocation writing into the same directory.
func withArchiveLock(dir string, fn func() error) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create archive directory: %w", err)
	}
	lock := flock.New(filepath.Join(dir, ".bahnarchiv.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire archive lock: %w", err)
	}
	if !ok {
		return errors.New("archive is locked by another bahnarchiv run")
	}
	defer lock.Unlock()
	return fn()
}

func newRenameCommand(ctx *commandContext) *cobra.Command {
	var source string
	var destination string
	var threshold float64
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Copy downloads into the archive under canonical names",
		Long: `Match every downloaded video against the catalog and copy the confident
matches into the archive under their canonical filenames. Existing archive
files are never overwritten. With --dry-run the command reports what it
would copy without touching anything.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			episodes, err := ctx.loadCatalog(cfg, "")
			if err != nil {
				return err
			}

			limit := threshold
			if !cmd.Flags().Changed("threshold") {
				limit = cfg.Matching.ConfidenceThreshold
			}
			srcDir := strings.TrimSpace(source)
			if srcDir == "" {
				srcDir = cfg.Paths.DownloadDir
			}
			dstDir := strings.TrimSpace(destination)
			if dstDir == "" {
				dstDir = cfg.Paths.ArchiveDir
			}

			r := renamer.New(episodes, ctx.series(cfg), ctx.scheme(cfg), limit, dryRun, logger)

			var summary renamer.Summary
			err = withArchiveLock(dstDir, func() error {
				var runErr error
				summary, runErr = r.Run(srcDir, dstDir)
				return runErr
			})
			if err != nil {
				return err
			}

			printRenameSummary(cmd, summary, dryRun)
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Download directory to scan (default: configured download_dir)")
	cmd.Flags().StringVar(&destination, "dest", "", "Archive directory to fill (default: configured archive_dir)")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "Minimum match confidence (default: configured)")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Report planned copies without copying")
	return cmd
}

func newCopyMapCommand(ctx *commandContext) *cobra.Command {
	var source string
	var destination string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "copy-map <spreadsheet.xlsx>",
		Short: "Copy downloads using a reviewed match spreadsheet",
		Long: `Copy downloads into the archive using the title-to-filename mapping from a
reviewed match spreadsheet instead of live matching. This is the path for
broadcasts that needed a manual decision: edit the spreadsheet, then apply
it. Copy semantics match the rename command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			titles, err := renamer.LoadTitleMap(args[0], logger)
			if err != nil {
				return err
			}

			episodes, err := ctx.loadCatalog(cfg, "")
			if err != nil {
				return err
			}
			srcDir := strings.TrimSpace(source)
			if srcDir == "" {
				srcDir = cfg.Paths.DownloadDir
			}
			dstDir := strings.TrimSpace(destination)
			if dstDir == "" {
				dstDir = cfg.Paths.ArchiveDir
			}

			r := renamer.New(episodes, ctx.series(cfg), ctx.scheme(cfg), cfg.Matching.ConfidenceThreshold, dryRun, logger)

			var summary renamer.Summary
			err = withArchiveLock(dstDir, func() error {
				var runErr error
				summary, runErr = r.RunMap(titles, srcDir, dstDir)
				return runErr
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printStatus(out, "Mapped titles", statusOK, fmt.Sprintf("%d", len(titles)))
			printRenameSummary(cmd, summary, dryRun)
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Download directory to scan (default: configured download_dir)")
	cmd.Flags().StringVar(&destination, "dest", "", "Archive directory to fill (default: configured archive_dir)")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Report planned copies without copying")
	return cmd
}

func printRenameSummary(cmd *cobra.Command, summary renamer.Summary, dryRun bool) {
	out := cmd.OutOrStdout()
	label := "Copied"
	if dryRun {
		label = "Would copy"
	}
	printStatus(out, label, statusOK, fmt.Sprintf("%d", summary.Copied))
	if summary.SkippedExisting > 0 {
		printStatus(out, "Already archived", statusInfo, fmt.Sprintf("%d", summary.SkippedExisting))
	}
	if summary.SkippedLowScore > 0 {
		printStatus(out, "Low confidence", statusWarn, fmt.Sprintf("%d", summary.SkippedLowScore))
	}
	if summary.Unmatched > 0 {
		printStatus(out, "Unmatched", statusWarn, fmt.Sprintf("%d", summary.Unmatched))
	}
}
