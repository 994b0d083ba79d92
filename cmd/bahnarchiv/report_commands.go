package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"bahnarchiv/internal/report"
)

func newMissingCommand(ctx *commandContext) *cobra.Command {
	var videoDir string
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "missing <broadcasts.csv>",
		Short: "Report broadcast episodes with no file in the archive",
		Long: `Compare the episode numbers in a broadcast CSV against the files in the
archive and report the missing ones. Each missing episode is joined with
the catalog so the report names the expected canonical filename. The
report is written next to the input as <input>_missing.csv; filenames that
yielded no episode number go to <input>_unparsed_filenames.txt.`,
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

			episodes, err := ctx.loadCatalog(cfg, catalogPath)
			if err != nil {
				return err
			}
			dir := strings.TrimSpace(videoDir)
			if dir == "" {
				dir = cfg.Paths.ArchiveDir
			}

			r, err := report.Missing(args[0], dir, episodes, ctx.scheme(cfg), logger)
			if err != nil {
				return err
			}

			outPath := report.MissingCSVPath(args[0])
			if err := r.WriteCSV(outPath); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printStatus(out, "Requested", statusInfo, fmt.Sprintf("%d episodes", r.Requested))
			printStatus(out, "On disk", statusInfo, fmt.Sprintf("%d episodes", r.OnDisk))
			kind := statusOK
			if len(r.Rows) > 0 {
				kind = statusWarn
			}
			printStatus(out, "Missing", kind, fmt.Sprintf("%d episodes", len(r.Rows)))
			printStatus(out, "Report", statusOK, outPath)

			if len(r.Unparsed) > 0 {
				diagPath := report.UnparsedListPath(args[0])
				if err := r.WriteUnparsed(diagPath); err != nil {
					return err
				}
				printStatus(out, "Unparsed files", statusWarn, fmt.Sprintf("%d, listed in %s", len(r.Unparsed), diagPath))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&videoDir, "videos", "", "Directory holding the video files (default: configured archive_dir)")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog JSON source (default: configured catalog_path)")
	return cmd
}

func newDuplicatesCommand(ctx *commandContext) *cobra.Command {
	var recursive bool
	var csvOutput string

	cmd := &cobra.Command{
		Use:   "duplicates [dir ...]",
		Short: "Report archive files sharing an episode identity",
		Long: `Scan the archive for files whose names share a season/episode code, a
broadcast date, or an absolute episode number. Each identity field is
reported separately: a re-aired episode shares the code but not the date.
Files whose names do not parse are listed for cleanup.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			dirs := args
			if len(dirs) == 0 {
				dirs = []string{cfg.Paths.ArchiveDir}
			}

			r, err := report.Duplicates(dirs, recursive, ctx.scheme(cfg), logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printStatus(out, "Scanned", statusInfo, fmt.Sprintf("%d files", r.Scanned))
			printStatus(out, "Parsed", statusInfo, fmt.Sprintf("%d files", len(r.Parsed)))
			if len(r.Skipped) > 0 {
				printStatus(out, "Unparsed", statusWarn, fmt.Sprintf("%d files", len(r.Skipped)))
			}

			printDuplicateGroups(cmd, "episode code", r.ByCode)
			printDuplicateGroups(cmd, "broadcast date", r.ByDate)
			printDuplicateGroups(cmd, "absolute number", r.ByAbs)

			if len(r.Skipped) > 0 {
				rows := make([][]string, 0, len(r.Skipped))
				for _, s := range r.Skipped {
					rows = append(rows, []string{s.Path, formatSize(s.SizeBytes)})
				}
				fmt.Fprintln(out, "\nFiles with unparseable names:")
				fmt.Fprintln(out, renderTable([]string{"Path", "Size"}, rows, 1))
			}

			if csvPath := strings.TrimSpace(csvOutput); csvPath != "" {
				if err := r.WriteCSV(csvPath); err != nil {
					return err
				}
				printStatus(out, "CSV export", statusOK, csvPath)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Scan subdirectories too")
	cmd.Flags().StringVar(&csvOutput, "csv", "", "Export all parsed files as CSV to this path")
	return cmd
}

func printDuplicateGroups(cmd *cobra.Command, label string, groups []report.DuplicateGroup) {
	out := cmd.OutOrStdout()
	if len(groups) == 0 {
		printStatus(out, "By "+label, statusOK, "no duplicates")
		return
	}

	printStatus(out, "By "+label, statusWarn, fmt.Sprintf("%d duplicate keys", len(groups)))
	rows := make([][]string, 0, len(groups)*2)
	for _, group := range groups {
		for _, f := range group.Files {
			rows = append(rows, []string{group.Value, f.Path, formatSize(f.SizeBytes)})
		}
	}
	fmt.Fprintln(out, renderTable([]string{"Key", "Path", "Size"}, rows, 2))
}

func formatSize(bytes int64) string {
	const mib = 1024 * 1024
	if bytes >= mib {
		return fmt.Sprintf("%.2f MiB", float64(bytes)/float64(mib))
	}
	return strconv.FormatInt(bytes, 10) + " B"
}
