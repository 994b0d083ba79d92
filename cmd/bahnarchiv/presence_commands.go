package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"bahnarchiv/internal/presence"
)

func newPresenceCommand(ctx *commandContext) *cobra.Command {
	var videoDir string
	var output string
	var recursive bool

	cmd := &cobra.Command{
		Use:   "presence <episodes.csv>",
		Short: "Annotate an episode CSV with a video-present column",
		Long: `Check every row of an episode CSV against the archive and write a copy
with a VideoPresent column inserted after AbsEpisode. Rows match files by
the stable identity key (season/episode code, date, absolute number), so
renamed titles do not break the check.`,
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

			dir := strings.TrimSpace(videoDir)
			if dir == "" {
				dir = cfg.Paths.ArchiveDir
			}
			target := strings.TrimSpace(output)
			if target == "" {
				target = derivedPath(args[0], "_with_presence.csv")
			}

			summary, err := presence.Annotate(args[0], dir, target, recursive, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printStatus(out, "Present", statusOK, fmt.Sprintf("%d", summary.Present))
			kind := statusOK
			if summary.Missing > 0 {
				kind = statusWarn
			}
			printStatus(out, "Missing", kind, fmt.Sprintf("%d", summary.Missing))
			if summary.Unparsed > 0 {
				printStatus(out, "Unparsed files", statusWarn, fmt.Sprintf("%d", summary.Unparsed))
			}
			printStatus(out, "Output", statusOK, target)
			return nil
		},
	}

	cmd.Flags().StringVar(&videoDir, "videos", "", "Directory holding the video files (default: configured archive_dir)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Annotated CSV destination (default: <input>_with_presence.csv)")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Scan the video directory recursively")
	return cmd
}

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var videoDir string
	var output string

	cmd := &cobra.Command{
		Use:   "check <episodes.csv>",
		Short: "Check an episode CSV against archive filenames by prefix",
		Long: `Match each CSV row against the archive by canonical filename prefix and
write a copy with file_exists and matched_filename columns appended. This
is a looser check than presence: it tolerates files whose title portion
diverged from the catalog.`,
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

			dir := strings.TrimSpace(videoDir)
			if dir == "" {
				dir = cfg.Paths.ArchiveDir
			}
			target := strings.TrimSpace(output)
			if target == "" {
				target = derivedPath(args[0], "_checked.csv")
			}

			summary, err := presence.CheckFiles(args[0], dir, cfg.Series.Prefix, target, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printStatus(out, "Found", statusOK, fmt.Sprintf("%d", summary.Found))
			kind := statusOK
			if summary.Missing > 0 {
				kind = statusWarn
			}
			printStatus(out, "Missing", kind, fmt.Sprintf("%d", summary.Missing))
			printStatus(out, "Output", statusOK, target)
			return nil
		},
	}

	cmd.Flags().StringVar(&videoDir, "videos", "", "Directory holding the video files (default: configured archive_dir)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Checked CSV destination (default: <input>_checked.csv)")
	return cmd
}

func newMarkCommand(ctx *commandContext) *cobra.Command {
	var videoDir string
	var output string

	cmd := &cobra.Command{
		Use:   "mark <spreadsheet.xlsx>",
		Short: "Mark a match spreadsheet with which files already exist",
		Long: `Check every proposed filename in a match spreadsheet against the archive
and write a copy with file_exists and match_type columns appended. Files
count as present on an exact name match or when a file carries the same
season/episode code under a different name.`,
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

			dir := strings.TrimSpace(videoDir)
			if dir == "" {
				dir = cfg.Paths.ArchiveDir
			}
			target := strings.TrimSpace(output)
			if target == "" {
				target = derivedPath(args[0], "_marked.xlsx")
			}

			summary, err := presence.MarkSpreadsheet(args[0], dir, target, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printStatus(out, "Exact matches", statusOK, fmt.Sprintf("%d", summary.Exact))
			printStatus(out, "Code matches", statusInfo, fmt.Sprintf("%d", summary.ByCode))
			kind := statusOK
			if summary.Missing > 0 {
				kind = statusWarn
			}
			printStatus(out, "Missing", kind, fmt.Sprintf("%d", summary.Missing))
			printStatus(out, "Output", statusOK, target)
			return nil
		},
	}

	cmd.Flags().StringVar(&videoDir, "videos", "", "Directory holding the video files (default: configured archive_dir)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Marked spreadsheet destination (default: <input>_marked.xlsx)")
	return cmd
}

func derivedPath(input, suffix string) string {
	stem := strings.TrimSuffix(input, filepath.Ext(input))
	return stem + suffix
}
