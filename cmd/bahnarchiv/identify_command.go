package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"bahnarchiv/internal/match"
)

func newIdentifyCommand(ctx *commandContext) *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "identify <title-or-filename>",
		Short: "Identify which catalog episode a title or filename matches",
		Long: `Run one title through the matcher and show the result. This is useful for
troubleshooting: it shows the extracted title, the best catalog candidate,
the confidence score, and the canonical filename a rename would produce.

Examples:
  bahnarchiv identify "Eisenbahn-Romantik: Die Gotthardbahn"
  bahnarchiv identify "Eisenbahn-Romantik Die Gotthardbahn-1234567.mp4"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			episodes, err := ctx.loadCatalog(cfg, catalogPath)
			if err != nil {
				return err
			}
			series := ctx.series(cfg)
			scheme := ctx.scheme(cfg)
			index := match.NewIndex(episodes, series)

			query := strings.TrimSpace(args[0])
			title := query
			if strings.HasSuffix(strings.ToLower(query), ".mp4") {
				title = series.RawTitleFromFilename(query)
			}

			out := cmd.OutOrStdout()
			printStatus(out, "Query", statusInfo, title)

			result := index.Find(title)
			if !result.Matched() {
				printStatus(out, "Match", statusError, "no catalog episode matched")
				return nil
			}

			confidence := strconv.FormatFloat(result.Confidence, 'f', 3, 64)
			kind := statusOK
			if result.Confidence < cfg.Matching.ConfidenceThreshold {
				kind = statusWarn
			}
			printStatus(out, "Episode", statusOK, fmt.Sprintf("%s  %s", result.Episode.SeasonEpisodeCode, result.Episode.Title))
			printStatus(out, "Air date", statusInfo, result.Episode.AirDateISO)
			printStatus(out, "Confidence", kind, confidence)
			if kind == statusWarn {
				printStatus(out, "Verdict", statusWarn, fmt.Sprintf("below threshold %.2f, rename would skip this file", cfg.Matching.ConfidenceThreshold))
				return nil
			}
			printStatus(out, "Filename", statusOK, scheme.Build(*result.Episode))
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog JSON source (default: configured catalog_path)")
	return cmd
}
