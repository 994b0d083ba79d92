package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"bahnarchiv/internal/dedupe"
	"bahnarchiv/internal/filmlist"
	"bahnarchiv/internal/pipeline"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var catalogPath string
	var recordsPath string
	var output string
	var xlsxOutput string
	var threshold float64

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match broadcasts against the catalog and propose filenames",
		Long: `Match every deduplicated broadcast against the episode catalog. Each row in
the resulting report carries the match confidence; rows at or above the
threshold also carry the proposed canonical filename. Rows are ordered by
broadcast date, newest first.`,
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

			source := strings.TrimSpace(recordsPath)
			if source == "" {
				source = cfg.Paths.FilmlistPath
			}
			records, err := filmlist.Load(source)
			if err != nil {
				return err
			}
			// Trailers go first so a short repeat airing cannot win the
			// dedupe over a full recording and then be filtered away.
			obs := filmlist.FilterMinDuration(filmlist.Observations(records), cfg.Matching.MinDurationMinutes)
			obs = dedupe.Select(obs)

			limit := threshold
			if !cmd.Flags().Changed("threshold") {
				limit = cfg.Matching.ConfidenceThreshold
			}

			stage := pipeline.New(episodes, ctx.series(cfg), ctx.scheme(cfg), limit, logger)
			rows := stage.Run(obs)

			target := strings.TrimSpace(output)
			if target == "" {
				target = filepath.Join(cfg.Paths.ReportDir, "matches.csv")
			}
			f, err := os.Create(target)
			if err != nil {
				return fmt.Errorf("create match report: %w", err)
			}
			defer f.Close()
			if err := pipeline.WriteCSV(f, rows); err != nil {
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			proposed := 0
			for _, row := range rows {
				if row.NewFilename != "" {
					proposed++
				}
			}
			out := cmd.OutOrStdout()
			printStatus(out, "Broadcasts", statusOK, fmt.Sprintf("%d matched against %d episodes", len(rows), len(episodes)))
			printStatus(out, "Proposals", statusOK, fmt.Sprintf("%d at or above %.2f", proposed, limit))
			printStatus(out, "Report", statusOK, target)

			if xlsxPath := strings.TrimSpace(xlsxOutput); xlsxPath != "" {
				if err := pipeline.WriteXLSX(xlsxPath, rows); err != nil {
					return err
				}
				printStatus(out, "Spreadsheet", statusOK, xlsxPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog JSON source (default: configured catalog_path)")
	cmd.Flags().StringVar(&recordsPath, "records", "", "Records JSON source (default: configured filmlist_path)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Match report CSV destination (default: report_dir/matches.csv)")
	cmd.Flags().StringVar(&xlsxOutput, "xlsx", "", "Also write the report as a spreadsheet to this path")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "Confidence threshold for filename proposals (default: configured)")
	return cmd
}
