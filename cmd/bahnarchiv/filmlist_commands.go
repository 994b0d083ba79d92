package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"bahnarchiv/internal/dedupe"
	"bahnarchiv/internal/filmlist"
)

func newFilmlistCommand(ctx *commandContext) *cobra.Command {
	filmlistCmd := &cobra.Command{
		Use:   "filmlist",
		Short: "MediathekView film list operations",
	}

	filmlistCmd.AddCommand(newFilmlistDownloadCommand(ctx))
	filmlistCmd.AddCommand(newFilmlistConvertCommand(ctx))

	return filmlistCmd
}

func newFilmlistDownloadCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download the film list and keep the series broadcasts",
		Long: `Stream the xz-compressed MediathekView film list and keep only the records
mentioning every word of the series name. The filtered records are saved as
JSON for the convert and match commands.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if _, err := ctx.ensureLogger(); err != nil {
				return err
			}

			client := &http.Client{Timeout: time.Duration(cfg.Filmlist.RequestTimeout) * time.Second}
			keywords := filmlist.Keywords(cfg.Series.Name)

			records, err := filmlist.Download(ctx.runContext(), client, cfg.Filmlist.URL, cfg.TVDB.UserAgent, keywords)
			if err != nil {
				return err
			}

			target := strings.TrimSpace(output)
			if target == "" {
				target = cfg.Paths.FilmlistPath
			}
			if err := filmlist.Save(target, records); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printStatus(out, "Broadcasts", statusOK, fmt.Sprintf("%d records kept", len(records)))
			printStatus(out, "Saved to", statusOK, target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Records JSON destination (default: configured filmlist_path)")
	return cmd
}

func newFilmlistConvertCommand(ctx *commandContext) *cobra.Command {
	var input string
	var output string

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert saved broadcast records to a deduplicated CSV",
		Long: `Convert the saved film list records into a broadcast CSV. Records without
an episode number are dropped, repeat airings collapse to the newest one,
and broadcasts shorter than the configured minimum duration are filtered
out as trailers.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			source := strings.TrimSpace(input)
			if source == "" {
				source = cfg.Paths.FilmlistPath
			}
			records, err := filmlist.Load(source)
			if err != nil {
				return err
			}

			// Filter before dedupe: a short repeat airing must not win the
			// per-episode selection and drag the full recording out of the
			// output with it.
			obs := filmlist.FilterMinDuration(filmlist.Observations(records), cfg.Matching.MinDurationMinutes)
			obs = dedupe.Select(obs)

			target := strings.TrimSpace(output)
			if target == "" {
				target = filepath.Join(cfg.Paths.ReportDir, "broadcasts.csv")
			}
			f, err := os.Create(target)
			if err != nil {
				return fmt.Errorf("create broadcast csv: %w", err)
			}
			defer f.Close()
			if err := filmlist.WriteObservationsCSV(f, obs); err != nil {
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printStatus(out, "Records", statusOK, fmt.Sprintf("%d loaded", len(records)))
			printStatus(out, "Broadcasts", statusOK, fmt.Sprintf("%d after dedup and duration filter", len(obs)))
			printStatus(out, "CSV", statusOK, target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Records JSON source (default: configured filmlist_path)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Broadcast CSV destination (default: report_dir/broadcasts.csv)")
	return cmd
}
