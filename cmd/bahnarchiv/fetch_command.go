package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"bahnarchiv/internal/catalog"
	"bahnarchiv/internal/tvdb"
)

func newFetchCommand(ctx *commandContext) *cobra.Command {
	var output string
	var csvOutput string
	var specials bool

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the episode catalog from TVDB",
		Long: `Fetch the series episode listing from TVDB and write it as a catalog JSON
file. Episodes are numbered in listing order and each entry carries its
canonical archive filename.

With --specials only the season-0 specials page is fetched; the result is
written next to the catalog as a standalone specials list that can be
combined with the main catalog via the merge command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			client := tvdb.NewClient(cfg.TVDB, logger)
			scheme := ctx.scheme(cfg)
			runCtx := ctx.runContext()

			target := strings.TrimSpace(output)
			var episodes []catalog.Episode
			if specials {
				episodes, err = client.FetchSpecials(runCtx, scheme)
				if target == "" {
					target = specialsPath(cfg.Paths.CatalogPath)
				}
			} else {
				episodes, err = client.FetchListing(runCtx, scheme)
				if target == "" {
					target = cfg.Paths.CatalogPath
				}
			}
			if err != nil {
				return err
			}

			if err := catalog.Save(target, episodes); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printStatus(out, "Episodes", statusOK, fmt.Sprintf("%d fetched", len(episodes)))
			printStatus(out, "Catalog", statusOK, target)

			if csvPath := strings.TrimSpace(csvOutput); csvPath != "" {
				if err := catalog.WriteCSV(csvPath, episodes); err != nil {
					return err
				}
				printStatus(out, "CSV export", statusOK, csvPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Catalog JSON destination (default: configured catalog_path)")
	cmd.Flags().StringVar(&csvOutput, "csv", "", "Also export the catalog as CSV to this path")
	cmd.Flags().BoolVar(&specials, "specials", false, "Fetch only the season-0 specials page")
	return cmd
}

func specialsPath(catalogPath string) string {
	ext := filepath.Ext(catalogPath)
	return strings.TrimSuffix(catalogPath, ext) + "_specials" + ext
}
