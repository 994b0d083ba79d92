package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bahnarchiv/internal/catalog"
)

func newMergeCommand(ctx *commandContext) *cobra.Command {
	var output string
	var renumber bool

	cmd := &cobra.Command{
		Use:   "merge <a.json> <b.json>",
		Short: "Merge two catalog JSON files",
		Long: `Concatenate two catalog JSON files, typically the main listing and the
specials. The lists are joined in argument order. With --renumber the
merged list is re-sorted by season and episode, absolute numbers are
reassigned, and target filenames are rebuilt to match.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			a, err := catalog.Load(args[0])
			if err != nil {
				return err
			}
			b, err := catalog.Load(args[1])
			if err != nil {
				return err
			}
			merged := catalog.Merge(a, b)

			if renumber {
				scheme := ctx.scheme(cfg)
				catalog.SortListing(merged)
				catalog.AssignAbsolute(merged)
				for i := range merged {
					merged[i].TargetFilename = scheme.Build(merged[i])
				}
			}

			target := strings.TrimSpace(output)
			if target == "" {
				target = cfg.Paths.CatalogPath
			}
			if err := catalog.Save(target, merged); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printStatus(out, "Episodes", statusOK, fmt.Sprintf("%d + %d = %d", len(a), len(b), len(merged)))
			printStatus(out, "Catalog", statusOK, target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Merged catalog destination (default: configured catalog_path)")
	cmd.Flags().BoolVar(&renumber, "renumber", false, "Re-sort and renumber the merged list")
	return cmd
}
