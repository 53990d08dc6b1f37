package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokedex/internal/orchestrators/pokedex"
)

func newListCmd(a *app) *cobra.Command {
	var (
		refresh bool
		prefix  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every pokemon name",
		Long:  `List every pokemon name in PokéAPI order. The catalog is cached; use --refresh to refetch it.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.service.ListNames(cmd.Context(), &pokedex.ListNamesInput{Refresh: refresh})
			if err != nil {
				return err
			}

			slog.Debug("Listed names", "count", len(out.Names), "from_cache", out.FromCache)

			w := cmd.OutOrStdout()
			for _, name := range out.Names {
				if prefix != "" && !strings.HasPrefix(name, strings.ToLower(prefix)) {
					continue
				}
				fmt.Fprintln(w, name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "ignore the cached catalog and refetch it")
	cmd.Flags().StringVar(&prefix, "prefix", "", "only print names starting with this prefix")

	return cmd
}
