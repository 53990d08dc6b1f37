package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokedex/internal/orchestrators/pokedex"
)

func newCacheCmd(a *app) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the cached name catalog",
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Drop the cached name catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.service.InvalidateNames(cmd.Context(), &pokedex.InvalidateNamesInput{})
			if err != nil {
				return err
			}

			if out.Existed {
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared cached catalog %q\n", a.cfg.Catalog.Scope)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "No cached catalog for %q\n", a.cfg.Catalog.Scope)
			}
			return nil
		},
	}

	cacheCmd.AddCommand(clearCmd)
	return cacheCmd
}
