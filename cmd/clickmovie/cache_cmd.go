package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCacheCmd returns the "cache" subcommand group.
func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Cache management",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Drop all cached catalog data",
		Long: "Drop all cached catalog data. The watchlist and recent searches\n" +
			"are kept.",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := initApp(configPath)
			if err != nil {
				return err
			}
			a.catalog.Cache().Clear()
			fmt.Println(styleSuccess.Render("Cache cleared."))
			return nil
		},
	})
	return cmd
}
