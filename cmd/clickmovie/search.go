package main

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ykigathi/click-movie-studios-sub000/internal/catalog"
)

func newSearchCmd() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "search [text]",
		Short: "Search the catalog",
		Long:  "Search the movie catalog by title or overview text.",
		Example: `  clickmovie search dune
  clickmovie search "part two" --page 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSearch(strings.Join(args, " "), page)
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "result page")
	return cmd
}

func runSearch(query string, page int) error {
	a, err := initApp(configPath)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	state := a.catalog.Search().Load(ctx, catalog.Request{Page: page, Query: query})
	if state.Err != "" {
		return fmt.Errorf("%s", state.Err)
	}

	printListing(fmt.Sprintf("Results for %q", query), state)
	return nil
}
