package main

import (
	"context"
	"fmt"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ykigathi/click-movie-studios-sub000/internal/catalog"
)

// newWatchlistCmd returns the "watchlist" subcommand group.
func newWatchlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watchlist",
		Short: "Manage your watchlist",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runWatchlistShow()
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <id>",
			Short: "Add a movie to the watchlist",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return runWatchlistAdd(args[0])
			},
		},
		&cobra.Command{
			Use:     "rm <id>",
			Aliases: []string{"remove"},
			Short:   "Remove a movie from the watchlist",
			Args:    cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return runWatchlistRemove(args[0])
			},
		},
	)
	return cmd
}

func runWatchlistShow() error {
	a, err := initApp(configPath)
	if err != nil {
		return err
	}

	items := a.watchlist.Items()
	if len(items) == 0 {
		fmt.Println(styleDim.Render("Your watchlist is empty. Use 'clickmovie watchlist add <id>'."))
		return nil
	}

	fmt.Println(styleHeader.Render("Watchlist"))
	for i, m := range items {
		fmt.Println(movieLine(i+1, m))
	}
	return nil
}

func runWatchlistAdd(arg string) error {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("invalid movie id %q", arg)
	}

	a, err := initApp(configPath)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	movie, err := a.catalog.Detail(ctx, id)
	if err != nil {
		return fmt.Errorf("%s", catalog.ErrorMessage(err))
	}

	a.watchlist.Add(movie)
	fmt.Println(styleSuccess.Render(fmt.Sprintf("Added %s to your watchlist.", movie.Title)))
	return nil
}

func runWatchlistRemove(arg string) error {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("invalid movie id %q", arg)
	}

	a, err := initApp(configPath)
	if err != nil {
		return err
	}

	if !a.watchlist.Remove(id) {
		return fmt.Errorf("movie %d is not on your watchlist", id)
	}
	fmt.Println(styleSuccess.Render("Removed from your watchlist."))
	return nil
}
