package main

import (
	"context"
	"fmt"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ykigathi/click-movie-studios-sub000/internal/catalog"
)

func newMovieCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "movie <id>",
		Short:   "Show movie details",
		Long:    "Display detailed information about a movie by its catalog ID.",
		Example: "  clickmovie movie 27205",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid movie id %q", args[0])
			}
			return runMovie(id)
		},
	}
}

func runMovie(id int) error {
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

	printDetail(ctx, a, movie)
	return nil
}

func printDetail(ctx context.Context, a *app, m catalog.Movie) {
	fmt.Printf("%s %s\n", styleHeader.Render(m.Title), styleDim.Render("("+releaseYear(m.ReleaseDate)+")"))
	if m.Tagline != "" {
		fmt.Println(styleDim.Render(m.Tagline))
	}

	fmt.Printf("\n%s %.1f (%d votes)\n", styleDim.Render("Rating:"), m.VoteAverage, m.VoteCount)
	if m.Runtime > 0 {
		fmt.Printf("%s %d min\n", styleDim.Render("Runtime:"), m.Runtime)
	}
	if len(m.Genres) > 0 {
		names := make([]string, len(m.Genres))
		for i, g := range m.Genres {
			names[i] = g.Name
		}
		fmt.Printf("%s %s\n", styleDim.Render("Genres:"), strings.Join(names, ", "))
	}
	if a.watchlist.Contains(m.ID) {
		fmt.Println(styleSuccess.Render("On your watchlist"))
	}

	if m.Overview != "" {
		fmt.Printf("\n%s\n", m.Overview)
	}

	if len(m.Cast) > 0 {
		fmt.Printf("\n%s\n", styleTitle.Render("Cast"))
		for _, c := range m.Cast {
			line := c.Name
			if c.Character != "" {
				line += styleDim.Render(" as " + c.Character)
			}
			fmt.Println("  " + line)
		}
	}
	if len(m.Crew) > 0 {
		fmt.Printf("\n%s\n", styleTitle.Render("Crew"))
		for _, c := range m.Crew {
			line := c.Name
			if c.Job != "" {
				line += styleDim.Render(" - " + c.Job)
			}
			fmt.Println("  " + line)
		}
	}

	// Trailers, when the active source carries them.
	videos, supported, err := a.catalog.Videos(ctx, m.ID)
	if err != nil || !supported || len(videos) == 0 {
		return
	}
	fmt.Printf("\n%s\n", styleTitle.Render("Videos"))
	for _, v := range videos {
		if v.Site == "YouTube" {
			fmt.Printf("  %s %s\n", v.Name, styleDim.Render("https://www.youtube.com/watch?v="+v.Key))
		} else {
			fmt.Printf("  %s %s\n", v.Name, styleDim.Render("("+v.Site+")"))
		}
	}
}
