package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ykigathi/click-movie-studios-sub000/internal/catalog"
)

func newGenresCmd() *cobra.Command {
	var (
		genreIDs  []int
		year      int
		minRating float64
		sortBy    string
		page      int
	)

	cmd := &cobra.Command{
		Use:   "genres",
		Short: "List genres or discover movies by genre",
		Long: "Without flags, lists the genre vocabulary of the active catalog\n" +
			"source. With filters, runs a discover listing.",
		Example: `  clickmovie genres
  clickmovie genres --genre 878 --year 2020 --sort rating`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if len(genreIDs) == 0 && year == 0 && minRating == 0 && sortBy == "" {
				return runGenres()
			}
			filters := &catalog.Filters{
				GenreIDs:  genreIDs,
				Year:      year,
				MinRating: minRating,
				SortBy:    catalog.SortKey(sortBy),
			}
			return runDiscover(filters, page)
		},
	}

	cmd.Flags().IntSliceVarP(&genreIDs, "genre", "g", nil, "genre IDs to filter by")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "release year to filter by")
	cmd.Flags().Float64VarP(&minRating, "min-rating", "r", 0, "minimum average rating")
	cmd.Flags().StringVarP(&sortBy, "sort", "s", "", "sort order: popularity, rating, or release_date")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "result page")
	return cmd
}

func runGenres() error {
	a, err := initApp(configPath)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	genres, err := a.catalog.Genres(ctx)
	if err != nil {
		return fmt.Errorf("%s", catalog.ErrorMessage(err))
	}

	fmt.Println(styleHeader.Render("Genres"))
	for _, g := range genres {
		fmt.Printf("%s %s\n", styleDim.Render(fmt.Sprintf("%4d", g.ID)), g.Name)
	}
	return nil
}

func runDiscover(filters *catalog.Filters, page int) error {
	a, err := initApp(configPath)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	state := a.catalog.Discover().Load(ctx, catalog.Request{Page: page, Filters: filters})
	if state.Err != "" {
		return fmt.Errorf("%s", state.Err)
	}

	printListing("Discover", state)
	return nil
}
