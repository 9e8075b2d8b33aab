package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render(err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "clickmovie",
		Short: "Movie catalog browser",
		Long: "clickmovie is a movie catalog browser for the terminal.\n" +
			"It browses TMDb when an API key is configured and falls back to a\n" +
			"bundled offline catalog otherwise.",
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/clickmovie.yaml", "path to configuration file")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(
		newVersionCmd(),
		newBrowseCmd(),
		newSearchCmd(),
		newMovieCmd(),
		newGenresCmd(),
		newWatchlistCmd(),
		newCacheCmd(),
		newConfigCmd(),
		newBotCmd(),
		newMCPServeCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("clickmovie v%s\n", version)
		},
	}
}
