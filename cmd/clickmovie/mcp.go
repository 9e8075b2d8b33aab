package main

import (
	"github.com/spf13/cobra"

	mcpserver "github.com/ykigathi/click-movie-studios-sub000/internal/mcp"
)

// newMCPServeCmd returns the hidden "mcp-serve" subcommand. It exposes
// the catalog and watchlist as MCP tools over stdin/stdout for LLM
// clients.
func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "mcp-serve",
		Short:  "Start MCP server over stdio (internal)",
		Hidden: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := initApp(configPath)
			if err != nil {
				return err
			}

			srv := mcpserver.NewServer(mcpserver.Deps{
				Catalog:   a.catalog,
				Watchlist: a.watchlist,
			}, a.logger)
			return srv.ServeStdio(cmd.Context())
		},
	}
}
