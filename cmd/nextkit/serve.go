package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	nextkitmcp "github.com/gorewood/nextkit/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run nextkit as a Model Context Protocol (MCP) server over stdio.

This exposes the read-only nextkit reports as MCP tools for any MCP-capable
agent environment.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "nextkit": {
        "command": "nextkit",
        "args": ["serve", "--dir", "/path/to/project"]
      }
    }
  }

Available tools: check_docs, validate_project, check_updates`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			server := nextkitmcp.NewServer(buildVersion(), nextkitmcp.Project{
				Root:     rt.root,
				Check:    rt.cfg.Check,
				Validate: rt.cfg.Structure,
				Updates:  rt.cfg.Updates,
				Logger:   rt.logger,
			})
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
