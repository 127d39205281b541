package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gitmcp/gitmcp/internal/mcpserver"
	"github.com/gitmcp/gitmcp/pkg/version"
)

// NewServeCmd creates the serve command
func NewServeCmd(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdin/stdout",
		Long: `Run the Model Context Protocol server.

The server reads line-delimited JSON-RPC messages on stdin and writes
responses to stdout, which is why all logging goes to stderr. Register the
binary with an MCP client as:

  {"mcpServers": {"gitmcp": {"command": "gitmcp", "args": ["serve"]}}}`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c.log.Info("starting MCP server", zap.String("version", version.Summary()))
			s := mcpserver.New(c.runner, c.log, version.Summary())
			return mcpserver.Serve(s)
		},
	}
}
