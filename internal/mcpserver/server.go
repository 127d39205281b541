// Package mcpserver exposes the git operations as Model Context Protocol
// tools over stdio. Stdout carries the protocol; all logging goes to stderr.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/gitmcp/gitmcp/internal/orchestrator"
)

// New creates the MCP server with every git tool registered.
func New(runner *orchestrator.Runner, log *zap.Logger, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"gitmcp",
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	registerTools(s, runner, log)
	return s
}

// Serve runs the server on stdin/stdout until the client disconnects.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
