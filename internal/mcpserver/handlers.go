package mcpserver

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/gitmcp/gitmcp/internal/domain"
	"github.com/gitmcp/gitmcp/internal/orchestrator"
)

// requestBuilder converts raw MCP tool arguments into a typed operation
// request. Argument errors are reported as failure envelopes, never as
// protocol errors.
type requestBuilder func(callReq mcp.CallToolRequest) (domain.Request, error)

// handle wraps a request builder into a tool handler that runs the operation
// and produces the uniform result envelope. Every failure is converted here;
// nothing is thrown across the transport boundary.
func handle(runner *orchestrator.Runner, log *zap.Logger, build requestBuilder) server.ToolHandlerFunc {
	return func(ctx context.Context, callReq mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		req, err := build(callReq)
		if err != nil {
			result := domain.NewFailureResult(callReq.Params.Name, "", err, start)
			return mcp.NewToolResultError(result.JSON()), nil
		}
		text, err := runner.Execute(ctx, req)
		if err != nil {
			log.Warn("operation failed",
				zap.String("operation", req.Operation()),
				zap.String("dir", req.Dir()),
				zap.Error(err),
			)
			result := domain.NewFailureResult(req.Operation(), req.Dir(), err, start)
			return mcp.NewToolResultError(result.JSON()), nil
		}
		log.Info("operation succeeded",
			zap.String("operation", req.Operation()),
			zap.String("dir", req.Dir()),
			zap.Duration("elapsed", time.Since(start)),
		)
		result := domain.NewResult(req.Operation(), req.Dir(), text, start)
		return mcp.NewToolResultText(result.JSON()), nil
	}
}

// workDir extracts the optional working-directory argument shared by almost
// every tool.
func workDir(callReq mcp.CallToolRequest) domain.WorkDir {
	return domain.WorkDir{Path: callReq.GetString("path", ".")}
}
