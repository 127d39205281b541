package orchestrator

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/gitmcp/gitmcp/internal/domain"
	"github.com/gitmcp/gitmcp/internal/usecase"
)

// Runner executes operations: composites (flow, sync) are built as workflows
// over the base dispatcher, everything else is delegated to it directly.
// Transport boundaries (MCP server, CLI) call Execute and nothing else.
type Runner struct {
	Dispatcher *usecase.Dispatcher
	Log        *zap.Logger
}

// NewRunner creates a new Runner.
func NewRunner(dispatcher *usecase.Dispatcher, log *zap.Logger) *Runner {
	return &Runner{Dispatcher: dispatcher, Log: log}
}

// Execute runs any operation request and returns its result text.
func (r *Runner) Execute(ctx context.Context, req domain.Request) (string, error) {
	switch composite := req.(type) {
	case domain.FlowRequest:
		return r.Flow(ctx, composite)
	case domain.SyncRequest:
		return r.Sync(ctx, composite)
	default:
		return r.Dispatcher.Dispatch(ctx, req)
	}
}

// Flow runs the add-all -> commit -> push composite. A failed step stops the
// workflow; push is never attempted after a failed commit.
func (r *Runner) Flow(ctx context.Context, req domain.FlowRequest) (string, error) {
	if strings.TrimSpace(req.Message) == "" {
		return "", &domain.GitError{
			Kind:       domain.ErrInvalidArgument,
			Op:         req.Operation(),
			Message:    "commit message is required",
			Suggestion: "provide a non-empty message argument",
		}
	}
	wf := NewWorkflowExecutor("git_flow", r.Log)
	wf.AddStep(WorkflowStep{
		Name: "add_all",
		Execute: func(ctx context.Context) (string, error) {
			return r.Dispatcher.Dispatch(ctx, domain.AddAllRequest{WorkDir: req.WorkDir})
		},
	})
	wf.AddStep(WorkflowStep{
		Name: "commit",
		Execute: func(ctx context.Context) (string, error) {
			return r.Dispatcher.Dispatch(ctx, domain.CommitRequest{WorkDir: req.WorkDir, Message: req.Message})
		},
	})
	wf.AddStep(WorkflowStep{
		Name: "push",
		Execute: func(ctx context.Context) (string, error) {
			return r.Dispatcher.Dispatch(ctx, domain.PushRequest{WorkDir: req.WorkDir})
		},
	})
	return wf.Execute(ctx)
}

// Sync runs the pull -> push composite.
func (r *Runner) Sync(ctx context.Context, req domain.SyncRequest) (string, error) {
	wf := NewWorkflowExecutor("git_sync", r.Log)
	wf.AddStep(WorkflowStep{
		Name: "pull",
		Execute: func(ctx context.Context) (string, error) {
			return r.Dispatcher.Dispatch(ctx, domain.PullRequest{WorkDir: req.WorkDir})
		},
	})
	wf.AddStep(WorkflowStep{
		Name: "push",
		Execute: func(ctx context.Context) (string, error) {
			return r.Dispatcher.Dispatch(ctx, domain.PushRequest{WorkDir: req.WorkDir})
		},
	})
	return wf.Execute(ctx)
}
