package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gitmcp/gitmcp/internal/domain"
	"github.com/gitmcp/gitmcp/internal/service"
)

// DefaultLogCount is the number of entries git_log returns when the caller
// does not specify one.
const DefaultLogCount = 10

// HistoryUseCase contains the logic for the log, diff, show, and blame
// operations.
type HistoryUseCase struct {
	Git service.GitExecutor
}

// Log returns the most recent commits.
func (uc *HistoryUseCase) Log(ctx context.Context, req domain.LogRequest) (string, error) {
	count := req.Count
	if count <= 0 {
		count = DefaultLogCount
	}
	args := []string{"log", fmt.Sprintf("-n%d", count)}
	if req.Oneline {
		args = append(args, "--oneline")
	}
	out, err := uc.Git.Run(ctx, req.Dir(), args...)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return "No commits found", nil
	}
	return strings.TrimRight(out, "\n"), nil
}

// Diff shows changes between the worktree and HEAD, or against a target ref.
func (uc *HistoryUseCase) Diff(ctx context.Context, req domain.DiffRequest) (string, error) {
	args := []string{"diff"}
	if req.Staged {
		args = append(args, "--staged")
	}
	if req.Target != "" {
		if err := domain.ValidateRef(req.Target); err != nil {
			return "", domain.NewInvalidArgument(req.Operation(), "%s", err.Error())
		}
		args = append(args, req.Target)
	}
	out, err := uc.Git.Run(ctx, req.Dir(), args...)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return "No differences", nil
	}
	return strings.TrimRight(out, "\n"), nil
}

// Show displays a commit. Ref defaults to HEAD.
func (uc *HistoryUseCase) Show(ctx context.Context, req domain.ShowRequest) (string, error) {
	ref := req.Ref
	if ref == "" {
		ref = "HEAD"
	}
	if err := domain.ValidateRef(ref); err != nil {
		return "", domain.NewInvalidArgument(req.Operation(), "%s", err.Error())
	}
	out, err := uc.Git.Run(ctx, req.Dir(), "show", ref)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}

// Blame annotates each line of a file with its last-change commit.
func (uc *HistoryUseCase) Blame(ctx context.Context, req domain.BlameRequest) (string, error) {
	if strings.TrimSpace(req.File) == "" {
		return "", domain.NewInvalidArgument(req.Operation(), "file is required")
	}
	if strings.HasPrefix(req.File, "-") {
		return "", domain.NewInvalidArgument(req.Operation(), "invalid file name: %s", req.File)
	}
	out, err := uc.Git.Run(ctx, req.Dir(), "blame", "--", req.File)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}
