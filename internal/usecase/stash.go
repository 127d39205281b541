package usecase

import (
	"context"
	"strings"

	"github.com/gitmcp/gitmcp/internal/domain"
	"github.com/gitmcp/gitmcp/internal/service"
)

// StashUseCase contains the logic for the stash operations.
type StashUseCase struct {
	Git service.GitExecutor
}

// Save stashes the current worktree changes.
func (uc *StashUseCase) Save(ctx context.Context, req domain.StashRequest) (string, error) {
	args := []string{"stash", "push"}
	if req.Message != "" {
		args = append(args, "-m", req.Message)
	}
	out, err := uc.Git.Run(ctx, req.Dir(), args...)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}

// Pop applies and drops the most recent stash entry.
func (uc *StashUseCase) Pop(ctx context.Context, req domain.StashPopRequest) (string, error) {
	out, err := uc.Git.Run(ctx, req.Dir(), "stash", "pop")
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}

// List shows the stash entries.
func (uc *StashUseCase) List(ctx context.Context, req domain.StashListRequest) (string, error) {
	out, err := uc.Git.Run(ctx, req.Dir(), "stash", "list")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return "No stashes found", nil
	}
	return strings.TrimRight(out, "\n"), nil
}
