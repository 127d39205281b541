package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gitmcp/gitmcp/internal/domain"
	"github.com/gitmcp/gitmcp/internal/service"
)

// MergeUseCase contains the logic for the merge, rebase, and cherry-pick
// operations. Conflicts are surfaced as classified errors listing the
// conflicted files; nothing is resolved or retried automatically.
type MergeUseCase struct {
	Git service.GitExecutor
}

// Merge merges a branch into the current branch, or aborts an in-progress
// merge.
func (uc *MergeUseCase) Merge(ctx context.Context, req domain.MergeRequest) (string, error) {
	if req.Abort {
		if _, err := uc.Git.Run(ctx, req.Dir(), "merge", "--abort"); err != nil {
			return "", err
		}
		return "Merge aborted", nil
	}
	if err := domain.ValidateBranchName(req.Branch); err != nil {
		return "", domain.NewInvalidArgument(req.Operation(), "%s", err.Error())
	}
	args := []string{"merge"}
	if req.NoFF {
		args = append(args, "--no-ff")
	}
	args = append(args, req.Branch)
	out, err := uc.Git.Run(ctx, req.Dir(), args...)
	if err != nil {
		return "", err
	}
	text := fmt.Sprintf("Merged %s", req.Branch)
	if trimmed := strings.TrimSpace(out); trimmed != "" {
		text += "\n" + trimmed
	}
	return text, nil
}

// Rebase rebases the current branch onto a target, or drives an in-progress
// rebase with --abort / --continue.
func (uc *MergeUseCase) Rebase(ctx context.Context, req domain.RebaseRequest) (string, error) {
	switch {
	case req.Abort:
		if _, err := uc.Git.Run(ctx, req.Dir(), "rebase", "--abort"); err != nil {
			return "", err
		}
		return "Rebase aborted", nil
	case req.Continue:
		out, err := uc.Git.Run(ctx, req.Dir(), "rebase", "--continue")
		if err != nil {
			return "", err
		}
		return "Rebase continued\n" + strings.TrimRight(out, "\n"), nil
	}
	if err := domain.ValidateRef(req.Target); err != nil {
		return "", domain.NewInvalidArgument(req.Operation(), "%s", err.Error())
	}
	out, err := uc.Git.Run(ctx, req.Dir(), "rebase", req.Target)
	if err != nil {
		return "", err
	}
	text := fmt.Sprintf("Rebased onto %s", req.Target)
	if trimmed := strings.TrimSpace(out); trimmed != "" {
		text += "\n" + trimmed
	}
	return text, nil
}

// CherryPick applies an existing commit on top of the current branch.
func (uc *MergeUseCase) CherryPick(ctx context.Context, req domain.CherryPickRequest) (string, error) {
	if err := domain.ValidateRef(req.Commit); err != nil {
		return "", domain.NewInvalidArgument(req.Operation(), "%s", err.Error())
	}
	out, err := uc.Git.Run(ctx, req.Dir(), "cherry-pick", req.Commit)
	if err != nil {
		return "", err
	}
	text := fmt.Sprintf("Cherry-picked %s", req.Commit)
	if trimmed := strings.TrimSpace(out); trimmed != "" {
		text += "\n" + trimmed
	}
	return text, nil
}
