package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gitmcp/gitmcp/internal/domain"
	"github.com/gitmcp/gitmcp/internal/service"
)

// HardResetWarning is included in every successful hard-reset result.
const HardResetWarning = "WARNING: hard reset discarded all uncommitted changes. This is destructive and cannot be undone."

// ResetUseCase contains the logic for the reset and clean operations.
type ResetUseCase struct {
	Git service.GitExecutor
}

// Reset moves HEAD (and depending on mode, the index and worktree) to a
// target. Mode defaults to mixed, target to HEAD.
func (uc *ResetUseCase) Reset(ctx context.Context, req domain.ResetRequest) (string, error) {
	mode := req.Mode
	if mode == "" {
		mode = domain.ResetMixed
	}
	switch mode {
	case domain.ResetSoft, domain.ResetMixed, domain.ResetHard:
	default:
		return "", domain.NewInvalidArgument(req.Operation(),
			"invalid mode: %s (expected: soft, mixed, hard)", mode)
	}
	target := req.Target
	if target == "" {
		target = "HEAD"
	}
	if err := domain.ValidateRef(target); err != nil {
		return "", domain.NewInvalidArgument(req.Operation(), "%s", err.Error())
	}
	out, err := uc.Git.Run(ctx, req.Dir(), "reset", "--"+string(mode), target)
	if err != nil {
		return "", err
	}
	text := fmt.Sprintf("Reset (%s) to %s", mode, target)
	if trimmed := strings.TrimSpace(out); trimmed != "" {
		text += "\n" + trimmed
	}
	if mode == domain.ResetHard {
		text += "\n" + HardResetWarning
	}
	return text, nil
}

// Clean removes untracked files and directories. The force flag is a
// deliberate confirmation gate for a destructive operation.
func (uc *ResetUseCase) Clean(ctx context.Context, req domain.CleanRequest) (string, error) {
	if !req.Force {
		return "", &domain.GitError{
			Kind:       domain.ErrInvalidArgument,
			Op:         req.Operation(),
			Message:    "git_clean permanently deletes untracked files and requires force=true",
			Suggestion: "run git_status first to review what would be removed, then retry with force=true",
		}
	}
	out, err := uc.Git.Run(ctx, req.Dir(), "clean", "-fd")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return "Nothing to clean", nil
	}
	return strings.TrimRight(out, "\n"), nil
}
