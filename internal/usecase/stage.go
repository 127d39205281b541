package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gitmcp/gitmcp/internal/domain"
	"github.com/gitmcp/gitmcp/internal/repository"
	"github.com/gitmcp/gitmcp/internal/service"
)

// StageUseCase contains the logic for the status, add, and add-all
// operations.
type StageUseCase struct {
	Git       service.GitExecutor
	Inspector repository.GitInspector
}

// Status returns the output of git status for the working directory.
func (uc *StageUseCase) Status(ctx context.Context, req domain.StatusRequest) (string, error) {
	out, err := uc.Git.Run(ctx, req.Dir(), "status")
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}

// Add stages the requested files.
func (uc *StageUseCase) Add(ctx context.Context, req domain.AddRequest) (string, error) {
	if len(req.Files) == 0 {
		return "", domain.NewInvalidArgument(req.Operation(), "at least one file is required")
	}
	for _, f := range req.Files {
		if strings.HasPrefix(f, "-") {
			return "", domain.NewInvalidArgument(req.Operation(), "invalid file name: %s", f)
		}
	}
	args := append([]string{"add", "--"}, req.Files...)
	if _, err := uc.Git.Run(ctx, req.Dir(), args...); err != nil {
		return "", err
	}
	staged, err := uc.Inspector.StagedFiles(ctx, req.Dir())
	if err != nil {
		return fmt.Sprintf("Staged %d file(s)", len(req.Files)), nil
	}
	return formatStaged(staged), nil
}

// AddAll stages everything in the working tree. A clean tree short-circuits
// without invoking git at all.
func (uc *StageUseCase) AddAll(ctx context.Context, req domain.AddAllRequest) (string, error) {
	pending, err := uc.Inspector.HasPendingChanges(ctx, req.Dir())
	if err != nil {
		return "", err
	}
	if !pending {
		return "Nothing to add: working tree clean", nil
	}
	if _, err := uc.Git.Run(ctx, req.Dir(), "add", "-A"); err != nil {
		return "", err
	}
	staged, err := uc.Inspector.StagedFiles(ctx, req.Dir())
	if err != nil {
		return "Staged all pending changes", nil
	}
	return formatStaged(staged), nil
}

func formatStaged(staged *repository.StagedSummary) string {
	if staged.Count == 0 {
		return "Nothing staged"
	}
	return fmt.Sprintf("Staged %d file(s):\n  %s", staged.Count, strings.Join(staged.Files, "\n  "))
}
