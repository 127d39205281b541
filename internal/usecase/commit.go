package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gitmcp/gitmcp/internal/domain"
	"github.com/gitmcp/gitmcp/internal/repository"
	"github.com/gitmcp/gitmcp/internal/service"
)

// CommitUseCase contains the logic for the commit operation.
type CommitUseCase struct {
	Git       service.GitExecutor
	Inspector repository.GitInspector
}

// Execute creates a commit from the staged changes. The staged file count is
// checked before the subprocess runs so an empty index fails with a
// structured message instead of parsed git output.
func (uc *CommitUseCase) Execute(ctx context.Context, req domain.CommitRequest) (string, error) {
	if strings.TrimSpace(req.Message) == "" {
		return "", &domain.GitError{
			Kind:       domain.ErrInvalidArgument,
			Op:         req.Operation(),
			Message:    "commit message is required",
			Suggestion: "provide a non-empty message argument",
		}
	}
	staged, err := uc.Inspector.StagedFiles(ctx, req.Dir())
	if err != nil {
		return "", err
	}
	if staged.Count == 0 {
		return "", &domain.GitError{
			Kind:       domain.ErrInvalidArgument,
			Op:         req.Operation(),
			Message:    "nothing to commit: no staged changes",
			Suggestion: "stage changes with git_add or git_add_all first",
		}
	}
	if _, err := uc.Git.Run(ctx, req.Dir(), "commit", "-m", req.Message); err != nil {
		return "", err
	}
	hash, err := uc.Inspector.HeadCommit(ctx, req.Dir())
	if err != nil {
		return fmt.Sprintf("Created commit with %d file(s)", staged.Count), nil
	}
	return fmt.Sprintf("Created commit %s with %d file(s)", shortHash(hash), staged.Count), nil
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
