package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gitmcp/gitmcp/internal/domain"
	"github.com/gitmcp/gitmcp/internal/service"
)

// BranchUseCase contains the logic for the branch and checkout operations.
type BranchUseCase struct {
	Git service.GitExecutor
}

// List lists local branches, or all branches when req.All is set.
func (uc *BranchUseCase) List(ctx context.Context, req domain.BranchListRequest) (string, error) {
	args := []string{"branch"}
	if req.All {
		args = append(args, "-a")
	}
	out, err := uc.Git.Run(ctx, req.Dir(), args...)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return "No branches found", nil
	}
	return strings.TrimRight(out, "\n"), nil
}

// Create creates a branch, optionally checking it out.
func (uc *BranchUseCase) Create(ctx context.Context, req domain.BranchCreateRequest) (string, error) {
	if err := domain.ValidateBranchName(req.Name); err != nil {
		return "", domain.NewInvalidArgument(req.Operation(), "%s", err.Error())
	}
	if req.Checkout {
		if _, err := uc.Git.Run(ctx, req.Dir(), "checkout", "-b", req.Name); err != nil {
			return "", err
		}
		return fmt.Sprintf("Created and switched to branch %s", req.Name), nil
	}
	if _, err := uc.Git.Run(ctx, req.Dir(), "branch", req.Name); err != nil {
		return "", err
	}
	return fmt.Sprintf("Created branch %s", req.Name), nil
}

// Delete deletes a local branch. Force uses -D to drop unmerged branches.
func (uc *BranchUseCase) Delete(ctx context.Context, req domain.BranchDeleteRequest) (string, error) {
	if err := domain.ValidateBranchName(req.Name); err != nil {
		return "", domain.NewInvalidArgument(req.Operation(), "%s", err.Error())
	}
	flag := "-d"
	if req.Force {
		flag = "-D"
	}
	if _, err := uc.Git.Run(ctx, req.Dir(), "branch", flag, req.Name); err != nil {
		return "", err
	}
	return fmt.Sprintf("Deleted branch %s", req.Name), nil
}

// Checkout switches to a branch, tag, or commit. Create makes a new branch
// first.
func (uc *BranchUseCase) Checkout(ctx context.Context, req domain.CheckoutRequest) (string, error) {
	if err := domain.ValidateRef(req.Target); err != nil {
		return "", domain.NewInvalidArgument(req.Operation(), "%s", err.Error())
	}
	args := []string{"checkout"}
	if req.Create {
		if err := domain.ValidateBranchName(req.Target); err != nil {
			return "", domain.NewInvalidArgument(req.Operation(), "%s", err.Error())
		}
		args = append(args, "-b")
	}
	args = append(args, req.Target)
	if _, err := uc.Git.Run(ctx, req.Dir(), args...); err != nil {
		return "", err
	}
	if req.Create {
		return fmt.Sprintf("Created and switched to branch %s", req.Target), nil
	}
	return fmt.Sprintf("Switched to %s", req.Target), nil
}
