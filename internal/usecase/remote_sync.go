package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gitmcp/gitmcp/internal/domain"
	"github.com/gitmcp/gitmcp/internal/repository"
	"github.com/gitmcp/gitmcp/internal/service"
)

// RemoteSyncUseCase contains the logic for the push, pull, fetch, and clone
// operations.
type RemoteSyncUseCase struct {
	Git       service.GitExecutor
	Inspector repository.GitInspector
}

// Push pushes a branch to a remote. Remote defaults to origin, branch to the
// current branch.
func (uc *RemoteSyncUseCase) Push(ctx context.Context, req domain.PushRequest) (string, error) {
	remote := req.Remote
	if remote == "" {
		remote = "origin"
	}
	if err := domain.ValidateRemoteName(remote); err != nil {
		return "", domain.NewInvalidArgument(req.Operation(), "%s", err.Error())
	}
	branch := req.Branch
	if branch == "" {
		current, err := uc.Inspector.CurrentBranch(ctx, req.Dir())
		if err != nil {
			return "", fmt.Errorf("failed to resolve current branch: %w", err)
		}
		branch = current
	}
	if err := domain.ValidateBranchName(branch); err != nil {
		return "", domain.NewInvalidArgument(req.Operation(), "%s", err.Error())
	}
	args := []string{"push"}
	if req.Force {
		args = append(args, "--force-with-lease")
	}
	args = append(args, remote, branch)
	out, err := uc.Git.Run(ctx, req.Dir(), args...)
	if err != nil {
		return "", err
	}
	text := fmt.Sprintf("Pushed %s to %s", branch, remote)
	if req.Force {
		text += " (forced)"
	}
	if trimmed := strings.TrimSpace(out); trimmed != "" {
		text += "\n" + trimmed
	}
	return text, nil
}

// Pull fetches from and integrates with a remote branch.
func (uc *RemoteSyncUseCase) Pull(ctx context.Context, req domain.PullRequest) (string, error) {
	remote := req.Remote
	if remote == "" {
		remote = "origin"
	}
	if err := domain.ValidateRemoteName(remote); err != nil {
		return "", domain.NewInvalidArgument(req.Operation(), "%s", err.Error())
	}
	args := []string{"pull", remote}
	if req.Branch != "" {
		if err := domain.ValidateBranchName(req.Branch); err != nil {
			return "", domain.NewInvalidArgument(req.Operation(), "%s", err.Error())
		}
		args = append(args, req.Branch)
	}
	out, err := uc.Git.Run(ctx, req.Dir(), args...)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}

// Fetch downloads objects and refs from a remote.
func (uc *RemoteSyncUseCase) Fetch(ctx context.Context, req domain.FetchRequest) (string, error) {
	remote := req.Remote
	if remote == "" {
		remote = "origin"
	}
	if err := domain.ValidateRemoteName(remote); err != nil {
		return "", domain.NewInvalidArgument(req.Operation(), "%s", err.Error())
	}
	out, err := uc.Git.Run(ctx, req.Dir(), "fetch", remote)
	if err != nil {
		return "", err
	}
	text := fmt.Sprintf("Fetched from %s", remote)
	if trimmed := strings.TrimSpace(out); trimmed != "" {
		text += "\n" + trimmed
	}
	return text, nil
}

// Clone clones a repository into the working directory.
func (uc *RemoteSyncUseCase) Clone(ctx context.Context, req domain.CloneRequest) (string, error) {
	if strings.TrimSpace(req.URL) == "" {
		return "", domain.NewInvalidArgument(req.Operation(), "repository url is required")
	}
	if strings.HasPrefix(req.URL, "-") {
		return "", domain.NewInvalidArgument(req.Operation(), "invalid repository url: %s", req.URL)
	}
	args := []string{"clone", req.URL}
	if req.Directory != "" {
		if strings.HasPrefix(req.Directory, "-") {
			return "", domain.NewInvalidArgument(req.Operation(), "invalid target directory: %s", req.Directory)
		}
		args = append(args, req.Directory)
	}
	if _, err := uc.Git.Run(ctx, req.Dir(), args...); err != nil {
		return "", err
	}
	target := req.Directory
	if target == "" {
		target = deriveCloneDir(req.URL)
	}
	return fmt.Sprintf("Cloned %s into %s", req.URL, target), nil
}

// deriveCloneDir mirrors git's default target directory for a clone URL.
func deriveCloneDir(url string) string {
	base := strings.TrimSuffix(strings.TrimRight(url, "/"), ".git")
	if idx := strings.LastIndexAny(base, "/:"); idx >= 0 {
		base = base[idx+1:]
	}
	return base
}
