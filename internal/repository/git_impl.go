package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5"

	"github.com/gitmcp/gitmcp/internal/domain"
)

// gitInspector is the implementation of the GitInspector interface.
type gitInspector struct{}

// NewGitInspector creates a new GitInspector.
func NewGitInspector() GitInspector {
	return &gitInspector{}
}

// open opens the repository containing dir, searching parent directories the
// way the git binary does.
func (r *gitInspector) open(dir string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, &domain.GitError{
				Kind:       domain.ErrNotARepository,
				Message:    fmt.Sprintf("%s is not inside a git repository", dir),
				Suggestion: "run git_init to create a repository here, or pass the path of an existing one",
			}
		}
		return nil, fmt.Errorf("failed to open repository at %s: %w", dir, err)
	}
	return repo, nil
}

// IsRepository reports whether dir is inside a git repository.
func (r *gitInspector) IsRepository(_ context.Context, dir string) bool {
	_, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	return err == nil
}

// HasPendingChanges reports whether the worktree has any uncommitted changes,
// staged or not, including untracked files.
func (r *gitInspector) HasPendingChanges(_ context.Context, dir string) (bool, error) {
	status, err := r.worktreeStatus(dir)
	if err != nil {
		return false, err
	}
	return !status.IsClean(), nil
}

// StagedFiles returns the files currently staged for commit.
func (r *gitInspector) StagedFiles(_ context.Context, dir string) (*StagedSummary, error) {
	status, err := r.worktreeStatus(dir)
	if err != nil {
		return nil, err
	}
	summary := &StagedSummary{}
	for path, fileStatus := range status {
		if fileStatus.Staging != git.Unmodified && fileStatus.Staging != git.Untracked {
			summary.Files = append(summary.Files, path)
		}
	}
	sort.Strings(summary.Files)
	summary.Count = len(summary.Files)
	return summary, nil
}

// CurrentBranch returns the name of the current branch.
func (r *gitInspector) CurrentBranch(_ context.Context, dir string) (string, error) {
	repo, err := r.open(dir)
	if err != nil {
		return "", err
	}
	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}
	return head.Name().Short(), nil
}

// HeadCommit returns the SHA of the current HEAD commit.
func (r *gitInspector) HeadCommit(_ context.Context, dir string) (string, error) {
	repo, err := r.open(dir)
	if err != nil {
		return "", err
	}
	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}
	return head.Hash().String(), nil
}

// RemoteURL returns the first URL configured for the named remote.
func (r *gitInspector) RemoteURL(_ context.Context, dir, name string) (string, error) {
	repo, err := r.open(dir)
	if err != nil {
		return "", err
	}
	remote, err := repo.Remote(name)
	if err != nil {
		return "", fmt.Errorf("failed to get remote %s: %w", name, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %s has no configured URL", name)
	}
	return urls[0], nil
}

func (r *gitInspector) worktreeStatus(dir string) (git.Status, error) {
	repo, err := r.open(dir)
	if err != nil {
		return nil, err
	}
	w, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}
	status, err := w.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}
	return status, nil
}
