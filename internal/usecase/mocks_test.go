package usecase

import (
	"context"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/mock"

	"github.com/gitmcp/gitmcp/internal/repository"
)

// Mock for GitExecutor
type mockGitExecutor struct{ mock.Mock }

func (m *mockGitExecutor) Run(ctx context.Context, dir string, args ...string) (string, error) {
	callArgs := m.Called(ctx, dir, args)
	return callArgs.String(0), callArgs.Error(1)
}

func (m *mockGitExecutor) Version(ctx context.Context) (*semver.Version, error) {
	callArgs := m.Called(ctx)
	if callArgs.Get(0) == nil {
		return nil, callArgs.Error(1)
	}
	return callArgs.Get(0).(*semver.Version), callArgs.Error(1)
}

// Mock for GitInspector
type mockGitInspector struct{ mock.Mock }

func (m *mockGitInspector) IsRepository(ctx context.Context, dir string) bool {
	callArgs := m.Called(ctx, dir)
	return callArgs.Bool(0)
}

func (m *mockGitInspector) HasPendingChanges(ctx context.Context, dir string) (bool, error) {
	callArgs := m.Called(ctx, dir)
	return callArgs.Bool(0), callArgs.Error(1)
}

func (m *mockGitInspector) StagedFiles(ctx context.Context, dir string) (*repository.StagedSummary, error) {
	callArgs := m.Called(ctx, dir)
	if callArgs.Get(0) == nil {
		return nil, callArgs.Error(1)
	}
	return callArgs.Get(0).(*repository.StagedSummary), callArgs.Error(1)
}

func (m *mockGitInspector) CurrentBranch(ctx context.Context, dir string) (string, error) {
	callArgs := m.Called(ctx, dir)
	return callArgs.String(0), callArgs.Error(1)
}

func (m *mockGitInspector) HeadCommit(ctx context.Context, dir string) (string, error) {
	callArgs := m.Called(ctx, dir)
	return callArgs.String(0), callArgs.Error(1)
}

func (m *mockGitInspector) RemoteURL(ctx context.Context, dir, name string) (string, error) {
	callArgs := m.Called(ctx, dir, name)
	return callArgs.String(0), callArgs.Error(1)
}

// Mock for GithubRepository
type mockGithubRepository struct{ mock.Mock }

func (m *mockGithubRepository) RepoSummary(ctx context.Context, owner, repo string) (*repository.RepoSummary, error) {
	callArgs := m.Called(ctx, owner, repo)
	if callArgs.Get(0) == nil {
		return nil, callArgs.Error(1)
	}
	return callArgs.Get(0).(*repository.RepoSummary), callArgs.Error(1)
}
