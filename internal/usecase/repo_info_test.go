package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitmcp/gitmcp/internal/domain"
	"github.com/gitmcp/gitmcp/internal/repository"
)

func TestRepoInfoUseCase_Execute(t *testing.T) {
	req := domain.RepoInfoRequest{WorkDir: domain.WorkDir{Path: "."}}

	t.Run("Should enrich github remotes with API metadata", func(t *testing.T) {
		inspector := new(mockGitInspector)
		github := new(mockGithubRepository)
		uc := &RepoInfoUseCase{Inspector: inspector, Github: github}
		ctx := context.Background()
		inspector.On("CurrentBranch", ctx, ".").Return("main", nil)
		inspector.On("HeadCommit", ctx, ".").Return("abc1234def5678901234567890123456789012ab", nil)
		inspector.On("RemoteURL", ctx, ".", "origin").Return("git@github.com:octo/widget.git", nil)
		github.On("RepoSummary", ctx, "octo", "widget").Return(&repository.RepoSummary{
			FullName:      "octo/widget",
			Description:   "A widget",
			DefaultBranch: "main",
			Stars:         42,
			OpenIssues:    3,
		}, nil)

		text, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		assert.Contains(t, text, "Branch: main")
		assert.Contains(t, text, "Remote: git@github.com:octo/widget.git")
		assert.Contains(t, text, "GitHub: octo/widget")
		assert.Contains(t, text, "Stars: 42")
	})
	t.Run("Should degrade to local info when the API fails", func(t *testing.T) {
		inspector := new(mockGitInspector)
		github := new(mockGithubRepository)
		uc := &RepoInfoUseCase{Inspector: inspector, Github: github}
		ctx := context.Background()
		inspector.On("CurrentBranch", ctx, ".").Return("main", nil)
		inspector.On("HeadCommit", ctx, ".").Return("abc1234", nil)
		inspector.On("RemoteURL", ctx, ".", "origin").Return("git@github.com:octo/widget.git", nil)
		github.On("RepoSummary", ctx, "octo", "widget").Return(nil, errors.New("rate limited"))

		text, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		assert.Contains(t, text, "Branch: main")
		assert.NotContains(t, text, "GitHub:")
	})
	t.Run("Should report a repository without remotes", func(t *testing.T) {
		inspector := new(mockGitInspector)
		uc := &RepoInfoUseCase{Inspector: inspector, Github: new(mockGithubRepository)}
		ctx := context.Background()
		inspector.On("CurrentBranch", ctx, ".").Return("main", nil)
		inspector.On("HeadCommit", ctx, ".").Return("abc1234", nil)
		inspector.On("RemoteURL", ctx, ".", "origin").Return("", errors.New("remote not found"))

		text, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		assert.Contains(t, text, "Remote: none configured")
	})
}
