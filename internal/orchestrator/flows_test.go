package orchestrator

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gitmcp/gitmcp/internal/domain"
	"github.com/gitmcp/gitmcp/internal/repository"
	"github.com/gitmcp/gitmcp/internal/usecase"
)

func newTestRunner(t *testing.T, git *mockGitExecutor, inspector *mockGitInspector) *Runner {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/repo", 0755))
	dispatcher := usecase.NewDispatcher(git, inspector, fs, new(mockGithubRepository), zap.NewNop())
	return NewRunner(dispatcher, zap.NewNop())
}

func TestRunner_Flow(t *testing.T) {
	workDir := domain.WorkDir{Path: "/repo"}

	t.Run("Should run add_all, commit, and push in order", func(t *testing.T) {
		git := new(mockGitExecutor)
		inspector := new(mockGitInspector)
		runner := newTestRunner(t, git, inspector)
		ctx := context.Background()
		inspector.On("IsRepository", ctx, "/repo").Return(true)
		inspector.On("HasPendingChanges", ctx, "/repo").Return(true, nil)
		git.On("Run", ctx, "/repo", []string{"add", "-A"}).Return("", nil)
		inspector.On("StagedFiles", ctx, "/repo").
			Return(&repository.StagedSummary{Files: []string{"main.go"}, Count: 1}, nil)
		git.On("Run", ctx, "/repo", []string{"commit", "-m", "ship it"}).Return("", nil)
		inspector.On("HeadCommit", ctx, "/repo").
			Return("abc1234def5678901234567890123456789012ab", nil)
		inspector.On("CurrentBranch", ctx, "/repo").Return("main", nil)
		git.On("Run", ctx, "/repo", []string{"push", "origin", "main"}).Return("", nil)

		text, err := runner.Execute(ctx, domain.FlowRequest{WorkDir: workDir, Message: "ship it"})
		require.NoError(t, err)
		assert.Contains(t, text, "[1/3] add_all:")
		assert.Contains(t, text, "[2/3] commit: Created commit abc1234")
		assert.Contains(t, text, "[3/3] push: Pushed main to origin")
		git.AssertExpectations(t)
	})
	t.Run("Should never push after a failed commit", func(t *testing.T) {
		git := new(mockGitExecutor)
		inspector := new(mockGitInspector)
		runner := newTestRunner(t, git, inspector)
		ctx := context.Background()
		inspector.On("IsRepository", ctx, "/repo").Return(true)
		// add_all finds nothing pending, so the commit preflight sees an
		// empty index and fails the workflow at step two.
		inspector.On("HasPendingChanges", ctx, "/repo").Return(false, nil)
		inspector.On("StagedFiles", ctx, "/repo").Return(&repository.StagedSummary{}, nil)

		_, err := runner.Execute(ctx, domain.FlowRequest{WorkDir: workDir, Message: "ship it"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "step 'commit' (2/3) failed")
		assert.Equal(t, domain.ErrInvalidArgument, domain.KindOf(err))
		git.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
	})
	t.Run("Should require a commit message", func(t *testing.T) {
		runner := newTestRunner(t, new(mockGitExecutor), new(mockGitInspector))
		_, err := runner.Execute(context.Background(), domain.FlowRequest{WorkDir: workDir})
		require.Error(t, err)
		assert.Equal(t, domain.ErrInvalidArgument, domain.KindOf(err))
	})
}

func TestRunner_Sync(t *testing.T) {
	workDir := domain.WorkDir{Path: "/repo"}

	t.Run("Should pull then push", func(t *testing.T) {
		git := new(mockGitExecutor)
		inspector := new(mockGitInspector)
		runner := newTestRunner(t, git, inspector)
		ctx := context.Background()
		inspector.On("IsRepository", ctx, "/repo").Return(true)
		git.On("Run", ctx, "/repo", []string{"pull", "origin"}).Return("Already up to date.\n", nil)
		inspector.On("CurrentBranch", ctx, "/repo").Return("main", nil)
		git.On("Run", ctx, "/repo", []string{"push", "origin", "main"}).Return("", nil)

		text, err := runner.Execute(ctx, domain.SyncRequest{WorkDir: workDir})
		require.NoError(t, err)
		assert.Contains(t, text, "[1/2] pull: Already up to date.")
		assert.Contains(t, text, "[2/2] push: Pushed main to origin")
	})
	t.Run("Should never push after a failed pull", func(t *testing.T) {
		git := new(mockGitExecutor)
		inspector := new(mockGitInspector)
		runner := newTestRunner(t, git, inspector)
		ctx := context.Background()
		inspector.On("IsRepository", ctx, "/repo").Return(true)
		git.On("Run", ctx, "/repo", []string{"pull", "origin"}).
			Return("", domain.NewGitError(domain.ErrNetworkFailed, "pull", "network failure"))

		_, err := runner.Execute(ctx, domain.SyncRequest{WorkDir: workDir})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "step 'pull' (1/2) failed")
		git.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, []string{"push", "origin", "main"})
	})
}

func TestRunner_Execute_DelegatesBaseOperations(t *testing.T) {
	git := new(mockGitExecutor)
	inspector := new(mockGitInspector)
	runner := newTestRunner(t, git, inspector)
	ctx := context.Background()
	inspector.On("IsRepository", ctx, "/repo").Return(true)
	git.On("Run", ctx, "/repo", []string{"status"}).Return("On branch main\n", nil)

	text, err := runner.Execute(ctx, domain.StatusRequest{WorkDir: domain.WorkDir{Path: "/repo"}})
	require.NoError(t, err)
	assert.Equal(t, "On branch main", text)
}
