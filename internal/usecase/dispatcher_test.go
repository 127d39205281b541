package usecase

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gitmcp/gitmcp/internal/domain"
)

func newTestDispatcher(t *testing.T, git *mockGitExecutor, inspector *mockGitInspector) *Dispatcher {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/repo", 0755))
	return NewDispatcher(git, inspector, fs, new(mockGithubRepository), zap.NewNop())
}

func TestDispatcher_Dispatch(t *testing.T) {
	t.Run("Should reject a missing working directory before any preflight", func(t *testing.T) {
		git := new(mockGitExecutor)
		inspector := new(mockGitInspector)
		d := newTestDispatcher(t, git, inspector)

		_, err := d.Dispatch(context.Background(), domain.StatusRequest{
			WorkDir: domain.WorkDir{Path: "/nope"},
		})
		require.Error(t, err)
		assert.Equal(t, domain.ErrInvalidArgument, domain.KindOf(err))
		inspector.AssertNotCalled(t, "IsRepository", mock.Anything, mock.Anything)
	})
	t.Run("Should fail the repository preflight without invoking git", func(t *testing.T) {
		git := new(mockGitExecutor)
		inspector := new(mockGitInspector)
		d := newTestDispatcher(t, git, inspector)
		ctx := context.Background()
		inspector.On("IsRepository", ctx, "/repo").Return(false)

		_, err := d.Dispatch(ctx, domain.StatusRequest{WorkDir: domain.WorkDir{Path: "/repo"}})
		require.Error(t, err)
		assert.Equal(t, domain.ErrNotARepository, domain.KindOf(err))
		assert.Contains(t, domain.SuggestionFor(err), "git_init")
		git.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
	})
	t.Run("Should exempt init from the repository preflight", func(t *testing.T) {
		git := new(mockGitExecutor)
		inspector := new(mockGitInspector)
		d := newTestDispatcher(t, git, inspector)
		ctx := context.Background()
		git.On("Run", ctx, "/repo", []string{"init"}).Return("Initialized empty Git repository\n", nil)

		text, err := d.Dispatch(ctx, domain.InitRequest{WorkDir: domain.WorkDir{Path: "/repo"}})
		require.NoError(t, err)
		assert.Contains(t, text, "Initialized")
		inspector.AssertNotCalled(t, "IsRepository", mock.Anything, mock.Anything)
	})
	t.Run("Should route operations by request type", func(t *testing.T) {
		git := new(mockGitExecutor)
		inspector := new(mockGitInspector)
		d := newTestDispatcher(t, git, inspector)
		ctx := context.Background()
		inspector.On("IsRepository", ctx, "/repo").Return(true)
		git.On("Run", ctx, "/repo", []string{"status"}).Return("On branch main\n", nil)

		text, err := d.Dispatch(ctx, domain.StatusRequest{WorkDir: domain.WorkDir{Path: "/repo"}})
		require.NoError(t, err)
		assert.Equal(t, "On branch main", text)
	})
}
