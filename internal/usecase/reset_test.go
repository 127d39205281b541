package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gitmcp/gitmcp/internal/domain"
)

func TestResetUseCase_Reset(t *testing.T) {
	t.Run("Should default to a mixed reset of HEAD", func(t *testing.T) {
		git := new(mockGitExecutor)
		uc := &ResetUseCase{Git: git}
		ctx := context.Background()
		git.On("Run", ctx, ".", []string{"reset", "--mixed", "HEAD"}).Return("", nil)

		text, err := uc.Reset(ctx, domain.ResetRequest{WorkDir: domain.WorkDir{Path: "."}})
		require.NoError(t, err)
		assert.Equal(t, "Reset (mixed) to HEAD", text)
		assert.NotContains(t, text, "WARNING")
	})
	t.Run("Should append the destructive warning on hard resets", func(t *testing.T) {
		git := new(mockGitExecutor)
		uc := &ResetUseCase{Git: git}
		ctx := context.Background()
		git.On("Run", ctx, ".", []string{"reset", "--hard", "HEAD~1"}).Return("HEAD is now at abc1234\n", nil)

		text, err := uc.Reset(ctx, domain.ResetRequest{
			WorkDir: domain.WorkDir{Path: "."},
			Mode:    domain.ResetHard,
			Target:  "HEAD~1",
		})
		require.NoError(t, err)
		assert.Contains(t, text, HardResetWarning)
	})
	t.Run("Should reject unknown modes", func(t *testing.T) {
		uc := &ResetUseCase{Git: new(mockGitExecutor)}
		_, err := uc.Reset(context.Background(), domain.ResetRequest{
			WorkDir: domain.WorkDir{Path: "."},
			Mode:    "gentle",
		})
		require.Error(t, err)
		assert.Equal(t, domain.ErrInvalidArgument, domain.KindOf(err))
	})
	t.Run("Should reject targets that look like options", func(t *testing.T) {
		uc := &ResetUseCase{Git: new(mockGitExecutor)}
		_, err := uc.Reset(context.Background(), domain.ResetRequest{
			WorkDir: domain.WorkDir{Path: "."},
			Target:  "--hard",
		})
		require.Error(t, err)
		assert.Equal(t, domain.ErrInvalidArgument, domain.KindOf(err))
	})
}

func TestResetUseCase_Clean(t *testing.T) {
	t.Run("Should refuse to run without force", func(t *testing.T) {
		git := new(mockGitExecutor)
		uc := &ResetUseCase{Git: git}
		_, err := uc.Clean(context.Background(), domain.CleanRequest{WorkDir: domain.WorkDir{Path: "."}})
		require.Error(t, err)
		assert.Equal(t, domain.ErrInvalidArgument, domain.KindOf(err))
		assert.Contains(t, domain.SuggestionFor(err), "force=true")
		git.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
	})
	t.Run("Should clean untracked files with force", func(t *testing.T) {
		git := new(mockGitExecutor)
		uc := &ResetUseCase{Git: git}
		ctx := context.Background()
		git.On("Run", ctx, ".", []string{"clean", "-fd"}).Return("Removing build/\n", nil)

		text, err := uc.Clean(ctx, domain.CleanRequest{WorkDir: domain.WorkDir{Path: "."}, Force: true})
		require.NoError(t, err)
		assert.Equal(t, "Removing build/", text)
	})
	t.Run("Should report when there is nothing to clean", func(t *testing.T) {
		git := new(mockGitExecutor)
		uc := &ResetUseCase{Git: git}
		ctx := context.Background()
		git.On("Run", ctx, ".", []string{"clean", "-fd"}).Return("", nil)

		text, err := uc.Clean(ctx, domain.CleanRequest{WorkDir: domain.WorkDir{Path: "."}, Force: true})
		require.NoError(t, err)
		assert.Equal(t, "Nothing to clean", text)
	})
}
