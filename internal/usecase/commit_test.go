package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gitmcp/gitmcp/internal/domain"
	"github.com/gitmcp/gitmcp/internal/repository"
)

func TestCommitUseCase_Execute(t *testing.T) {
	t.Run("Should create a commit and report the short hash", func(t *testing.T) {
		git := new(mockGitExecutor)
		inspector := new(mockGitInspector)
		uc := &CommitUseCase{Git: git, Inspector: inspector}
		ctx := context.Background()
		inspector.On("StagedFiles", ctx, ".").
			Return(&repository.StagedSummary{Files: []string{"main.go"}, Count: 1}, nil)
		git.On("Run", ctx, ".", []string{"commit", "-m", "add feature"}).Return("", nil)
		inspector.On("HeadCommit", ctx, ".").
			Return("abc1234def5678901234567890123456789012ab", nil)

		text, err := uc.Execute(ctx, domain.CommitRequest{
			WorkDir: domain.WorkDir{Path: "."},
			Message: "add feature",
		})
		require.NoError(t, err)
		assert.Equal(t, "Created commit abc1234 with 1 file(s)", text)
		git.AssertExpectations(t)
	})
	t.Run("Should fail on an empty message without invoking git", func(t *testing.T) {
		git := new(mockGitExecutor)
		uc := &CommitUseCase{Git: git, Inspector: new(mockGitInspector)}
		_, err := uc.Execute(context.Background(), domain.CommitRequest{
			WorkDir: domain.WorkDir{Path: "."},
			Message: "   ",
		})
		require.Error(t, err)
		assert.Equal(t, domain.ErrInvalidArgument, domain.KindOf(err))
		assert.Contains(t, err.Error(), "commit message is required")
		git.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
	})
	t.Run("Should fail when nothing is staged", func(t *testing.T) {
		git := new(mockGitExecutor)
		inspector := new(mockGitInspector)
		uc := &CommitUseCase{Git: git, Inspector: inspector}
		ctx := context.Background()
		inspector.On("StagedFiles", ctx, ".").Return(&repository.StagedSummary{}, nil)

		_, err := uc.Execute(ctx, domain.CommitRequest{
			WorkDir: domain.WorkDir{Path: "."},
			Message: "msg",
		})
		require.Error(t, err)
		assert.Equal(t, domain.ErrInvalidArgument, domain.KindOf(err))
		assert.Contains(t, err.Error(), "nothing to commit")
		git.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
	})
}
