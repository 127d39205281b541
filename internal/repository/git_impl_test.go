package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitmcp/gitmcp/internal/domain"
)

func setupTestRepo(t *testing.T) (string, *git.Repository) {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	testFile := filepath.Join(dir, "test.txt")
	err = os.WriteFile(testFile, []byte("test content"), 0644)
	require.NoError(t, err)
	_, err = wt.Add("test.txt")
	require.NoError(t, err)
	_, err = wt.Commit("Initial commit", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test User",
			Email: "test@example.com",
		},
	})
	require.NoError(t, err)
	return dir, repo
}

func TestGitInspector_IsRepository(t *testing.T) {
	inspector := NewGitInspector()
	ctx := context.Background()
	t.Run("Should return true for an initialized repository", func(t *testing.T) {
		dir, _ := setupTestRepo(t)
		assert.True(t, inspector.IsRepository(ctx, dir))
	})
	t.Run("Should return true for a subdirectory of a repository", func(t *testing.T) {
		dir, _ := setupTestRepo(t)
		sub := filepath.Join(dir, "nested")
		require.NoError(t, os.Mkdir(sub, 0755))
		assert.True(t, inspector.IsRepository(ctx, sub))
	})
	t.Run("Should return false for a plain directory", func(t *testing.T) {
		assert.False(t, inspector.IsRepository(ctx, t.TempDir()))
	})
}

func TestGitInspector_HasPendingChanges(t *testing.T) {
	inspector := NewGitInspector()
	ctx := context.Background()
	t.Run("Should return false for a clean worktree", func(t *testing.T) {
		dir, _ := setupTestRepo(t)
		pending, err := inspector.HasPendingChanges(ctx, dir)
		require.NoError(t, err)
		assert.False(t, pending)
	})
	t.Run("Should detect untracked files", func(t *testing.T) {
		dir, _ := setupTestRepo(t)
		err := os.WriteFile(filepath.Join(dir, "new.txt"), []byte("new"), 0644)
		require.NoError(t, err)
		pending, err := inspector.HasPendingChanges(ctx, dir)
		require.NoError(t, err)
		assert.True(t, pending)
	})
	t.Run("Should return a classified error outside a repository", func(t *testing.T) {
		_, err := inspector.HasPendingChanges(ctx, t.TempDir())
		require.Error(t, err)
		assert.Equal(t, domain.ErrNotARepository, domain.KindOf(err))
	})
}

func TestGitInspector_StagedFiles(t *testing.T) {
	inspector := NewGitInspector()
	ctx := context.Background()
	t.Run("Should return an empty summary for a clean worktree", func(t *testing.T) {
		dir, _ := setupTestRepo(t)
		staged, err := inspector.StagedFiles(ctx, dir)
		require.NoError(t, err)
		assert.Equal(t, 0, staged.Count)
		assert.Empty(t, staged.Files)
	})
	t.Run("Should list staged files sorted", func(t *testing.T) {
		dir, repo := setupTestRepo(t)
		wt, err := repo.Worktree()
		require.NoError(t, err)
		for _, name := range []string{"b.txt", "a.txt"} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0644))
			_, err = wt.Add(name)
			require.NoError(t, err)
		}
		staged, err := inspector.StagedFiles(ctx, dir)
		require.NoError(t, err)
		assert.Equal(t, 2, staged.Count)
		assert.Equal(t, []string{"a.txt", "b.txt"}, staged.Files)
	})
	t.Run("Should not count untracked files as staged", func(t *testing.T) {
		dir, _ := setupTestRepo(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "loose.txt"), []byte("x"), 0644))
		staged, err := inspector.StagedFiles(ctx, dir)
		require.NoError(t, err)
		assert.Equal(t, 0, staged.Count)
	})
}

func TestGitInspector_CurrentBranchAndHead(t *testing.T) {
	inspector := NewGitInspector()
	ctx := context.Background()
	dir, repo := setupTestRepo(t)

	branch, err := inspector.CurrentBranch(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, "master", branch)

	head, err := repo.Head()
	require.NoError(t, err)
	hash, err := inspector.HeadCommit(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, head.Hash().String(), hash)
}

func TestGitInspector_RemoteURL(t *testing.T) {
	inspector := NewGitInspector()
	ctx := context.Background()
	t.Run("Should return the configured remote URL", func(t *testing.T) {
		dir, repo := setupTestRepo(t)
		_, err := repo.CreateRemote(&gitconfig.RemoteConfig{
			Name: "origin",
			URLs: []string{"git@github.com:octo/widget.git"},
		})
		require.NoError(t, err)
		url, err := inspector.RemoteURL(ctx, dir, "origin")
		require.NoError(t, err)
		assert.Equal(t, "git@github.com:octo/widget.git", url)
	})
	t.Run("Should fail for a missing remote", func(t *testing.T) {
		dir, _ := setupTestRepo(t)
		_, err := inspector.RemoteURL(ctx, dir, "origin")
		assert.Error(t, err)
	})
}
