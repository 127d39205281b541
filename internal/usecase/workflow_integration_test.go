package usecase

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gitmcp/gitmcp/internal/config"
	"github.com/gitmcp/gitmcp/internal/domain"
	"github.com/gitmcp/gitmcp/internal/repository"
	"github.com/gitmcp/gitmcp/internal/service"
)

// TestDispatcher_RealGitWorkflow drives the real executor and inspector
// through a full init -> add_all -> commit -> log cycle in a temp repository.
func TestDispatcher_RealGitWorkflow(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
	ctx := context.Background()
	dir := t.TempDir()
	workDir := domain.WorkDir{Path: dir}

	gitExec := service.NewGitExecutor(config.DefaultConfig(), zap.NewNop())
	inspector := repository.NewGitInspector()
	d := NewDispatcher(gitExec, inspector, afero.NewOsFs(), nil, zap.NewNop())

	text, err := d.Dispatch(ctx, domain.InitRequest{WorkDir: workDir})
	require.NoError(t, err)
	assert.Contains(t, text, "Initialized")

	// Commits need an identity; scope it to the test repository.
	_, err = gitExec.Run(ctx, dir, "config", "user.email", "test@example.com")
	require.NoError(t, err)
	_, err = gitExec.Run(ctx, dir, "config", "user.name", "Test User")
	require.NoError(t, err)

	err = os.WriteFile(filepath.Join(dir, "hello.txt"), []byte("hello\n"), 0644)
	require.NoError(t, err)

	text, err = d.Dispatch(ctx, domain.AddAllRequest{WorkDir: workDir})
	require.NoError(t, err)
	assert.Contains(t, text, "Staged 1 file(s)")
	assert.Contains(t, text, "hello.txt")

	text, err = d.Dispatch(ctx, domain.CommitRequest{WorkDir: workDir, Message: "initial"})
	require.NoError(t, err)
	assert.Contains(t, text, "Created commit")

	hash, err := inspector.HeadCommit(ctx, dir)
	require.NoError(t, err)
	assert.Contains(t, text, hash[:7])

	text, err = d.Dispatch(ctx, domain.LogRequest{WorkDir: workDir, Count: 1, Oneline: true})
	require.NoError(t, err)
	assert.Contains(t, text, "initial")

	// The tree is clean again, so add_all short-circuits.
	text, err = d.Dispatch(ctx, domain.AddAllRequest{WorkDir: workDir})
	require.NoError(t, err)
	assert.Equal(t, "Nothing to add: working tree clean", text)

	text, err = d.Dispatch(ctx, domain.StatusRequest{WorkDir: workDir})
	require.NoError(t, err)
	assert.Contains(t, text, "working tree clean")
}
