package repository

import "context"

// StagedSummary describes what is currently staged in a worktree.
type StagedSummary struct {
	Files []string
	Count int
}

// GitInspector defines the interface for structured repository introspection.
// It backs preflight checks (is this a repository, is there anything to
// stage) and result enrichment (staged counts, head commit) without shelling
// out, so common failures are detected from typed errors instead of stderr
// substrings.
type GitInspector interface {
	IsRepository(ctx context.Context, dir string) bool
	HasPendingChanges(ctx context.Context, dir string) (bool, error)
	StagedFiles(ctx context.Context, dir string) (*StagedSummary, error)
	CurrentBranch(ctx context.Context, dir string) (string, error)
	HeadCommit(ctx context.Context, dir string) (string, error)
	RemoteURL(ctx context.Context, dir, name string) (string, error)
}
