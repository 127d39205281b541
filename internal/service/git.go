package service

import (
	"context"

	"github.com/Masterminds/semver/v3"
)

// GitExecutor defines the interface for invoking the git binary.
type GitExecutor interface {
	// Run executes git with the given arguments in dir and returns stdout.
	// Failures are returned as classified *domain.GitError values.
	Run(ctx context.Context, dir string, args ...string) (string, error)
	// Version returns the version of the installed git binary.
	Version(ctx context.Context) (*semver.Version, error)
}
