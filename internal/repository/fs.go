package repository

import (
	"github.com/spf13/afero"

	"github.com/gitmcp/gitmcp/internal/domain"
)

// FileSystemRepository defines the interface for filesystem operations.
type FileSystemRepository interface {
	afero.Fs
}

// ValidateWorkDir checks that path exists and is a directory. Invalid paths
// come back as classified invalid-argument errors so the transport boundary
// can render them uniformly.
func ValidateWorkDir(fs FileSystemRepository, path string) error {
	if path == "" {
		return domain.NewInvalidArgument("", "working directory cannot be empty")
	}
	info, err := fs.Stat(path)
	if err != nil {
		return domain.NewInvalidArgument("", "working directory does not exist: %s", path)
	}
	if !info.IsDir() {
		return domain.NewInvalidArgument("", "working directory is not a directory: %s", path)
	}
	return nil
}
