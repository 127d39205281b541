package usecase

import (
	"context"
	"strings"

	"github.com/gitmcp/gitmcp/internal/domain"
	"github.com/gitmcp/gitmcp/internal/service"
)

// InitUseCase contains the logic for the init operation.
type InitUseCase struct {
	Git service.GitExecutor
}

// Execute initializes a repository in the working directory, or in a
// subdirectory when one is given.
func (uc *InitUseCase) Execute(ctx context.Context, req domain.InitRequest) (string, error) {
	args := []string{"init"}
	if req.Bare {
		args = append(args, "--bare")
	}
	if req.Directory != "" {
		if strings.HasPrefix(req.Directory, "-") {
			return "", domain.NewInvalidArgument(req.Operation(), "invalid directory: %s", req.Directory)
		}
		args = append(args, req.Directory)
	}
	out, err := uc.Git.Run(ctx, req.Dir(), args...)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}
