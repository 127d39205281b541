package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gitmcp/gitmcp/internal/domain"
	"github.com/gitmcp/gitmcp/internal/service"
)

// RemoteAdminUseCase contains the logic for remote management operations.
type RemoteAdminUseCase struct {
	Git service.GitExecutor
}

// List shows the configured remotes and their URLs.
func (uc *RemoteAdminUseCase) List(ctx context.Context, req domain.RemoteListRequest) (string, error) {
	out, err := uc.Git.Run(ctx, req.Dir(), "remote", "-v")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return "No remotes configured", nil
	}
	return strings.TrimRight(out, "\n"), nil
}

// Add registers a new remote.
func (uc *RemoteAdminUseCase) Add(ctx context.Context, req domain.RemoteAddRequest) (string, error) {
	if err := domain.ValidateRemoteName(req.Name); err != nil {
		return "", domain.NewInvalidArgument(req.Operation(), "%s", err.Error())
	}
	if strings.TrimSpace(req.URL) == "" {
		return "", domain.NewInvalidArgument(req.Operation(), "remote url is required")
	}
	if strings.HasPrefix(req.URL, "-") {
		return "", domain.NewInvalidArgument(req.Operation(), "invalid remote url: %s", req.URL)
	}
	if _, err := uc.Git.Run(ctx, req.Dir(), "remote", "add", req.Name, req.URL); err != nil {
		return "", err
	}
	return fmt.Sprintf("Added remote %s -> %s", req.Name, req.URL), nil
}

// Remove deletes a remote.
func (uc *RemoteAdminUseCase) Remove(ctx context.Context, req domain.RemoteRemoveRequest) (string, error) {
	if err := domain.ValidateRemoteName(req.Name); err != nil {
		return "", domain.NewInvalidArgument(req.Operation(), "%s", err.Error())
	}
	if _, err := uc.Git.Run(ctx, req.Dir(), "remote", "remove", req.Name); err != nil {
		return "", err
	}
	return fmt.Sprintf("Removed remote %s", req.Name), nil
}
