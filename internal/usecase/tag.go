package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gitmcp/gitmcp/internal/domain"
	"github.com/gitmcp/gitmcp/internal/service"
)

// TagUseCase contains the logic for tag operations.
type TagUseCase struct {
	Git service.GitExecutor
}

// List shows all tags.
func (uc *TagUseCase) List(ctx context.Context, req domain.TagListRequest) (string, error) {
	out, err := uc.Git.Run(ctx, req.Dir(), "tag", "--list")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return "No tags found", nil
	}
	return strings.TrimRight(out, "\n"), nil
}

// Create creates a tag at HEAD. A message makes it an annotated tag.
func (uc *TagUseCase) Create(ctx context.Context, req domain.TagCreateRequest) (string, error) {
	if err := domain.ValidateRef(req.Name); err != nil {
		return "", domain.NewInvalidArgument(req.Operation(), "%s", err.Error())
	}
	args := []string{"tag"}
	if req.Message != "" {
		args = append(args, "-a", req.Name, "-m", req.Message)
	} else {
		args = append(args, req.Name)
	}
	if _, err := uc.Git.Run(ctx, req.Dir(), args...); err != nil {
		return "", err
	}
	if req.Message != "" {
		return fmt.Sprintf("Created annotated tag %s", req.Name), nil
	}
	return fmt.Sprintf("Created tag %s", req.Name), nil
}

// Delete deletes a local tag.
func (uc *TagUseCase) Delete(ctx context.Context, req domain.TagDeleteRequest) (string, error) {
	if err := domain.ValidateRef(req.Name); err != nil {
		return "", domain.NewInvalidArgument(req.Operation(), "%s", err.Error())
	}
	if _, err := uc.Git.Run(ctx, req.Dir(), "tag", "-d", req.Name); err != nil {
		return "", err
	}
	return fmt.Sprintf("Deleted tag %s", req.Name), nil
}
