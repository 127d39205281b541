package usecase

import (
	"context"
	"strings"

	"github.com/gitmcp/gitmcp/internal/domain"
	"github.com/gitmcp/gitmcp/internal/service"
)

// BisectUseCase contains the logic for the bisect operation.
type BisectUseCase struct {
	Git service.GitExecutor
}

// Execute drives a bisect session with one of the start/good/bad/reset
// actions. Session state lives entirely in the repository; this layer holds
// none.
func (uc *BisectUseCase) Execute(ctx context.Context, req domain.BisectRequest) (string, error) {
	switch req.Action {
	case domain.BisectStart, domain.BisectGood, domain.BisectBad, domain.BisectReset:
	default:
		return "", domain.NewInvalidArgument(req.Operation(),
			"invalid action: %s (expected: start, good, bad, reset)", req.Action)
	}
	args := []string{"bisect", string(req.Action)}
	if req.Commit != "" {
		if err := domain.ValidateRef(req.Commit); err != nil {
			return "", domain.NewInvalidArgument(req.Operation(), "%s", err.Error())
		}
		args = append(args, req.Commit)
	}
	out, err := uc.Git.Run(ctx, req.Dir(), args...)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return "Bisect " + string(req.Action) + " done", nil
	}
	return strings.TrimRight(out, "\n"), nil
}
