package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gitmcp/gitmcp/internal/domain"
	"github.com/gitmcp/gitmcp/internal/repository"
)

// RepoInfoUseCase contains the logic for the repo-info operation. Local
// details come from the repository itself; when the origin remote points at
// GitHub and a client is configured, the result is enriched with API
// metadata. Enrichment failures degrade to local-only output, they never
// fail the operation.
type RepoInfoUseCase struct {
	Inspector repository.GitInspector
	Github    repository.GithubRepository
}

// Execute collects repository information for the working directory.
func (uc *RepoInfoUseCase) Execute(ctx context.Context, req domain.RepoInfoRequest) (string, error) {
	var b strings.Builder

	branch, err := uc.Inspector.CurrentBranch(ctx, req.Dir())
	if err == nil {
		fmt.Fprintf(&b, "Branch: %s\n", branch)
	}
	head, err := uc.Inspector.HeadCommit(ctx, req.Dir())
	if err == nil {
		fmt.Fprintf(&b, "HEAD: %s\n", head)
	}

	remoteURL, err := uc.Inspector.RemoteURL(ctx, req.Dir(), "origin")
	if err != nil {
		b.WriteString("Remote: none configured\n")
		return strings.TrimRight(b.String(), "\n"), nil
	}
	fmt.Fprintf(&b, "Remote: %s\n", remoteURL)

	owner, repo, ok := repository.ParseGithubRemote(remoteURL)
	if !ok || uc.Github == nil {
		return strings.TrimRight(b.String(), "\n"), nil
	}
	summary, err := uc.Github.RepoSummary(ctx, owner, repo)
	if err != nil {
		return strings.TrimRight(b.String(), "\n"), nil
	}
	fmt.Fprintf(&b, "GitHub: %s\n", summary.FullName)
	if summary.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", summary.Description)
	}
	fmt.Fprintf(&b, "Default branch: %s\n", summary.DefaultBranch)
	fmt.Fprintf(&b, "Stars: %d\n", summary.Stars)
	fmt.Fprintf(&b, "Open issues: %d\n", summary.OpenIssues)
	return strings.TrimRight(b.String(), "\n"), nil
}
