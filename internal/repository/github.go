package repository

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/go-github/v74/github"
	"golang.org/x/oauth2"
)

// RepoSummary holds the GitHub-side metadata used to enrich git_repo_info.
type RepoSummary struct {
	FullName      string
	Description   string
	DefaultBranch string
	Stars         int
	OpenIssues    int
}

// GithubRepository defines the interface for GitHub metadata lookups.
type GithubRepository interface {
	RepoSummary(ctx context.Context, owner, repo string) (*RepoSummary, error)
}

// githubRepository is the implementation of the GithubRepository interface.
type githubRepository struct {
	client *github.Client
}

// NewGithubRepository creates a new GithubRepository. An empty token yields
// an unauthenticated client, which is enough for public repositories.
func NewGithubRepository(token string) GithubRepository {
	if token == "" {
		return &githubRepository{client: github.NewClient(nil)}
	}
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: strings.TrimSpace(token)},
	)
	tc := oauth2.NewClient(context.Background(), ts)
	return &githubRepository{client: github.NewClient(tc)}
}

// RepoSummary fetches repository metadata from the GitHub API.
func (r *githubRepository) RepoSummary(ctx context.Context, owner, repo string) (*RepoSummary, error) {
	ghRepo, _, err := r.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s/%s from GitHub: %w", owner, repo, err)
	}
	return &RepoSummary{
		FullName:      ghRepo.GetFullName(),
		Description:   ghRepo.GetDescription(),
		DefaultBranch: ghRepo.GetDefaultBranch(),
		Stars:         ghRepo.GetStargazersCount(),
		OpenIssues:    ghRepo.GetOpenIssuesCount(),
	}, nil
}

// githubRemoteRegex matches the owner/repo pair in HTTPS and SSH GitHub
// remote URLs.
var githubRemoteRegex = regexp.MustCompile(`github\.com[:/]([^/]+)/([^/]+?)(?:\.git)?$`)

// ParseGithubRemote extracts the owner and repository name from a GitHub
// remote URL. The ok result is false for non-GitHub remotes.
func ParseGithubRemote(url string) (owner, repo string, ok bool) {
	matches := githubRemoteRegex.FindStringSubmatch(strings.TrimSpace(url))
	if len(matches) != 3 {
		return "", "", false
	}
	return matches[1], matches[2], true
}
