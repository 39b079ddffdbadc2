package forge

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
)

const (
	// GitHubName is the name identifier for GitHub forge.
	GitHubName = "github"
	// GitHubDomain is the GitHub domain for URL validation.
	GitHubDomain = "github.com"

	requestTimeout = 10 * time.Second
)

// githubRepoRe extracts owner and repository from HTTPS and SSH URLs.
var githubRepoRe = regexp.MustCompile(`github\.com[:/]([^/]+)/([^/]+?)(?:\.git)?/?$`)

// GitHub represents the GitHub forge implementation.
type GitHub struct {
	client *github.Client
}

// NewGitHub creates a new GitHub forge instance.
func NewGitHub() *GitHub {
	var client *github.Client

	// Add authentication if available
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		client = github.NewTokenClient(context.Background(), token)
	} else {
		client = github.NewClient(nil)
	}

	return &GitHub{client: client}
}

// Name returns the name of the forge.
func (g *GitHub) Name() string {
	return GitHubName
}

// SupportsURL reports whether the forge can resolve the repository URL.
func (g *GitHub) SupportsURL(repoURL string) bool {
	return strings.Contains(repoURL, GitHubDomain)
}

// LatestRev returns the newest release tag of the repository, falling
// back to the newest plain tag when the repository has no releases.
func (g *GitHub) LatestRev(repoURL string) (string, error) {
	owner, repo, err := g.parseRepoURL(repoURL)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	release, resp, err := g.client.Repositories.GetLatestRelease(ctx, owner, repo)
	if err == nil {
		return release.GetTagName(), nil
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		return "", g.handleGitHubError(err, resp, repoURL)
	}

	// No releases published: fall back to the newest tag.
	tags, resp, err := g.client.Repositories.ListTags(ctx, owner, repo, &github.ListOptions{PerPage: 1})
	if err != nil {
		return "", g.handleGitHubError(err, resp, repoURL)
	}
	if len(tags) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoTags, repoURL)
	}

	return tags[0].GetName(), nil
}

// parseRepoURL extracts owner and repository from a GitHub URL.
// Handles both HTTPS (https://github.com/owner/repo.git) and SSH
// (git@github.com:owner/repo.git) formats.
func (g *GitHub) parseRepoURL(repoURL string) (string, string, error) {
	matches := githubRepoRe.FindStringSubmatch(repoURL)
	if len(matches) != 3 {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidRepoURL, repoURL)
	}
	return matches[1], matches[2], nil
}

// handleGitHubError handles GitHub API errors and returns appropriate error messages.
func (g *GitHub) handleGitHubError(err error, resp *github.Response, repoURL string) error {
	if resp != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrRepoNotFound, repoURL)
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: check GITHUB_TOKEN environment variable", ErrUnauthorized)
		case http.StatusForbidden:
			// Check if it's rate limiting
			if resp.Header.Get("X-RateLimit-Remaining") == "0" {
				return fmt.Errorf("%w: GitHub API rate limit exceeded", ErrRateLimited)
			}
			return fmt.Errorf("%w: access forbidden", ErrUnauthorized)
		}
	}
	return fmt.Errorf("failed to resolve latest revision: %w", err)
}
