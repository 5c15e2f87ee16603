package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrInvalidInput is returned when a request is missing owner or repo.
var ErrInvalidInput = errors.New("invalid input")

// ---- Upstream contract -----------------------------------------------------

// UpstreamClient is the subset of the GitHub API the proxy needs.
// Implemented by *github.Client.
type UpstreamClient interface {
	Readme(ctx context.Context, owner, repo, token string) (string, error)
	Star(ctx context.Context, owner, repo, token string) (bool, error)
}

// ---- Service interface + implementation ------------------------------------

// GitHubService forwards README and star requests with the caller's token.
// Tokens are used for one call and never stored or logged.
type GitHubService interface {
	// FetchReadme is best-effort: any failure reports ok=false.
	FetchReadme(ctx context.Context, owner, repo, token string) (readme string, ok bool)
	// StarRepository surfaces github.ErrUnauthorized separately from other failures.
	StarRepository(ctx context.Context, owner, repo, token string) (bool, error)
}

type githubService struct {
	gh  UpstreamClient
	log *log.Logger
}

// NewGitHubService returns a concrete implementation.
func NewGitHubService(gh UpstreamClient, logger *log.Logger) GitHubService {
	return &githubService{gh: gh, log: logger.WithPrefix("github")}
}

func (s *githubService) FetchReadme(ctx context.Context, owner, repo, token string) (string, bool) {
	owner, repo = strings.TrimSpace(owner), strings.TrimSpace(repo)
	if owner == "" || repo == "" {
		return "", false
	}

	text, err := s.gh.Readme(ctx, owner, repo, token)
	if err != nil {
		s.log.Debug("readme unavailable", "owner", owner, "repo", repo, "err", err)
		return "", false
	}
	return text, true
}

func (s *githubService) StarRepository(ctx context.Context, owner, repo, token string) (bool, error) {
	owner, repo = strings.TrimSpace(owner), strings.TrimSpace(repo)
	if owner == "" || repo == "" {
		return false, fmt.Errorf("%w: owner and repo are required", ErrInvalidInput)
	}

	ok, err := s.gh.Star(ctx, owner, repo, token)
	if err != nil {
		s.log.Warn("star failed", "owner", owner, "repo", repo, "err", err)
		return false, err
	}
	s.log.Info("starred", "owner", owner, "repo", repo)
	return ok, nil
}
