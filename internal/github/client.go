// Package github is a narrow proxy to GitHub's REST API v3.
//
// Only the endpoints the dashboard needs are exposed: README retrieval and
// starring. The client never holds a user credential; tokens are passed per
// call and dropped once the call returns.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gogithub "github.com/google/go-github/v69/github"
)

// DefaultBaseURL is the public GitHub REST endpoint.
const DefaultBaseURL = "https://api.github.com"

var (
	// ErrUnauthorized is returned when a token is missing, invalid or lacks permission.
	ErrUnauthorized = errors.New("github: missing or invalid credential")

	// ErrUpstream is returned for any other failed call (network, 5xx, unexpected status).
	ErrUpstream = errors.New("github: upstream request failed")

	// ErrNotFound is returned when the repository or README does not exist.
	// It also matches ErrUpstream.
	ErrNotFound = fmt.Errorf("%w: not found", ErrUpstream)
)

// Client wraps go-github with the base URL and timeout used by the service.
type Client struct {
	api *gogithub.Client
}

// NewClient returns a ready-to-use client. An empty baseURL means DefaultBaseURL.
// timeout bounds every upstream call.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	api := gogithub.NewClient(&http.Client{Timeout: timeout})
	api.UserAgent = "trending-hub"

	if baseURL != "" && baseURL != DefaultBaseURL {
		u, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("github: invalid base url %q: %w", baseURL, err)
		}
		api.BaseURL = u
	}
	return &Client{api: api}, nil
}

// withToken derives a per-call client. The shared client is never mutated.
func (c *Client) withToken(token string) *gogithub.Client {
	if token == "" {
		return c.api
	}
	return c.api.WithAuthToken(token)
}

// Readme returns the decoded README of owner/repo.
// token may be empty; unauthenticated calls get a lower rate limit.
func (c *Client) Readme(ctx context.Context, owner, repo, token string) (string, error) {
	content, resp, err := c.withToken(token).Repositories.GetReadme(ctx, owner, repo, nil)
	if err != nil {
		return "", classify(resp, err)
	}

	text, err := content.GetContent()
	if err != nil {
		return "", fmt.Errorf("%w: decoding readme: %v", ErrUpstream, err)
	}
	return text, nil
}

// Star stars owner/repo as the user identified by token.
// It reports true only when GitHub acknowledges with 204 No Content.
func (c *Client) Star(ctx context.Context, owner, repo, token string) (bool, error) {
	if strings.TrimSpace(token) == "" {
		return false, fmt.Errorf("%w: token is required", ErrUnauthorized)
	}

	resp, err := c.withToken(token).Activity.Star(ctx, owner, repo)
	if err != nil {
		return false, classify(resp, err)
	}
	if resp.StatusCode != http.StatusNoContent {
		return false, fmt.Errorf("%w: unexpected status %d", ErrUpstream, resp.StatusCode)
	}
	return true, nil
}

// classify maps a go-github failure onto the package sentinels.
func classify(resp *gogithub.Response, err error) error {
	var rateErr *gogithub.RateLimitError
	var abuseErr *gogithub.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		return fmt.Errorf("%w: rate limited: %v", ErrUpstream, err)
	}

	if resp != nil {
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %v", ErrUnauthorized, err)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		}
	}
	return fmt.Errorf("%w: %v", ErrUpstream, err)
}
