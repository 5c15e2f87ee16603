package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmednasr/trending-hub/server/internal/github"
	"github.com/ahmednasr/trending-hub/server/internal/logger"
)

type fakeUpstream struct {
	readme    string
	readmeErr error
	starOK    bool
	starErr   error

	gotOwner, gotRepo, gotToken string
	calls                       int
}

func (f *fakeUpstream) Readme(_ context.Context, owner, repo, token string) (string, error) {
	f.calls++
	f.gotOwner, f.gotRepo, f.gotToken = owner, repo, token
	return f.readme, f.readmeErr
}

func (f *fakeUpstream) Star(_ context.Context, owner, repo, token string) (bool, error) {
	f.calls++
	f.gotOwner, f.gotRepo, f.gotToken = owner, repo, token
	return f.starOK, f.starErr
}

func TestFetchReadme(t *testing.T) {
	up := &fakeUpstream{readme: "# Hello"}
	svc := NewGitHubService(up, logger.Discard())

	text, ok := svc.FetchReadme(context.Background(), " octocat ", "Hello-World", "tok")

	require.True(t, ok)
	assert.Equal(t, "# Hello", text)
	assert.Equal(t, "octocat", up.gotOwner)
	assert.Equal(t, "tok", up.gotToken)
}

func TestFetchReadme_FailuresCollapse(t *testing.T) {
	for _, upErr := range []error{
		fmt.Errorf("%w: 404", github.ErrNotFound),
		fmt.Errorf("%w: bad credentials", github.ErrUnauthorized),
		fmt.Errorf("%w: rate limited", github.ErrUpstream),
	} {
		svc := NewGitHubService(&fakeUpstream{readmeErr: upErr}, logger.Discard())

		text, ok := svc.FetchReadme(context.Background(), "octocat", "Hello-World", "")
		assert.False(t, ok, "err %v", upErr)
		assert.Empty(t, text)
	}
}

func TestFetchReadme_MissingParams(t *testing.T) {
	up := &fakeUpstream{readme: "# Hello"}
	svc := NewGitHubService(up, logger.Discard())

	_, ok := svc.FetchReadme(context.Background(), "", "Hello-World", "")
	assert.False(t, ok)
	assert.Zero(t, up.calls)
}

func TestStarRepository(t *testing.T) {
	up := &fakeUpstream{starOK: true}
	svc := NewGitHubService(up, logger.Discard())

	ok, err := svc.StarRepository(context.Background(), "octocat", "Hello-World", "tok")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok", up.gotToken)
}

func TestStarRepository_Errors(t *testing.T) {
	t.Run("missing repo", func(t *testing.T) {
		up := &fakeUpstream{starOK: true}
		_, err := NewGitHubService(up, logger.Discard()).StarRepository(context.Background(), "octocat", " ", "tok")
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Zero(t, up.calls)
	})

	t.Run("unauthorized passes through", func(t *testing.T) {
		up := &fakeUpstream{starErr: fmt.Errorf("%w: token is required", github.ErrUnauthorized)}
		ok, err := NewGitHubService(up, logger.Discard()).StarRepository(context.Background(), "octocat", "Hello-World", "")
		assert.False(t, ok)
		assert.ErrorIs(t, err, github.ErrUnauthorized)
	})

	t.Run("generic upstream failure", func(t *testing.T) {
		up := &fakeUpstream{starErr: fmt.Errorf("%w: status 502", github.ErrUpstream)}
		_, err := NewGitHubService(up, logger.Discard()).StarRepository(context.Background(), "octocat", "Hello-World", "tok")
		assert.ErrorIs(t, err, github.ErrUpstream)
		assert.NotErrorIs(t, err, github.ErrUnauthorized)
	})
}
