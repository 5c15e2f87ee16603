package trending

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ahmednasr/trending-hub/server/internal/models"
)

// DefaultBaseURL is the public trending listing.
const DefaultBaseURL = "https://github.com/trending"

// The listing rejects default client user agents.
const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"

const maxPageBytes = 8 << 20

var (
	// ErrFetch matches every error returned by a Fetcher.
	ErrFetch = errors.New("trending: fetch failed")

	// ErrNetwork is returned when the request could not be completed.
	ErrNetwork = fmt.Errorf("%w: network error", ErrFetch)
)

// StatusError is returned when the listing answers with a non-2xx status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("trending: unexpected status %d", e.Code)
}

// Is makes errors.Is(err, ErrFetch) hold for status errors.
func (e *StatusError) Is(target error) bool { return target == ErrFetch }

// Fetcher retrieves the raw listing markup for one query key.
type Fetcher interface {
	Fetch(ctx context.Context, key models.QueryKey) ([]byte, error)
}

// HTTPFetcher fetches the listing over HTTP. It never retries.
type HTTPFetcher struct {
	http    *http.Client
	baseURL string
}

// NewHTTPFetcher returns a fetcher for baseURL (DefaultBaseURL when empty).
// timeout bounds each request end to end.
func NewHTTPFetcher(baseURL string, timeout time.Duration) *HTTPFetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HTTPFetcher{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// URL returns the listing address for key, e.g. ".../trending/go?since=weekly".
func (f *HTTPFetcher) URL(key models.QueryKey) string {
	q := url.Values{"since": {string(key.Period)}}
	return f.baseURL + "/" + url.PathEscape(key.Language) + "?" + q.Encode()
}

// Fetch performs a single GET for key and returns the response body.
func (f *HTTPFetcher) Fetch(ctx context.Context, key models.QueryKey) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL(key), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrNetwork, err)
	}
	return body, nil
}
