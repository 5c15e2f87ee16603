package service

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"

	"github.com/ahmednasr/trending-hub/server/internal/models"
	"github.com/ahmednasr/trending-hub/server/internal/trending"
)

// ---- Cache contract --------------------------------------------------------

// TrendingCache holds the listing for models.CanonicalKey.
type TrendingCache interface {
	Get() []models.TrendingRepo
	Set(repos []models.TrendingRepo)
	UpdatedAt() time.Time
}

// ---- Service interface + implementation ------------------------------------

// TrendingService scrapes trending listings and keeps the global daily one cached.
type TrendingService interface {
	// Scrape fetches and parses a fresh listing for key. Failures yield an
	// empty slice, never an error. Only the canonical key updates the cache.
	Scrape(ctx context.Context, key models.QueryKey) []models.TrendingRepo
	// Cached returns the last canonical listing and when it was stored.
	Cached() ([]models.TrendingRepo, time.Time)
	// Refresh scrapes the canonical key and returns the number of records.
	Refresh(ctx context.Context) int
}

type trendingService struct {
	fetcher trending.Fetcher
	cache   TrendingCache
	group   singleflight.Group
	log     *log.Logger
}

// NewTrendingService wires the fetcher and the canonical cache.
func NewTrendingService(fetcher trending.Fetcher, cache TrendingCache, logger *log.Logger) TrendingService {
	return &trendingService{
		fetcher: fetcher,
		cache:   cache,
		log:     logger.WithPrefix("scraper"),
	}
}

// Scrape shares one in-flight fetch between concurrent callers of the same key,
// so a canonical scrape writes the cache once no matter how many requests wait.
// The shared work is detached from the first caller's cancellation; a caller
// that gives up early gets an empty result while the work completes for others.
func (s *trendingService) Scrape(ctx context.Context, key models.QueryKey) []models.TrendingRepo {
	detached := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key.String(), func() (v any, err error) {
		// singleflight re-panics on its own goroutine where no middleware can
		// catch it, so a broken fetcher or parser has to be stopped here.
		defer func() {
			if r := recover(); r != nil {
				s.log.Error("scrape panicked", "key", key, "panic", r)
				v, err = []models.TrendingRepo{}, nil
			}
		}()
		return s.scrape(detached, key), nil
	})

	select {
	case res := <-ch:
		if res.Shared {
			s.log.Debug("shared in-flight scrape", "key", key)
		}
		return res.Val.([]models.TrendingRepo)
	case <-ctx.Done():
		s.log.Warn("scrape abandoned by caller", "key", key, "err", ctx.Err())
		return []models.TrendingRepo{}
	}
}

func (s *trendingService) scrape(ctx context.Context, key models.QueryKey) []models.TrendingRepo {
	start := time.Now()
	if !key.Period.Known() {
		s.log.Debug("forwarding undocumented period", "key", key)
	}

	markup, err := s.fetcher.Fetch(ctx, key)
	if err != nil {
		s.log.Warn("fetch failed, returning empty listing", "key", key, "err", err)
		return []models.TrendingRepo{}
	}

	repos := trending.ParseAll(markup)
	if key.IsCanonical() {
		s.cache.Set(repos)
		s.log.Info("cache refreshed", "repos", len(repos))
	}

	s.log.Debug("scraped", "key", key, "repos", len(repos), "took", time.Since(start).Round(time.Millisecond))
	return repos
}

func (s *trendingService) Cached() ([]models.TrendingRepo, time.Time) {
	return s.cache.Get(), s.cache.UpdatedAt()
}

func (s *trendingService) Refresh(ctx context.Context) int {
	return len(s.Scrape(ctx, models.CanonicalKey))
}
