package repository

import (
	"slices"
	"sync/atomic"
	"time"

	"github.com/ahmednasr/trending-hub/server/internal/models"
)

// TrendingMemory holds the latest global daily listing in process memory.
// Readers never observe a partial write: every Set swaps one snapshot pointer.
// Nothing survives a restart.
type TrendingMemory struct {
	snap atomic.Pointer[trendingSnapshot]
	now  func() time.Time
}

type trendingSnapshot struct {
	repos     []models.TrendingRepo
	updatedAt time.Time
}

// NewTrendingMemory returns an empty store.
func NewTrendingMemory() *TrendingMemory {
	return &TrendingMemory{now: time.Now}
}

// Get returns the last stored listing, or an empty slice if none was stored.
// The returned slice is shared and must not be modified.
func (m *TrendingMemory) Get() []models.TrendingRepo {
	if s := m.snap.Load(); s != nil {
		return s.repos
	}
	return []models.TrendingRepo{}
}

// Set replaces the stored listing with a copy of repos.
func (m *TrendingMemory) Set(repos []models.TrendingRepo) {
	cp := slices.Clone(repos)
	if cp == nil {
		cp = []models.TrendingRepo{}
	}
	m.snap.Store(&trendingSnapshot{repos: cp, updatedAt: m.now()})
}

// UpdatedAt reports when Set last ran; zero if never.
func (m *TrendingMemory) UpdatedAt() time.Time {
	if s := m.snap.Load(); s != nil {
		return s.updatedAt
	}
	return time.Time{}
}
