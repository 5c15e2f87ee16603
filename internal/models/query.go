package models

import "strings"

// Period is the time window of a trending listing.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// ParsePeriod maps a `since` query value to a Period. Empty means daily.
// Values other than daily, weekly and monthly are passed through lowercased;
// the listing page decides what they mean.
func ParsePeriod(s string) Period {
	if p := Period(strings.ToLower(strings.TrimSpace(s))); p != "" {
		return p
	}
	return PeriodDaily
}

// Known reports whether p is one of the periods the listing page documents.
func (p Period) Known() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	}
	return false
}

// QueryKey identifies one trending view. It is comparable and safe to use as a map key.
type QueryKey struct {
	Language string
	Period   Period
}

// CanonicalKey is the global daily listing, the only view kept in the cache.
var CanonicalKey = QueryKey{Language: "", Period: PeriodDaily}

// NewQueryKey builds a key from raw `language` and `since` query values.
func NewQueryKey(language, since string) QueryKey {
	return QueryKey{Language: strings.TrimSpace(language), Period: ParsePeriod(since)}
}

// IsCanonical reports whether k is the cached global daily view.
func (k QueryKey) IsCanonical() bool { return k == CanonicalKey }

// String renders the key as "language|period"; used for grouping and logs.
func (k QueryKey) String() string {
	return k.Language + "|" + string(k.Period)
}
