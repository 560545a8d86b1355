package model

import (
	"time"

	"github.com/google/uuid"
)

type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// IsZero reports whether no date filtering was requested. Aggregates then
// cover the full history of the scoped rows.
func (r DateRange) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// Contains reports whether t falls inside the range. A zero range contains
// everything.
func (r DateRange) Contains(t time.Time) bool {
	if r.IsZero() {
		return true
	}
	return !t.Before(r.From) && !t.After(r.To)
}

// AnalyticsFilter narrows what an aggregate call covers. The id filters
// intersect with the caller's authorized scope, they never widen it.
type AnalyticsFilter struct {
	Range       DateRange
	PropertyIDs []uuid.UUID
	TenantIDs   []uuid.UUID
}

// Normalize completes and caps a caller-supplied range. A fully unset range
// is left unset: the default is all history, not a trailing window.
func (f AnalyticsFilter) Normalize(maxDays int) AnalyticsFilter {
	if f.Range.IsZero() {
		return f
	}
	if f.Range.To.IsZero() {
		f.Range.To = time.Now().UTC()
	}
	if f.Range.From.IsZero() {
		f.Range.From = f.Range.To.AddDate(0, 0, -maxDays)
	}
	if f.Range.To.Before(f.Range.From) {
		f.Range.From = f.Range.To.Add(-24 * time.Hour)
	}
	maxWindow := time.Duration(maxDays) * 24 * time.Hour
	if f.Range.To.Sub(f.Range.From) > maxWindow {
		f.Range.From = f.Range.To.Add(-maxWindow)
	}
	return f
}
