package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLeavesUnsetRangeAlone(t *testing.T) {
	filter := AnalyticsFilter{}.Normalize(90)

	assert.True(t, filter.Range.IsZero())
}

func TestNormalizeCompletesOpenEnds(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	filter := AnalyticsFilter{Range: DateRange{From: from}}.Normalize(36500)

	assert.Equal(t, from, filter.Range.From)
	assert.False(t, filter.Range.To.IsZero())
	assert.True(t, filter.Range.To.After(from))
}

func TestNormalizeFixesInvertedRange(t *testing.T) {
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	filter := AnalyticsFilter{Range: DateRange{From: from, To: to}}.Normalize(90)

	assert.False(t, filter.Range.To.Before(filter.Range.From))
}

func TestNormalizeCapsWindow(t *testing.T) {
	from := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	filter := AnalyticsFilter{Range: DateRange{From: from, To: to}}.Normalize(30)

	assert.Equal(t, to, filter.Range.To)
	assert.Equal(t, 30*24*time.Hour, filter.Range.To.Sub(filter.Range.From))
}

func TestDateRangeContains(t *testing.T) {
	rng := DateRange{
		From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, rng.Contains(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, rng.Contains(rng.From))
	assert.True(t, rng.Contains(rng.To))
	assert.False(t, rng.Contains(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))

	assert.True(t, DateRange{}.Contains(time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)))
}
