package aggregate

import (
	"property-analytics-service/internal/model"
)

// Communication counts announcements by type and community posts by
// category, each alongside a per-month series of creation counts.
func Communication(announcements []model.Announcement, posts []model.CommunityPost) model.CommunicationAnalytics {
	annByType := make(map[string]int64)
	annByMonth := make(map[string]int64)
	for _, a := range announcements {
		annByType[a.Type]++
		annByMonth[monthKey(a.CreatedAt)]++
	}

	postsByCategory := make(map[string]int64)
	postsByMonth := make(map[string]int64)
	for _, p := range posts {
		postsByCategory[p.Category]++
		postsByMonth[monthKey(p.CreatedAt)]++
	}

	return model.CommunicationAnalytics{
		AnnouncementsByType:  toBuckets(annByType),
		AnnouncementsByMonth: toBuckets(annByMonth),
		PostsByCategory:      toBuckets(postsByCategory),
		PostsByMonth:         toBuckets(postsByMonth),
	}
}

func toBuckets(counts map[string]int64) []model.MessageBucket {
	buckets := make([]model.MessageBucket, 0, len(counts))
	for _, key := range sortedKeys(counts) {
		buckets = append(buckets, model.MessageBucket{Key: key, Count: counts[key]})
	}
	return buckets
}
