package aggregate

import (
	"sort"

	"property-analytics-service/internal/model"
)

// Maintenance groups requests by category, status, priority and creation
// month. avgCost averages actual cost, falling back to the estimate; rows
// with neither stay in the counts but out of the average's denominator.
func Maintenance(requests []model.MaintenanceRequest) model.MaintenanceAnalytics {
	type costAgg struct {
		count     int64
		completed int64
		costSum   float64
		costCount int64
	}

	byCategory := make(map[string]costAgg)
	byStatus := make(map[model.MaintenanceStatus]int64)
	byPriority := make(map[model.MaintenancePriority]int64)
	trends := make(map[string]costAgg)

	for _, r := range requests {
		cost, hasCost := r.Cost()

		cat := byCategory[r.Category]
		cat.count++
		if hasCost {
			cat.costSum += cost
			cat.costCount++
		}
		byCategory[r.Category] = cat

		byStatus[r.Status]++
		byPriority[r.Priority]++

		key := monthKey(r.CreatedAt)
		trend := trends[key]
		trend.count++
		if r.Status == model.MaintenanceCompleted {
			trend.completed++
		}
		if hasCost {
			trend.costSum += cost
			trend.costCount++
		}
		trends[key] = trend
	}

	avgOf := func(agg costAgg) float64 {
		if agg.costCount == 0 {
			return 0
		}
		return round2(agg.costSum / float64(agg.costCount))
	}

	result := model.MaintenanceAnalytics{
		ByCategory: make([]model.MaintenanceCategoryBucket, 0, len(byCategory)),
		ByStatus:   make([]model.MaintenanceStatusBucket, 0, len(byStatus)),
		ByPriority: make([]model.MaintenancePriorityBucket, 0, len(byPriority)),
		Trends:     make([]model.MaintenanceTrend, 0, len(trends)),
	}

	for _, category := range sortedKeys(byCategory) {
		agg := byCategory[category]
		result.ByCategory = append(result.ByCategory, model.MaintenanceCategoryBucket{
			Category: category,
			Count:    agg.count,
			AvgCost:  avgOf(agg),
		})
	}

	for status, count := range byStatus {
		result.ByStatus = append(result.ByStatus, model.MaintenanceStatusBucket{Status: status, Count: count})
	}
	sort.Slice(result.ByStatus, func(i, j int) bool {
		return result.ByStatus[i].Status < result.ByStatus[j].Status
	})

	for priority, count := range byPriority {
		result.ByPriority = append(result.ByPriority, model.MaintenancePriorityBucket{Priority: priority, Count: count})
	}
	sort.Slice(result.ByPriority, func(i, j int) bool {
		return result.ByPriority[i].Priority < result.ByPriority[j].Priority
	})

	for _, month := range sortedKeys(trends) {
		agg := trends[month]
		result.Trends = append(result.Trends, model.MaintenanceTrend{
			Month:     month,
			Created:   agg.count,
			Completed: agg.completed,
			AvgCost:   avgOf(agg),
		})
	}

	return result
}
