package aggregate

import (
	"sort"

	"property-analytics-service/internal/model"
)

// Tenants reports the status distribution, lease expirations per month and
// the retention rate (active over total). Tenants without a lease end date
// are excluded from the expiration series only.
func Tenants(tenants []model.Tenant) model.TenantAnalytics {
	byStatus := make(map[model.TenantStatus]int64)
	expirations := make(map[string]int64)

	var active int64
	for _, t := range tenants {
		byStatus[t.Status]++
		if t.Status == model.TenantActive {
			active++
		}
		if t.LeaseEnd != nil {
			expirations[monthKey(*t.LeaseEnd)]++
		}
	}

	result := model.TenantAnalytics{
		ByStatus:         make([]model.TenantStatusBucket, 0, len(byStatus)),
		LeaseExpirations: make([]model.LeaseExpiration, 0, len(expirations)),
		RetentionRate:    percentage(float64(active), float64(len(tenants))),
	}

	for status, count := range byStatus {
		result.ByStatus = append(result.ByStatus, model.TenantStatusBucket{Status: status, Count: count})
	}
	sort.Slice(result.ByStatus, func(i, j int) bool {
		return result.ByStatus[i].Status < result.ByStatus[j].Status
	})

	for _, month := range sortedKeys(expirations) {
		result.LeaseExpirations = append(result.LeaseExpirations, model.LeaseExpiration{
			Month: month,
			Count: expirations[month],
		})
	}

	return result
}
