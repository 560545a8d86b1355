package aggregate

import (
	"sort"

	"github.com/google/uuid"

	"property-analytics-service/internal/model"
)

const topPerformingLimit = 5

// Properties groups the portfolio by type and status and ranks the top
// performers by paid revenue. Payments and active tenants are batch-fetched
// for the whole scope and reduced here, one pass per family.
func Properties(properties []model.Property, payments []model.Payment, activeTenants []model.Tenant) model.PropertyAnalytics {
	type typeAgg struct {
		count    int64
		total    int64
		occupied int64
	}

	byType := make(map[model.PropertyType]typeAgg)
	byStatus := make(map[model.PropertyStatus]int64)

	for _, p := range properties {
		agg := byType[p.Type]
		agg.count++
		agg.total += p.TotalUnits
		agg.occupied += p.OccupiedUnits
		byType[p.Type] = agg

		byStatus[p.Status]++
	}

	result := model.PropertyAnalytics{
		PropertiesByType:   make([]model.PropertyTypeBucket, 0, len(byType)),
		PropertiesByStatus: make([]model.PropertyStatusBucket, 0, len(byStatus)),
	}

	for propertyType, agg := range byType {
		result.PropertiesByType = append(result.PropertiesByType, model.PropertyTypeBucket{
			Type:          propertyType,
			Count:         agg.count,
			OccupancyRate: percentage(float64(agg.occupied), float64(agg.total)),
		})
	}
	sort.Slice(result.PropertiesByType, func(i, j int) bool {
		return result.PropertiesByType[i].Type < result.PropertiesByType[j].Type
	})

	for status, count := range byStatus {
		result.PropertiesByStatus = append(result.PropertiesByStatus, model.PropertyStatusBucket{
			Status: status,
			Count:  count,
		})
	}
	sort.Slice(result.PropertiesByStatus, func(i, j int) bool {
		return result.PropertiesByStatus[i].Status < result.PropertiesByStatus[j].Status
	})

	result.TopPerforming = topPerforming(properties, payments, activeTenants)

	return result
}

func topPerforming(properties []model.Property, payments []model.Payment, activeTenants []model.Tenant) []model.PropertyPerformance {
	revenue := make(map[uuid.UUID]float64, len(properties))
	tenants := make(map[uuid.UUID]int64, len(properties))
	for _, p := range payments {
		if p.Status == model.PaymentPaid {
			revenue[p.PropertyID] += p.Amount
		}
	}
	for _, t := range activeTenants {
		tenants[t.PropertyID]++
	}

	ranked := make([]model.PropertyPerformance, 0, len(properties))
	for _, p := range properties {
		ranked = append(ranked, model.PropertyPerformance{
			PropertyID:    p.ID,
			Revenue:       revenue[p.ID],
			ActiveTenants: tenants[p.ID],
			OccupancyRate: percentage(float64(p.OccupiedUnits), float64(p.TotalUnits)),
		})
	}

	// Stable sort keeps fetch order between equal-revenue properties.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue > ranked[j].Revenue
	})

	if len(ranked) > topPerformingLimit {
		ranked = ranked[:topPerformingLimit]
	}
	return ranked
}
