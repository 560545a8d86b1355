package aggregate

import (
	"property-analytics-service/internal/model"
)

// Overview flattens the four entity families into the dashboard stat cards.
// Tenants are expected to be pre-filtered to active rows by the fetcher.
func Overview(properties []model.Property, activeTenants []model.Tenant, payments []model.Payment, requests []model.MaintenanceRequest) model.OverviewStats {
	stats := model.OverviewStats{
		TotalProperties:          int64(len(properties)),
		TotalTenants:             int64(len(activeTenants)),
		TotalMaintenanceRequests: int64(len(requests)),
	}

	var totalUnits, occupiedUnits int64
	for _, p := range properties {
		totalUnits += p.TotalUnits
		occupiedUnits += p.OccupiedUnits
	}
	stats.OccupancyRate = percentage(float64(occupiedUnits), float64(totalUnits))

	var rentSum float64
	for _, t := range activeTenants {
		rentSum += t.MonthlyRent
	}
	if len(activeTenants) > 0 {
		stats.AverageRent = round2(rentSum / float64(len(activeTenants)))
	}

	for _, p := range payments {
		switch p.Status {
		case model.PaymentPaid:
			stats.TotalRevenue += p.Amount
		case model.PaymentPending:
			stats.PendingPayments += p.Amount
		}
	}

	for _, r := range requests {
		if r.Status == model.MaintenanceCompleted {
			stats.CompletedMaintenance++
		}
	}

	return stats
}
