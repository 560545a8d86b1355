package aggregate

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"property-analytics-service/internal/model"
)

func paidAt(t time.Time) *time.Time { return &t }

func TestOverviewPortfolio(t *testing.T) {
	owner := uuid.New()
	p1 := model.Property{ID: uuid.New(), OwnerID: owner, TotalUnits: 10, OccupiedUnits: 8}
	p2 := model.Property{ID: uuid.New(), OwnerID: owner, TotalUnits: 5, OccupiedUnits: 5}

	payments := []model.Payment{
		{PropertyID: p1.ID, Amount: 1000, Status: model.PaymentPaid, PaidAt: paidAt(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))},
		{PropertyID: p2.ID, Amount: 500, Status: model.PaymentPending},
	}

	stats := Overview([]model.Property{p1, p2}, nil, payments, nil)

	assert.Equal(t, int64(2), stats.TotalProperties)
	assert.Equal(t, float64(1000), stats.TotalRevenue)
	assert.Equal(t, float64(500), stats.PendingPayments)
	assert.Equal(t, 86.67, stats.OccupancyRate)
}

func TestOverviewEmptyInput(t *testing.T) {
	stats := Overview(nil, nil, nil, nil)

	assert.Equal(t, model.OverviewStats{}, stats)
}

func TestOverviewOccupancyBounds(t *testing.T) {
	full := Overview([]model.Property{{TotalUnits: 4, OccupiedUnits: 4}}, nil, nil, nil)
	assert.Equal(t, float64(100), full.OccupancyRate)

	empty := Overview([]model.Property{{TotalUnits: 0, OccupiedUnits: 0}}, nil, nil, nil)
	assert.Equal(t, float64(0), empty.OccupancyRate)
}

func TestOverviewRevenueCountsOnlyPaid(t *testing.T) {
	propertyID := uuid.New()
	payments := []model.Payment{
		{PropertyID: propertyID, Amount: 100, Status: model.PaymentPaid, PaidAt: paidAt(time.Now())},
		{PropertyID: propertyID, Amount: 200, Status: model.PaymentFailed},
		{PropertyID: propertyID, Amount: 300, Status: model.PaymentRefunded},
		{PropertyID: propertyID, Amount: 400, Status: model.PaymentPartial},
	}

	stats := Overview(nil, nil, payments, nil)

	assert.Equal(t, float64(100), stats.TotalRevenue)
	assert.Equal(t, float64(0), stats.PendingPayments)
}

func TestOverviewAverageRentAndMaintenance(t *testing.T) {
	tenants := []model.Tenant{
		{Status: model.TenantActive, MonthlyRent: 1000},
		{Status: model.TenantActive, MonthlyRent: 1500},
		{Status: model.TenantActive, MonthlyRent: 1250},
	}
	requests := []model.MaintenanceRequest{
		{Status: model.MaintenanceCompleted},
		{Status: model.MaintenanceCompleted},
		{Status: model.MaintenancePending},
	}

	stats := Overview(nil, tenants, nil, requests)

	assert.Equal(t, int64(3), stats.TotalTenants)
	assert.Equal(t, float64(1250), stats.AverageRent)
	assert.Equal(t, int64(3), stats.TotalMaintenanceRequests)
	assert.Equal(t, int64(2), stats.CompletedMaintenance)
}

func TestOverviewAverageRentRounding(t *testing.T) {
	tenants := []model.Tenant{
		{Status: model.TenantActive, MonthlyRent: 1000},
		{Status: model.TenantActive, MonthlyRent: 1000},
		{Status: model.TenantActive, MonthlyRent: 1001},
	}

	stats := Overview(nil, tenants, nil, nil)

	assert.Equal(t, 1000.33, stats.AverageRent)
}
