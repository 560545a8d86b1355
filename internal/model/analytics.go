package model

import (
	"github.com/google/uuid"
)

// OverviewStats backs the top-level dashboard cards. A user with no scoped
// properties gets the zero value, which is a valid response.
type OverviewStats struct {
	TotalProperties          int64   `json:"total_properties"`
	TotalTenants             int64   `json:"total_tenants"`
	TotalRevenue             float64 `json:"total_revenue"`
	PendingPayments          float64 `json:"pending_payments"`
	TotalMaintenanceRequests int64   `json:"total_maintenance_requests"`
	CompletedMaintenance     int64   `json:"completed_maintenance"`
	OccupancyRate            float64 `json:"occupancy_rate"`
	AverageRent              float64 `json:"average_rent"`
}

type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Count   int64   `json:"count"`
}

type PaymentTypeBucket struct {
	Type   PaymentType `json:"type"`
	Amount float64     `json:"amount"`
	Count  int64       `json:"count"`
}

type PaymentStatusBucket struct {
	Status PaymentStatus `json:"status"`
	Amount float64       `json:"amount"`
	Count  int64         `json:"count"`
}

type RevenueAnalytics struct {
	MonthlyRevenue []MonthlyRevenue      `json:"monthly_revenue"`
	PaymentTypes   []PaymentTypeBucket   `json:"payment_types"`
	PaymentStatus  []PaymentStatusBucket `json:"payment_status"`
}

type PropertyTypeBucket struct {
	Type          PropertyType `json:"type"`
	Count         int64        `json:"count"`
	OccupancyRate float64      `json:"occupancy_rate"`
}

type PropertyStatusBucket struct {
	Status PropertyStatus `json:"status"`
	Count  int64          `json:"count"`
}

type PropertyPerformance struct {
	PropertyID    uuid.UUID `json:"property_id"`
	Revenue       float64   `json:"revenue"`
	ActiveTenants int64     `json:"active_tenants"`
	OccupancyRate float64   `json:"occupancy_rate"`
}

type PropertyAnalytics struct {
	PropertiesByType   []PropertyTypeBucket   `json:"properties_by_type"`
	PropertiesByStatus []PropertyStatusBucket `json:"properties_by_status"`
	TopPerforming      []PropertyPerformance  `json:"top_performing_properties"`
}

type MaintenanceCategoryBucket struct {
	Category string  `json:"category"`
	Count    int64   `json:"count"`
	AvgCost  float64 `json:"avg_cost"`
}

type MaintenanceStatusBucket struct {
	Status MaintenanceStatus `json:"status"`
	Count  int64             `json:"count"`
}

type MaintenancePriorityBucket struct {
	Priority MaintenancePriority `json:"priority"`
	Count    int64               `json:"count"`
}

type MaintenanceTrend struct {
	Month     string  `json:"month"`
	Created   int64   `json:"created"`
	Completed int64   `json:"completed"`
	AvgCost   float64 `json:"avg_cost"`
}

type MaintenanceAnalytics struct {
	ByCategory []MaintenanceCategoryBucket `json:"by_category"`
	ByStatus   []MaintenanceStatusBucket   `json:"by_status"`
	ByPriority []MaintenancePriorityBucket `json:"by_priority"`
	Trends     []MaintenanceTrend          `json:"trends"`
}

type TenantStatusBucket struct {
	Status TenantStatus `json:"status"`
	Count  int64        `json:"count"`
}

type LeaseExpiration struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type TenantAnalytics struct {
	ByStatus         []TenantStatusBucket `json:"by_status"`
	LeaseExpirations []LeaseExpiration    `json:"lease_expirations"`
	RetentionRate    float64              `json:"retention_rate"`
}

type MessageBucket struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

type CommunicationAnalytics struct {
	AnnouncementsByType  []MessageBucket `json:"announcements_by_type"`
	AnnouncementsByMonth []MessageBucket `json:"announcements_by_month"`
	PostsByCategory      []MessageBucket `json:"posts_by_category"`
	PostsByMonth         []MessageBucket `json:"posts_by_month"`
}
