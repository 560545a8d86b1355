package model

import (
	"time"

	"github.com/google/uuid"
)

type PropertyType string

const (
	PropertyResidential PropertyType = "residential"
	PropertyCommercial  PropertyType = "commercial"
	PropertyDormitory   PropertyType = "dormitory"
)

type PropertyStatus string

const (
	PropertyActive      PropertyStatus = "active"
	PropertyMaintenance PropertyStatus = "maintenance"
	PropertyInactive    PropertyStatus = "inactive"
)

type TenantStatus string

const (
	TenantActive     TenantStatus = "active"
	TenantPending    TenantStatus = "pending"
	TenantTerminated TenantStatus = "terminated"
	TenantExpired    TenantStatus = "expired"
)

type PaymentType string

const (
	PaymentRent            PaymentType = "rent"
	PaymentDeposit         PaymentType = "deposit"
	PaymentSecurityDeposit PaymentType = "security_deposit"
	PaymentUtility         PaymentType = "utility"
	PaymentPenalty         PaymentType = "penalty"
	PaymentOther           PaymentType = "other"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
	PaymentPartial  PaymentStatus = "partial"
)

type MaintenanceStatus string

const (
	MaintenancePending    MaintenanceStatus = "pending"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
	MaintenanceCancelled  MaintenanceStatus = "cancelled"
	MaintenanceRejected   MaintenanceStatus = "rejected"
)

type MaintenancePriority string

const (
	PriorityLow    MaintenancePriority = "low"
	PriorityMedium MaintenancePriority = "medium"
	PriorityHigh   MaintenancePriority = "high"
	PriorityUrgent MaintenancePriority = "urgent"
)

// Property is a landlord-owned building or unit block. occupied_units never
// exceeds total_units; that invariant is enforced by the writing services.
type Property struct {
	ID            uuid.UUID      `gorm:"column:id;primaryKey" json:"id"`
	OwnerID       uuid.UUID      `gorm:"column:owner_id" json:"owner_id"`
	Type          PropertyType   `gorm:"column:type" json:"type"`
	Status        PropertyStatus `gorm:"column:status" json:"status"`
	TotalUnits    int64          `gorm:"column:total_units" json:"total_units"`
	OccupiedUnits int64          `gorm:"column:occupied_units" json:"occupied_units"`
	MonthlyRent   float64        `gorm:"column:monthly_rent" json:"monthly_rent"`
}

func (Property) TableName() string { return "properties" }

type Tenant struct {
	ID          uuid.UUID    `gorm:"column:id;primaryKey" json:"id"`
	UserID      uuid.UUID    `gorm:"column:user_id" json:"user_id"`
	PropertyID  uuid.UUID    `gorm:"column:property_id" json:"property_id"`
	Status      TenantStatus `gorm:"column:status" json:"status"`
	MonthlyRent float64      `gorm:"column:monthly_rent" json:"monthly_rent"`
	LeaseStart  *time.Time   `gorm:"column:lease_start" json:"lease_start,omitempty"`
	LeaseEnd    *time.Time   `gorm:"column:lease_end" json:"lease_end,omitempty"`
}

func (Tenant) TableName() string { return "tenants" }

// Payment is the unit of revenue. PaidAt is set only when the payment
// reached the paid status.
type Payment struct {
	ID         uuid.UUID     `gorm:"column:id;primaryKey" json:"id"`
	TenantID   uuid.UUID     `gorm:"column:tenant_id" json:"tenant_id"`
	PropertyID uuid.UUID     `gorm:"column:property_id" json:"property_id"`
	Amount     float64       `gorm:"column:amount" json:"amount"`
	Type       PaymentType   `gorm:"column:payment_type" json:"payment_type"`
	Status     PaymentStatus `gorm:"column:payment_status" json:"payment_status"`
	DueDate    time.Time     `gorm:"column:due_date" json:"due_date"`
	PaidAt     *time.Time    `gorm:"column:paid_date" json:"paid_date,omitempty"`
}

func (Payment) TableName() string { return "payments" }

type MaintenanceRequest struct {
	ID            uuid.UUID           `gorm:"column:id;primaryKey" json:"id"`
	PropertyID    uuid.UUID           `gorm:"column:property_id" json:"property_id"`
	Category      string              `gorm:"column:category" json:"category"`
	Status        MaintenanceStatus   `gorm:"column:status" json:"status"`
	Priority      MaintenancePriority `gorm:"column:priority" json:"priority"`
	EstimatedCost *float64            `gorm:"column:estimated_cost" json:"estimated_cost,omitempty"`
	ActualCost    *float64            `gorm:"column:actual_cost" json:"actual_cost,omitempty"`
	CreatedAt     time.Time           `gorm:"column:created_at" json:"created_at"`
	CompletedAt   *time.Time          `gorm:"column:completed_date" json:"completed_date,omitempty"`
}

func (MaintenanceRequest) TableName() string { return "maintenance_requests" }

// Cost returns the aggregation cost of the request, preferring the actual
// over the estimate. The second result is false when neither is recorded.
func (m MaintenanceRequest) Cost() (float64, bool) {
	if m.ActualCost != nil {
		return *m.ActualCost, true
	}
	if m.EstimatedCost != nil {
		return *m.EstimatedCost, true
	}
	return 0, false
}

type Announcement struct {
	ID         uuid.UUID `gorm:"column:id;primaryKey" json:"id"`
	PropertyID uuid.UUID `gorm:"column:property_id" json:"property_id"`
	Type       string    `gorm:"column:type" json:"type"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Announcement) TableName() string { return "announcements" }

type CommunityPost struct {
	ID         uuid.UUID `gorm:"column:id;primaryKey" json:"id"`
	PropertyID uuid.UUID `gorm:"column:property_id" json:"property_id"`
	Category   string    `gorm:"column:category" json:"category"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (CommunityPost) TableName() string { return "community_posts" }
