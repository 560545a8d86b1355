package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"property-analytics-service/internal/model"
)

// AnalyticsRepository fetches raw, typed entity rows scoped to a property-id
// set. Aggregation happens in memory (internal/aggregate); the queries here
// are plain scoped selects. An empty id set short-circuits to an empty slice
// without touching the database.
type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) Properties(ctx context.Context, propertyIDs []uuid.UUID) ([]model.Property, error) {
	if len(propertyIDs) == 0 {
		return []model.Property{}, nil
	}
	var rows []model.Property
	err := r.db.WithContext(ctx).
		Where("id IN ?", propertyIDs).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("fetch properties: %w", err)
	}
	return rows, nil
}

// Tenants returns every tenant row for the scoped properties, optionally
// narrowed to specific tenant ids.
func (r *AnalyticsRepository) Tenants(ctx context.Context, propertyIDs, tenantIDs []uuid.UUID) ([]model.Tenant, error) {
	if len(propertyIDs) == 0 {
		return []model.Tenant{}, nil
	}
	query := r.db.WithContext(ctx).
		Where("property_id IN ?", propertyIDs)
	if len(tenantIDs) > 0 {
		query = query.Where("id IN ?", tenantIDs)
	}
	var rows []model.Tenant
	if err := query.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetch tenants: %w", err)
	}
	return rows, nil
}

func (r *AnalyticsRepository) ActiveTenants(ctx context.Context, propertyIDs []uuid.UUID) ([]model.Tenant, error) {
	if len(propertyIDs) == 0 {
		return []model.Tenant{}, nil
	}
	var rows []model.Tenant
	err := r.db.WithContext(ctx).
		Where("property_id IN ?", propertyIDs).
		Where("status = ?", model.TenantActive).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("fetch active tenants: %w", err)
	}
	return rows, nil
}

// Payments filters by COALESCE(paid_date, due_date) when a date range is
// set: a paid payment belongs to the period it was paid in, everything else
// to the period it was due in.
func (r *AnalyticsRepository) Payments(ctx context.Context, propertyIDs, tenantIDs []uuid.UUID, rng model.DateRange) ([]model.Payment, error) {
	if len(propertyIDs) == 0 {
		return []model.Payment{}, nil
	}
	query := r.db.WithContext(ctx).
		Where("property_id IN ?", propertyIDs)
	if len(tenantIDs) > 0 {
		query = query.Where("tenant_id IN ?", tenantIDs)
	}
	if !rng.IsZero() {
		query = query.Where("COALESCE(paid_date, due_date) BETWEEN ? AND ?", rng.From, rng.To)
	}
	var rows []model.Payment
	if err := query.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetch payments: %w", err)
	}
	return rows, nil
}

func (r *AnalyticsRepository) MaintenanceRequests(ctx context.Context, propertyIDs []uuid.UUID, rng model.DateRange) ([]model.MaintenanceRequest, error) {
	if len(propertyIDs) == 0 {
		return []model.MaintenanceRequest{}, nil
	}
	query := r.db.WithContext(ctx).
		Where("property_id IN ?", propertyIDs)
	if !rng.IsZero() {
		query = query.Where("created_at BETWEEN ? AND ?", rng.From, rng.To)
	}
	var rows []model.MaintenanceRequest
	if err := query.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetch maintenance requests: %w", err)
	}
	return rows, nil
}

func (r *AnalyticsRepository) Announcements(ctx context.Context, propertyIDs []uuid.UUID, rng model.DateRange) ([]model.Announcement, error) {
	if len(propertyIDs) == 0 {
		return []model.Announcement{}, nil
	}
	query := r.db.WithContext(ctx).
		Where("property_id IN ?", propertyIDs)
	if !rng.IsZero() {
		query = query.Where("created_at BETWEEN ? AND ?", rng.From, rng.To)
	}
	var rows []model.Announcement
	if err := query.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetch announcements: %w", err)
	}
	return rows, nil
}

func (r *AnalyticsRepository) CommunityPosts(ctx context.Context, propertyIDs []uuid.UUID, rng model.DateRange) ([]model.CommunityPost, error) {
	if len(propertyIDs) == 0 {
		return []model.CommunityPost{}, nil
	}
	query := r.db.WithContext(ctx).
		Where("property_id IN ?", propertyIDs)
	if !rng.IsZero() {
		query = query.Where("created_at BETWEEN ? AND ?", rng.From, rng.To)
	}
	var rows []model.CommunityPost
	if err := query.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetch community posts: %w", err)
	}
	return rows, nil
}
