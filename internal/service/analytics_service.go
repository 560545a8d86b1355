package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"property-analytics-service/internal/aggregate"
	"property-analytics-service/internal/model"
	"property-analytics-service/internal/repository"
)

var ErrPermissionDenied = errors.New("permission denied")

// ScopeResolver computes the property-id set a principal may see.
type ScopeResolver interface {
	ResolveScope(ctx context.Context, principal model.Principal) (model.Scope, error)
}

// RecordFetcher retrieves typed entity rows scoped to a property-id set.
type RecordFetcher interface {
	Properties(ctx context.Context, propertyIDs []uuid.UUID) ([]model.Property, error)
	Tenants(ctx context.Context, propertyIDs, tenantIDs []uuid.UUID) ([]model.Tenant, error)
	ActiveTenants(ctx context.Context, propertyIDs []uuid.UUID) ([]model.Tenant, error)
	Payments(ctx context.Context, propertyIDs, tenantIDs []uuid.UUID, rng model.DateRange) ([]model.Payment, error)
	MaintenanceRequests(ctx context.Context, propertyIDs []uuid.UUID, rng model.DateRange) ([]model.MaintenanceRequest, error)
	Announcements(ctx context.Context, propertyIDs []uuid.UUID, rng model.DateRange) ([]model.Announcement, error)
	CommunityPosts(ctx context.Context, propertyIDs []uuid.UUID, rng model.DateRange) ([]model.CommunityPost, error)
}

// OverviewCache caches composed overview payloads. Implementations are
// best-effort; a miss or failure means recompute.
type OverviewCache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{})
}

// AnalyticsService chains scope resolution, scoped row fetches and the pure
// reducers. Every method is read-only; a fetch failure fails the whole call
// so no partially summed statistic ever goes out.
type AnalyticsService struct {
	scopes   ScopeResolver
	records  RecordFetcher
	cache    OverviewCache
	maxRange int
}

func NewAnalyticsService(scopes ScopeResolver, records RecordFetcher, cache OverviewCache, maxRangeDays int) *AnalyticsService {
	return &AnalyticsService{
		scopes:   scopes,
		records:  records,
		cache:    cache,
		maxRange: maxRangeDays,
	}
}

func (s *AnalyticsService) resolve(ctx context.Context, principal model.Principal, filter model.AnalyticsFilter) (model.Scope, model.AnalyticsFilter, error) {
	scope, err := s.scopes.ResolveScope(ctx, principal)
	if err != nil {
		if errors.Is(err, repository.ErrScopeUnsupported) {
			return model.Scope{}, filter, ErrPermissionDenied
		}
		return model.Scope{}, filter, err
	}
	return scope.Narrow(filter.PropertyIDs), filter.Normalize(s.maxRange), nil
}

// GetOverview composes the dashboard stat cards. An empty scope yields the
// zero stats immediately, which is the defined success case for users with
// no properties or leases.
func (s *AnalyticsService) GetOverview(ctx context.Context, principal model.Principal, filter model.AnalyticsFilter) (*model.OverviewStats, error) {
	scope, filter, err := s.resolve(ctx, principal, filter)
	if err != nil {
		return nil, fmt.Errorf("get overview: %w", err)
	}
	if scope.IsEmpty() {
		return &model.OverviewStats{}, nil
	}

	key := overviewCacheKey(principal, scope, filter)
	if s.cache != nil {
		var cached model.OverviewStats
		if s.cache.Get(ctx, key, &cached) {
			return &cached, nil
		}
	}

	var (
		properties []model.Property
		tenants    []model.Tenant
		payments   []model.Payment
		requests   []model.MaintenanceRequest
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		properties, err = s.records.Properties(gctx, scope.PropertyIDs)
		return err
	})
	g.Go(func() (err error) {
		tenants, err = s.records.ActiveTenants(gctx, scope.PropertyIDs)
		return err
	})
	g.Go(func() (err error) {
		payments, err = s.records.Payments(gctx, scope.PropertyIDs, filter.TenantIDs, filter.Range)
		return err
	})
	g.Go(func() (err error) {
		requests, err = s.records.MaintenanceRequests(gctx, scope.PropertyIDs, filter.Range)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("get overview: %w", err)
	}

	stats := aggregate.Overview(properties, tenants, payments, requests)
	if s.cache != nil {
		s.cache.Set(ctx, key, stats)
	}
	return &stats, nil
}

func (s *AnalyticsService) GetRevenueAnalytics(ctx context.Context, principal model.Principal, filter model.AnalyticsFilter) (*model.RevenueAnalytics, error) {
	scope, filter, err := s.resolve(ctx, principal, filter)
	if err != nil {
		return nil, fmt.Errorf("get revenue analytics: %w", err)
	}

	payments, err := s.records.Payments(ctx, scope.PropertyIDs, filter.TenantIDs, filter.Range)
	if err != nil {
		return nil, fmt.Errorf("get revenue analytics: %w", err)
	}

	result := aggregate.Revenue(payments)
	return &result, nil
}

func (s *AnalyticsService) GetPropertyAnalytics(ctx context.Context, principal model.Principal, filter model.AnalyticsFilter) (*model.PropertyAnalytics, error) {
	scope, filter, err := s.resolve(ctx, principal, filter)
	if err != nil {
		return nil, fmt.Errorf("get property analytics: %w", err)
	}

	var (
		properties []model.Property
		payments   []model.Payment
		tenants    []model.Tenant
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		properties, err = s.records.Properties(gctx, scope.PropertyIDs)
		return err
	})
	g.Go(func() (err error) {
		payments, err = s.records.Payments(gctx, scope.PropertyIDs, filter.TenantIDs, filter.Range)
		return err
	})
	g.Go(func() (err error) {
		tenants, err = s.records.ActiveTenants(gctx, scope.PropertyIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("get property analytics: %w", err)
	}

	result := aggregate.Properties(properties, payments, tenants)
	return &result, nil
}

func (s *AnalyticsService) GetMaintenanceAnalytics(ctx context.Context, principal model.Principal, filter model.AnalyticsFilter) (*model.MaintenanceAnalytics, error) {
	scope, filter, err := s.resolve(ctx, principal, filter)
	if err != nil {
		return nil, fmt.Errorf("get maintenance analytics: %w", err)
	}

	requests, err := s.records.MaintenanceRequests(ctx, scope.PropertyIDs, filter.Range)
	if err != nil {
		return nil, fmt.Errorf("get maintenance analytics: %w", err)
	}

	result := aggregate.Maintenance(requests)
	return &result, nil
}

func (s *AnalyticsService) GetTenantAnalytics(ctx context.Context, principal model.Principal, filter model.AnalyticsFilter) (*model.TenantAnalytics, error) {
	scope, filter, err := s.resolve(ctx, principal, filter)
	if err != nil {
		return nil, fmt.Errorf("get tenant analytics: %w", err)
	}

	tenants, err := s.records.Tenants(ctx, scope.PropertyIDs, filter.TenantIDs)
	if err != nil {
		return nil, fmt.Errorf("get tenant analytics: %w", err)
	}

	result := aggregate.Tenants(tenants)
	return &result, nil
}

func (s *AnalyticsService) GetCommunicationAnalytics(ctx context.Context, principal model.Principal, filter model.AnalyticsFilter) (*model.CommunicationAnalytics, error) {
	scope, filter, err := s.resolve(ctx, principal, filter)
	if err != nil {
		return nil, fmt.Errorf("get communication analytics: %w", err)
	}

	var (
		announcements []model.Announcement
		posts         []model.CommunityPost
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		announcements, err = s.records.Announcements(gctx, scope.PropertyIDs, filter.Range)
		return err
	})
	g.Go(func() (err error) {
		posts, err = s.records.CommunityPosts(gctx, scope.PropertyIDs, filter.Range)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("get communication analytics: %w", err)
	}

	result := aggregate.Communication(announcements, posts)
	return &result, nil
}

func overviewCacheKey(principal model.Principal, scope model.Scope, filter model.AnalyticsFilter) string {
	var b strings.Builder
	b.WriteString("analytics:overview:")
	b.WriteString(string(principal.Role))
	b.WriteByte(':')
	b.WriteString(principal.UserID.String())

	ids := make([]string, 0, len(scope.PropertyIDs))
	for _, id := range scope.PropertyIDs {
		ids = append(ids, id.String())
	}
	sort.Strings(ids)
	b.WriteByte(':')
	b.WriteString(strings.Join(ids, ","))

	if !filter.Range.IsZero() {
		fmt.Fprintf(&b, ":%d-%d", filter.Range.From.Unix(), filter.Range.To.Unix())
	}
	if len(filter.TenantIDs) > 0 {
		tenantIDs := make([]string, 0, len(filter.TenantIDs))
		for _, id := range filter.TenantIDs {
			tenantIDs = append(tenantIDs, id.String())
		}
		sort.Strings(tenantIDs)
		b.WriteByte(':')
		b.WriteString(strings.Join(tenantIDs, ","))
	}
	return b.String()
}
