package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-analytics-service/internal/model"
	"property-analytics-service/internal/repository"
)

type fakeScopes struct {
	scope model.Scope
	err   error
}

func (f *fakeScopes) ResolveScope(_ context.Context, _ model.Principal) (model.Scope, error) {
	return f.scope, f.err
}

type fakeRecords struct {
	properties    []model.Property
	tenants       []model.Tenant
	activeTenants []model.Tenant
	payments      []model.Payment
	requests      []model.MaintenanceRequest
	announcements []model.Announcement
	posts         []model.CommunityPost

	paymentsErr error

	seenPropertyIDs []uuid.UUID
}

func scoped[T any](rows []T, ids []uuid.UUID) []T {
	if len(ids) == 0 {
		return []T{}
	}
	return rows
}

func (f *fakeRecords) Properties(_ context.Context, ids []uuid.UUID) ([]model.Property, error) {
	f.seenPropertyIDs = ids
	return scoped(f.properties, ids), nil
}

func (f *fakeRecords) Tenants(_ context.Context, ids, _ []uuid.UUID) ([]model.Tenant, error) {
	return scoped(f.tenants, ids), nil
}

func (f *fakeRecords) ActiveTenants(_ context.Context, ids []uuid.UUID) ([]model.Tenant, error) {
	return scoped(f.activeTenants, ids), nil
}

func (f *fakeRecords) Payments(_ context.Context, ids, _ []uuid.UUID, _ model.DateRange) ([]model.Payment, error) {
	if f.paymentsErr != nil {
		return nil, f.paymentsErr
	}
	return scoped(f.payments, ids), nil
}

func (f *fakeRecords) MaintenanceRequests(_ context.Context, ids []uuid.UUID, _ model.DateRange) ([]model.MaintenanceRequest, error) {
	return scoped(f.requests, ids), nil
}

func (f *fakeRecords) Announcements(_ context.Context, ids []uuid.UUID, _ model.DateRange) ([]model.Announcement, error) {
	return scoped(f.announcements, ids), nil
}

func (f *fakeRecords) CommunityPosts(_ context.Context, ids []uuid.UUID, _ model.DateRange) ([]model.CommunityPost, error) {
	return scoped(f.posts, ids), nil
}

type fakeCache struct {
	store map[string][]byte
	hits  int
	sets  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string][]byte{}}
}

func (f *fakeCache) Get(_ context.Context, key string, dest interface{}) bool {
	payload, ok := f.store[key]
	if !ok {
		return false
	}
	f.hits++
	stats := dest.(*model.OverviewStats)
	*stats = model.OverviewStats{TotalProperties: int64(payload[0])}
	return true
}

func (f *fakeCache) Set(_ context.Context, key string, _ interface{}) {
	f.sets++
	f.store[key] = []byte{42}
}

func ownerPrincipal() model.Principal {
	return model.Principal{UserID: uuid.New(), Role: model.RoleOwner}
}

func TestGetOverviewComposes(t *testing.T) {
	p1 := model.Property{ID: uuid.New(), TotalUnits: 10, OccupiedUnits: 8}
	p2 := model.Property{ID: uuid.New(), TotalUnits: 5, OccupiedUnits: 5}
	paid := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	records := &fakeRecords{
		properties: []model.Property{p1, p2},
		payments: []model.Payment{
			{PropertyID: p1.ID, Amount: 1000, Status: model.PaymentPaid, PaidAt: &paid},
			{PropertyID: p2.ID, Amount: 500, Status: model.PaymentPending},
		},
	}
	scopes := &fakeScopes{scope: model.Scope{PropertyIDs: []uuid.UUID{p1.ID, p2.ID}}}
	svc := NewAnalyticsService(scopes, records, nil, 365)

	stats, err := svc.GetOverview(context.Background(), ownerPrincipal(), model.AnalyticsFilter{})

	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalProperties)
	assert.Equal(t, float64(1000), stats.TotalRevenue)
	assert.Equal(t, float64(500), stats.PendingPayments)
	assert.Equal(t, 86.67, stats.OccupancyRate)
}

func TestGetOverviewEmptyScopeIsZeroSuccess(t *testing.T) {
	records := &fakeRecords{
		payments: []model.Payment{{Amount: 1000, Status: model.PaymentPaid}},
	}
	svc := NewAnalyticsService(&fakeScopes{}, records, nil, 365)

	stats, err := svc.GetOverview(context.Background(), model.Principal{UserID: uuid.New(), Role: model.RoleTenant}, model.AnalyticsFilter{})

	require.NoError(t, err)
	assert.Equal(t, &model.OverviewStats{}, stats)
	// The empty scope short-circuits before any fetch.
	assert.Nil(t, records.seenPropertyIDs)
}

func TestEmptyScopeAggregatesAreEmpty(t *testing.T) {
	svc := NewAnalyticsService(&fakeScopes{}, &fakeRecords{}, nil, 365)
	principal := ownerPrincipal()
	ctx := context.Background()

	revenue, err := svc.GetRevenueAnalytics(ctx, principal, model.AnalyticsFilter{})
	require.NoError(t, err)
	assert.Empty(t, revenue.MonthlyRevenue)
	assert.Empty(t, revenue.PaymentTypes)
	assert.Empty(t, revenue.PaymentStatus)

	properties, err := svc.GetPropertyAnalytics(ctx, principal, model.AnalyticsFilter{})
	require.NoError(t, err)
	assert.Empty(t, properties.TopPerforming)

	maintenance, err := svc.GetMaintenanceAnalytics(ctx, principal, model.AnalyticsFilter{})
	require.NoError(t, err)
	assert.Empty(t, maintenance.ByCategory)

	tenants, err := svc.GetTenantAnalytics(ctx, principal, model.AnalyticsFilter{})
	require.NoError(t, err)
	assert.Empty(t, tenants.ByStatus)
	assert.Equal(t, float64(0), tenants.RetentionRate)

	communication, err := svc.GetCommunicationAnalytics(ctx, principal, model.AnalyticsFilter{})
	require.NoError(t, err)
	assert.Empty(t, communication.AnnouncementsByType)
}

func TestFetchFailureFailsWholeCall(t *testing.T) {
	scopes := &fakeScopes{scope: model.Scope{PropertyIDs: []uuid.UUID{uuid.New()}}}
	records := &fakeRecords{
		properties:  []model.Property{{ID: uuid.New(), TotalUnits: 1, OccupiedUnits: 1}},
		paymentsErr: errors.New("connection reset"),
	}
	svc := NewAnalyticsService(scopes, records, nil, 365)

	stats, err := svc.GetOverview(context.Background(), ownerPrincipal(), model.AnalyticsFilter{})

	require.Error(t, err)
	assert.Nil(t, stats)
}

func TestUnsupportedRoleMapsToPermissionDenied(t *testing.T) {
	scopes := &fakeScopes{err: repository.ErrScopeUnsupported}
	svc := NewAnalyticsService(scopes, &fakeRecords{}, nil, 365)

	_, err := svc.GetOverview(context.Background(), model.Principal{UserID: uuid.New(), Role: "admin"}, model.AnalyticsFilter{})

	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestScopeResolutionFailurePropagates(t *testing.T) {
	scopes := &fakeScopes{err: errors.New("db unreachable")}
	svc := NewAnalyticsService(scopes, &fakeRecords{}, nil, 365)

	_, err := svc.GetRevenueAnalytics(context.Background(), ownerPrincipal(), model.AnalyticsFilter{})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPermissionDenied)
}

func TestPropertyFilterNarrowsScope(t *testing.T) {
	inScope := uuid.New()
	alsoInScope := uuid.New()
	outOfScope := uuid.New()
	scopes := &fakeScopes{scope: model.Scope{PropertyIDs: []uuid.UUID{inScope, alsoInScope}}}
	records := &fakeRecords{}
	svc := NewAnalyticsService(scopes, records, nil, 365)

	_, err := svc.GetPropertyAnalytics(context.Background(), ownerPrincipal(), model.AnalyticsFilter{
		PropertyIDs: []uuid.UUID{alsoInScope, outOfScope},
	})

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{alsoInScope}, records.seenPropertyIDs)
}

func TestOverviewCacheRoundTrip(t *testing.T) {
	propertyID := uuid.New()
	scopes := &fakeScopes{scope: model.Scope{PropertyIDs: []uuid.UUID{propertyID}}}
	records := &fakeRecords{properties: []model.Property{{ID: propertyID, TotalUnits: 1, OccupiedUnits: 1}}}
	cache := newFakeCache()
	svc := NewAnalyticsService(scopes, records, cache, 365)
	principal := ownerPrincipal()

	_, err := svc.GetOverview(context.Background(), principal, model.AnalyticsFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, 0, cache.hits)

	_, err = svc.GetOverview(context.Background(), principal, model.AnalyticsFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, 1, cache.sets)
}
