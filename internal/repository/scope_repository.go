package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"property-analytics-service/internal/model"
)

var ErrScopeUnsupported = errors.New("unsupported role for analytics scope")

// ScopeRepository resolves the set of property ids a principal may see.
type ScopeRepository struct {
	db *gorm.DB
}

func NewScopeRepository(db *gorm.DB) *ScopeRepository {
	return &ScopeRepository{db: db}
}

// ResolveScope returns an owner's owned properties or a tenant's leased
// properties (all historical leases). An empty result is not an error.
func (r *ScopeRepository) ResolveScope(ctx context.Context, principal model.Principal) (model.Scope, error) {
	var ids []uuid.UUID

	switch principal.Role {
	case model.RoleOwner:
		err := r.db.WithContext(ctx).
			Model(&model.Property{}).
			Where("owner_id = ?", principal.UserID).
			Order("id").
			Pluck("id", &ids).Error
		if err != nil {
			return model.Scope{}, fmt.Errorf("resolve owner scope: %w", err)
		}
	case model.RoleTenant:
		err := r.db.WithContext(ctx).
			Model(&model.Tenant{}).
			Distinct("property_id").
			Where("user_id = ?", principal.UserID).
			Order("property_id").
			Pluck("property_id", &ids).Error
		if err != nil {
			return model.Scope{}, fmt.Errorf("resolve tenant scope: %w", err)
		}
	default:
		return model.Scope{}, ErrScopeUnsupported
	}

	return model.Scope{PropertyIDs: ids}, nil
}
