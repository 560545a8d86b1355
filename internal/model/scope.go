package model

import "github.com/google/uuid"

type Role string

const (
	RoleOwner  Role = "owner"
	RoleTenant Role = "tenant"
)

// Principal is the authenticated caller, extracted from the access token.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

func (p Principal) IsOwner() bool  { return p.Role == RoleOwner }
func (p Principal) IsTenant() bool { return p.Role == RoleTenant }

// Scope is the set of property ids the principal is authorized to see.
// An empty scope is a valid state meaning "zero of everything".
type Scope struct {
	PropertyIDs []uuid.UUID
}

func (s Scope) IsEmpty() bool { return len(s.PropertyIDs) == 0 }

// Narrow intersects the scope with a requested subset of property ids.
// Requested ids outside the scope are silently dropped.
func (s Scope) Narrow(requested []uuid.UUID) Scope {
	if len(requested) == 0 {
		return s
	}
	allowed := make(map[uuid.UUID]struct{}, len(s.PropertyIDs))
	for _, id := range s.PropertyIDs {
		allowed[id] = struct{}{}
	}
	narrowed := make([]uuid.UUID, 0, len(requested))
	for _, id := range requested {
		if _, ok := allowed[id]; ok {
			narrowed = append(narrowed, id)
		}
	}
	return Scope{PropertyIDs: narrowed}
}
