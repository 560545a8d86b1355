package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestScopeNarrowIntersects(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	scope := Scope{PropertyIDs: []uuid.UUID{a, b}}

	narrowed := scope.Narrow([]uuid.UUID{b, c})

	assert.Equal(t, []uuid.UUID{b}, narrowed.PropertyIDs)
}

func TestScopeNarrowNoRequestKeepsScope(t *testing.T) {
	a := uuid.New()
	scope := Scope{PropertyIDs: []uuid.UUID{a}}

	assert.Equal(t, scope, scope.Narrow(nil))
}

func TestScopeNarrowCannotWiden(t *testing.T) {
	scope := Scope{}

	narrowed := scope.Narrow([]uuid.UUID{uuid.New()})

	assert.True(t, narrowed.IsEmpty())
}
