package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBookingStatus(t *testing.T) {
	for _, valid := range []string{"confirmed", "cancelled", "completed"} {
		status, ok := ParseBookingStatus(valid)
		assert.True(t, ok)
		assert.Equal(t, BookingStatus(valid), status)
	}

	_, ok := ParseBookingStatus("paused")
	assert.False(t, ok)

	_, ok = ParseBookingStatus("Confirmed")
	assert.False(t, ok)
}

func TestBookingIsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.True(t, (&Booking{Status: StatusCompleted}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
}

func TestBookingTransitions(t *testing.T) {
	confirmed := &Booking{Status: StatusConfirmed}
	assert.True(t, confirmed.CanTransitionTo(StatusCancelled))
	assert.True(t, confirmed.CanTransitionTo(StatusCompleted))
	assert.False(t, confirmed.CanTransitionTo(StatusConfirmed))

	for _, terminal := range []BookingStatus{StatusCancelled, StatusCompleted} {
		b := &Booking{Status: terminal}
		assert.True(t, b.IsTerminal())
		assert.False(t, b.CanTransitionTo(StatusCancelled))
		assert.False(t, b.CanTransitionTo(StatusCompleted))
		assert.False(t, b.CanTransitionTo(StatusConfirmed))
	}
}

func TestRolePermissions(t *testing.T) {
	owner := Principal{Role: RoleOwner}
	manager := Principal{Role: RoleManager}
	member := Principal{Role: RoleMember}

	assert.True(t, owner.CanManageTeam())
	assert.True(t, owner.CanUpdateConfig())
	assert.True(t, owner.CanViewAgenda())

	// Manager и member различаются только названием роли
	for _, p := range []Principal{manager, member} {
		assert.False(t, p.CanManageTeam())
		assert.False(t, p.CanUpdateConfig())
		assert.True(t, p.CanViewAgenda())
	}
}

func TestIsScopedTo(t *testing.T) {
	p := Principal{TenantSlug: "barber", Role: RoleOwner}
	assert.True(t, p.IsScopedTo("barber"))
	assert.False(t, p.IsScopedTo("other-shop"))
}

func TestServicePriceMap(t *testing.T) {
	tenant := &Tenant{Services: []CatalogService{
		{Name: "Corte", Price: 50},
		{Name: "Barba", Price: 30},
	}}

	prices := tenant.ServicePriceMap()

	assert.Equal(t, 50.0, prices["Corte"])
	assert.Equal(t, 30.0, prices["Barba"])
	assert.Zero(t, prices["Unknown"])
}
