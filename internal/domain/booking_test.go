package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_CanDecide(t *testing.T) {
	tests := []struct {
		name     string
		status   BookingStatus
		approved bool
		want     bool
	}{
		{"approve waiting", StatusWaiting, true, true},
		{"reject waiting", StatusWaiting, false, true},
		{"re-approve approved", StatusApproved, true, false},
		{"re-reject rejected", StatusRejected, false, false},
		// переход между конечными статусами разрешён
		{"reject approved", StatusApproved, false, true},
		{"approve rejected", StatusRejected, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.want, b.CanDecide(tt.approved))
		})
	}
}

func TestBooking_Visibility(t *testing.T) {
	b := &Booking{
		Booker: User{ID: 2},
		Item:   Item{ID: 10, OwnerID: 1},
	}

	assert.True(t, b.IsOwnedBy(1))
	assert.False(t, b.IsOwnedBy(2))

	assert.True(t, b.IsVisibleTo(1))
	assert.True(t, b.IsVisibleTo(2))
	assert.False(t, b.IsVisibleTo(3))
}

func TestDecisionStatus(t *testing.T) {
	assert.Equal(t, StatusApproved, DecisionStatus(true))
	assert.Equal(t, StatusRejected, DecisionStatus(false))
}
