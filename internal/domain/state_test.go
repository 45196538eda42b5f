package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingState(t *testing.T) {
	tests := []struct {
		raw  string
		want BookingState
	}{
		{"", StateAll},
		{"ALL", StateAll},
		{"current", StateCurrent},
		{"Past", StatePast},
		{"FUTURE", StateFuture},
		{"waiting", StateWaiting},
		{"REJECTED", StateRejected},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseBookingState(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBookingState_Unknown(t *testing.T) {
	for _, raw := range []string{"UNSUPPORTED", "APPROVED", "CANCELED"} {
		_, err := ParseBookingState(raw)
		assert.ErrorIs(t, err, ErrUnknownState)
		assert.Contains(t, err.Error(), raw)
	}
	assert.Equal(t, "Unknown state: UNSUPPORTED", UnknownStateMessage("UNSUPPORTED"))
}

func TestPage(t *testing.T) {
	p, err := NewPage(0, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), p.Offset())
	assert.Equal(t, uint64(10), p.Limit())

	// from задаёт номер страницы, а не смещение
	p, err = NewPage(5, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), p.Offset())

	p, err = NewPage(7, 5)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), p.Offset())

	_, err = NewPage(-1, 10)
	assert.ErrorIs(t, err, ErrInvalidPage)

	_, err = NewPage(0, 0)
	assert.ErrorIs(t, err, ErrInvalidPage)
}
