package types

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseClock(t *testing.T) {
	deadline := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	expiry := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		now          time.Time
		phase        SalePhase
		depositOpen  bool
		releaseOpen  bool
		burnRequired bool
	}{
		{
			name:         "before deadline",
			now:          deadline.Add(-time.Hour),
			phase:        PhaseEnrolling,
			depositOpen:  true,
			releaseOpen:  false,
			burnRequired: true,
		},
		{
			name:         "exactly at deadline",
			now:          deadline,
			phase:        PhaseAwaitingRelease,
			depositOpen:  false,
			releaseOpen:  true,
			burnRequired: true,
		},
		{
			name:         "between deadline and expiry",
			now:          deadline.Add(24 * time.Hour),
			phase:        PhaseAwaitingRelease,
			depositOpen:  false,
			releaseOpen:  true,
			burnRequired: true,
		},
		{
			name:         "exactly at lock expiry",
			now:          expiry,
			phase:        PhaseUnlocked,
			depositOpen:  false,
			releaseOpen:  true,
			burnRequired: false,
		},
		{
			name:         "after lock expiry",
			now:          expiry.Add(time.Hour),
			phase:        PhaseUnlocked,
			depositOpen:  false,
			releaseOpen:  true,
			burnRequired: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := NewPhaseClock(deadline, expiry)
			clock.Now = func() time.Time { return tt.now }

			assert.Equal(t, tt.phase, clock.Phase())
			assert.Equal(t, tt.depositOpen, clock.DepositOpen())
			assert.Equal(t, tt.releaseOpen, clock.ReleaseOpen())
			assert.Equal(t, tt.burnRequired, clock.BurnRequired())
		})
	}
}

func TestPhaseClockDefaultsToWallClock(t *testing.T) {
	clock := NewPhaseClock(time.Now().Add(time.Hour), time.Now().Add(2*time.Hour))
	clock.Now = nil

	require.Equal(t, PhaseEnrolling, clock.Phase())
}

func TestErrorKind(t *testing.T) {
	err := NewErrorf(ErrCapExceeded, "deposit of %d would exceed cap", 500)

	require.EqualError(t, err, "CAP_EXCEEDED: deposit of 500 would exceed cap")
	assert.Equal(t, ErrCapExceeded, KindOf(err))
	assert.True(t, IsKind(err, ErrCapExceeded))
	assert.False(t, IsKind(err, ErrUnknownAsset))

	wrapped := fmt.Errorf("deposit failed: %w", err)
	assert.Equal(t, ErrCapExceeded, KindOf(wrapped))
	assert.True(t, IsKind(wrapped, ErrCapExceeded))

	assert.Equal(t, ErrExternalCallFailed, KindOf(errors.New("socket closed")))
}
