package types

import "time"

// Enum values for the sale phase
type SalePhase string

const (
	PhaseEnrolling       SalePhase = "ENROLLING"
	PhaseAwaitingRelease SalePhase = "AWAITING_RELEASE"
	PhaseUnlocked        SalePhase = "UNLOCKED"
)

func (p SalePhase) String() string {
	return string(p)
}

// PhaseClock derives the current sale phase from the two configured
// timestamps. It holds no state of its own; Now is injectable for tests
// and defaults to time.Now.
type PhaseClock struct {
	EnrollmentDeadline time.Time
	LockExpiry         time.Time
	Now                func() time.Time
}

func NewPhaseClock(enrollmentDeadline, lockExpiry time.Time) PhaseClock {
	return PhaseClock{
		EnrollmentDeadline: enrollmentDeadline,
		LockExpiry:         lockExpiry,
		Now:                time.Now,
	}
}

func (c PhaseClock) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c PhaseClock) Phase() SalePhase {
	now := c.now()
	switch {
	case now.Before(c.EnrollmentDeadline):
		return PhaseEnrolling
	case now.Before(c.LockExpiry):
		return PhaseAwaitingRelease
	default:
		return PhaseUnlocked
	}
}

// DepositOpen reports whether deposits are still accepted.
func (c PhaseClock) DepositOpen() bool {
	return c.now().Before(c.EnrollmentDeadline)
}

// ReleaseOpen reports whether pending entitlements may be finalized.
func (c PhaseClock) ReleaseOpen() bool {
	return !c.now().Before(c.EnrollmentDeadline)
}

// BurnRequired reports whether an early withdrawal must burn minted
// balance. Independent of whether release has happened for the caller.
func (c PhaseClock) BurnRequired() bool {
	return c.now().Before(c.LockExpiry)
}
