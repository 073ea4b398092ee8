package services

import (
	"time"

	"github.com/google/uuid"
)

// Clock provides the wall-clock time used for activity window checks and
// stamping. Tests substitute a fixed clock for deterministic behavior.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func SystemClock() Clock { return systemClock{} }

type fixedClock struct {
	now time.Time
}

func (clock fixedClock) Now() time.Time { return clock.now }

// FixedClock returns a clock frozen at the given instant.
func FixedClock(now time.Time) Clock { return fixedClock{now: now} }

// IDSource generates record identifiers. Uniqueness within one deployment
// is all callers rely on.
type IDSource func() string

func UUIDSource() IDSource {
	return func() string { return uuid.NewString() }
}
