// internal/util/clock.go
// Time source injected into components that stamp records.

package util

import "time"

type Clock interface {
	Now() time.Time
}

// RealClock returns UTC wall time truncated to milliseconds, the precision stored in MySQL.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC().Truncate(time.Millisecond) }

// FixedClock always returns T.
type FixedClock struct{ T time.Time }

func (c FixedClock) Now() time.Time { return c.T }
