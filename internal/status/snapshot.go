// internal/status/snapshot.go
package status

import (
	"time"

	"dewdash/internal/sensor"
)

// Snapshot is the shared acquisition state: the last decoded reading
// plus connection health. It contains no logic and no memory of the
// past beyond current state.
//
// Reading is nil until the first successful read and is never cleared
// afterwards; a failed cycle retains the previous reading unchanged.
type Snapshot struct {
	Reading             *sensor.Reading
	State               ConnState
	LastSuccessAt       time.Time
	ConsecutiveFailures uint32
}

// Online reports whether consumers should treat the sensor as live.
func (s Snapshot) Online() bool {
	return s.State == Connected && s.Reading != nil
}

// Stale reports whether the cached reading has aged past factor poll
// periods. Staleness is derived here, never stored.
func (s Snapshot) Stale(now time.Time, period time.Duration, factor int) bool {
	if s.State != Connected || s.LastSuccessAt.IsZero() {
		return true
	}
	return now.Sub(s.LastSuccessAt) > time.Duration(factor)*period
}
