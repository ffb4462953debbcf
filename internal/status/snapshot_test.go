// internal/status/snapshot_test.go
package status

import (
	"testing"
	"time"

	"dewdash/internal/sensor"
)

const period = 100 * time.Millisecond

func TestStale_FreshReading(t *testing.T) {
	now := time.Now()
	s := Snapshot{State: Connected, LastSuccessAt: now.Add(-2 * period)}

	if s.Stale(now, period, 3) {
		t.Fatalf("fresh reading reported stale")
	}
}

func TestStale_AgedPastFactor(t *testing.T) {
	// Still Connected, but the last success is older than 3 periods.
	now := time.Now()
	s := Snapshot{State: Connected, LastSuccessAt: now.Add(-4 * period)}

	if !s.Stale(now, period, 3) {
		t.Fatalf("aged reading not reported stale")
	}
}

func TestStale_DisconnectedIsAlwaysStale(t *testing.T) {
	now := time.Now()
	s := Snapshot{State: Disconnected, LastSuccessAt: now}

	if !s.Stale(now, period, 3) {
		t.Fatalf("disconnected snapshot not reported stale")
	}
}

func TestStale_NoSuccessYet(t *testing.T) {
	s := Snapshot{State: Connected}

	if !s.Stale(time.Now(), period, 3) {
		t.Fatalf("zero LastSuccessAt not reported stale")
	}
}

func TestOnline(t *testing.T) {
	r := sensor.Decode(sensor.RawSample{}, time.Now())

	cases := []struct {
		name string
		snap Snapshot
		want bool
	}{
		{"connected with reading", Snapshot{Reading: &r, State: Connected}, true},
		{"connected without reading", Snapshot{State: Connected}, false},
		{"disconnected with reading", Snapshot{Reading: &r, State: Disconnected}, false},
		{"connecting", Snapshot{Reading: &r, State: Connecting}, false},
	}

	for _, tc := range cases {
		if got := tc.snap.Online(); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}
