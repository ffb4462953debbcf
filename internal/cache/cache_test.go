// internal/cache/cache_test.go
package cache

import (
	"sync"
	"testing"
	"time"

	"dewdash/internal/sensor"
	"dewdash/internal/status"
)

func TestStore_InitialState(t *testing.T) {
	s := New()

	snap := s.Snapshot()
	if snap.Reading != nil {
		t.Fatalf("initial reading not nil")
	}
	if snap.State != status.Disconnected {
		t.Fatalf("initial state: got %v", snap.State)
	}

	select {
	case <-s.FirstReading():
		t.Fatalf("FirstReading fired before any update")
	default:
	}
}

func TestStore_FirstReadingFiresOnce(t *testing.T) {
	s := New()

	// A failure-only update must not fire the signal.
	s.Update(status.Snapshot{State: status.Disconnected, ConsecutiveFailures: 1})
	select {
	case <-s.FirstReading():
		t.Fatalf("FirstReading fired on a failure update")
	default:
	}

	r := sensor.Decode(sensor.RawSample{7690, 470, 846, 1980, 3564}, time.Now())
	s.Update(status.Snapshot{Reading: &r, State: status.Connected, LastSuccessAt: r.At})
	s.Update(status.Snapshot{Reading: &r, State: status.Connected, LastSuccessAt: r.At})

	select {
	case <-s.FirstReading():
	case <-time.After(time.Second):
		t.Fatalf("FirstReading did not fire")
	}
}

// TestStore_NoTornReads publishes readings whose five registers always
// share one value, and asserts concurrent readers never see a mix of
// two samples.
func TestStore_NoTornReads(t *testing.T) {
	s := New()

	const (
		writes  = 2000
		readers = 4
	)

	var wg sync.WaitGroup
	stopRead := make(chan struct{})

	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stopRead:
					return
				default:
				}

				snap := s.Snapshot()
				if snap.Reading == nil {
					continue
				}

				raw := snap.Reading.Raw
				for _, v := range raw[1:] {
					if v != raw[0] {
						t.Errorf("torn reading observed: %v", raw)
						return
					}
				}
				if snap.Reading.HumidityPct != float64(raw[0])/100.0 {
					t.Errorf("reading inconsistent with raw: %v", snap.Reading)
					return
				}
			}
		}()
	}

	for k := uint16(0); k < writes; k++ {
		raw := sensor.RawSample{k, k, k, k, k}
		r := sensor.Decode(raw, time.Now())
		s.Update(status.Snapshot{Reading: &r, State: status.Connected, LastSuccessAt: r.At})
	}

	close(stopRead)
	wg.Wait()
}
