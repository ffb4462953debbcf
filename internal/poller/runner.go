// internal/poller/runner.go
package poller

import (
	"context"
	"time"
)

// Run drives the acquisition loop until ctx is cancelled. The ticker
// fires on the absolute schedule, so decode and IO time inside a cycle
// do not accumulate drift. The gateway session is released on exit.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()
	defer p.client.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			p.PollOnce(now)
		}
	}
}
