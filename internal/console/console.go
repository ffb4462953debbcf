// internal/console/console.go
package console

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"dewdash/internal/cache"
)

// Reporter logs a once-per-second summary of the latest reading, the
// terminal counterpart of the web dashboard. Read-only over the cache.
type Reporter struct {
	store *cache.Store
	log   *zap.Logger
	cron  *cron.Cron
}

func New(store *cache.Store, log *zap.Logger) *Reporter {
	return &Reporter{store: store, log: log}
}

// Start schedules the 1 Hz readout. Nothing is printed before the
// first successful reading.
func (r *Reporter) Start() error {
	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc("* * * * * *", r.report); err != nil {
		return err
	}
	c.Start()
	r.cron = c
	return nil
}

func (r *Reporter) Stop() {
	if r.cron != nil {
		r.cron.Stop()
	}
}

func (r *Reporter) report() {
	snap := r.store.Snapshot()
	if snap.Reading == nil {
		return
	}

	rd := snap.Reading
	r.log.Info("reading",
		zap.Float64("temp_c", rd.TemperatureC),
		zap.Float64("humidity_pct", rd.HumidityPct),
		zap.Float64("dewpoint_c", rd.DewPointC),
		zap.Float64("spread_c", rd.DewPointSpreadC),
		zap.Bool("condensation_risk", rd.CondensationRisk),
		zap.Bool("online", snap.Online()),
		zap.Uint32("consecutive_failures", snap.ConsecutiveFailures),
	)
}
