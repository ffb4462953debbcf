// internal/poller/poller.go
package poller

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"dewdash/internal/cache"
	"dewdash/internal/sensor"
	"dewdash/internal/status"
)

// Client abstracts the gateway session the poller drives.
// The poller depends on block geometry only.
type Client interface {
	Connect() error
	ReadBlock(addr, qty uint16) ([]uint16, error)
	Close() error
}

// Config is the minimal runtime config the poller needs.
type Config struct {
	BaseAddress uint16
	Quantity    uint16
	Interval    time.Duration

	// ReconnectOnTimeout drops the session on a read timeout instead of
	// keeping it for the next cycle.
	ReconnectOnTimeout bool
}

// Poller drives the fixed-period acquisition cycle. It is the ONLY
// writer of the cache store; connection state is owned here.
type Poller struct {
	cfg    Config
	client Client
	store  *cache.Store
	log    *zap.Logger

	snap       status.Snapshot
	hadSuccess bool
}

// New creates a poller with immutable config.
func New(cfg Config, client Client, store *cache.Store, log *zap.Logger) (*Poller, error) {
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if cfg.Quantity == 0 {
		return nil, errors.New("poller: quantity must be > 0")
	}
	if client == nil {
		return nil, errors.New("poller: client required")
	}
	if store == nil {
		return nil, errors.New("poller: store required")
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Poller{
		cfg:    cfg,
		client: client,
		store:  store,
		log:    log,
		snap:   status.Snapshot{State: status.Disconnected},
	}, nil
}

// PollOnce performs exactly one acquisition cycle and publishes the
// resulting snapshot. All-or-nothing: a failed cycle never replaces
// the previous reading.
func (p *Poller) PollOnce(now time.Time) {
	if p.snap.State != status.Connected {
		p.snap.State = status.Connecting
		if err := p.client.Connect(); err != nil {
			p.snap.State = status.Disconnected
			p.snap.ConsecutiveFailures++
			p.store.Update(p.snap)
			p.logFailure("connect failed", err, KindConnect, true)
			return
		}
		p.snap.State = status.Connected
		p.snap.ConsecutiveFailures = 0
		p.log.Info("gateway connected")
	}

	regs, err := p.client.ReadBlock(p.cfg.BaseAddress, p.cfg.Quantity)
	if err != nil {
		p.fail(err)
		return
	}
	if len(regs) < sensor.RegisterCount {
		p.fail(fmt.Errorf("poller: block too short: got %d registers, want %d",
			len(regs), sensor.RegisterCount))
		return
	}

	var raw sensor.RawSample
	copy(raw[:], regs)
	reading := sensor.Decode(raw, now)

	p.snap.Reading = &reading
	p.snap.LastSuccessAt = now
	p.snap.ConsecutiveFailures = 0
	p.snap.State = status.Connected
	p.store.Update(p.snap)
	p.hadSuccess = true
}

// fail records a failed read cycle. The previous reading is retained;
// session-breaking failures force a close so the next cycle reconnects.
func (p *Poller) fail(err error) {
	kind := Classify(err)
	p.snap.ConsecutiveFailures++

	drop := true
	if kind == KindTimeout {
		drop = p.cfg.ReconnectOnTimeout
	}
	if drop {
		_ = p.client.Close()
		p.snap.State = status.Disconnected
	}

	p.store.Update(p.snap)
	p.logFailure("poll cycle failed", err, kind, drop)
}

// logFailure keeps the console quiet until the gateway has answered
// once; early noise during bring-up is expected.
func (p *Poller) logFailure(msg string, err error, kind FailureKind, dropped bool) {
	fields := []zap.Field{
		zap.Stringer("kind", kind),
		zap.Bool("session_dropped", dropped),
		zap.Uint32("consecutive_failures", p.snap.ConsecutiveFailures),
		zap.Error(err),
	}
	if p.hadSuccess {
		p.log.Warn(msg, fields...)
	} else {
		p.log.Debug(msg, fields...)
	}
}
