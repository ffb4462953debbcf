// internal/poller/builder.go
package poller

import (
	"go.uber.org/zap"

	"dewdash/internal/cache"
	cfg "dewdash/internal/config"
	pmodbus "dewdash/internal/poller/modbus"
)

// Build constructs a Poller wired to a Modbus TCP gateway session.
// The client does not dial here; first contact happens on the first
// cycle, so the HTTP server can come up before the gateway is
// reachable.
func Build(c *cfg.Config, store *cache.Store, log *zap.Logger) (*Poller, error) {
	client, err := pmodbus.New(pmodbus.Config{
		Endpoint: c.Gateway.Endpoint(),
		UnitID:   c.Gateway.UnitID,
		Timeout:  c.Gateway.Timeout(),
	})
	if err != nil {
		return nil, err
	}

	return New(
		Config{
			BaseAddress:        c.Gateway.BaseAddress,
			Quantity:           c.Gateway.RegisterCount,
			Interval:           c.Poll.Interval(),
			ReconnectOnTimeout: c.Poll.ReconnectOnTimeout,
		},
		client,
		store,
		log.Named("poller"),
	)
}
