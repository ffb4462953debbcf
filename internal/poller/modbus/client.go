// internal/poller/modbus/client.go
package modbus

import (
	"errors"
	"fmt"
	"time"

	"github.com/goburrow/modbus"
)

// Sentinel errors surfaced to the poller for classification.
var (
	// ErrNotConnected means a read was attempted before Connect.
	ErrNotConnected = errors.New("modbus client: not connected")

	// ErrShortResponse means the gateway returned fewer register bytes
	// than requested. Treated upstream as a broken session.
	ErrShortResponse = errors.New("modbus client: short register payload")
)

// Client owns one Modbus TCP session to the gateway. It performs no
// retries and no reconnects; that policy lives in the poller.
type Client struct {
	handler   *modbus.TCPClientHandler
	client    modbus.Client
	connected bool
}

// Config is minimal transport config.
type Config struct {
	Endpoint string
	UnitID   byte
	Timeout  time.Duration
}

// New prepares a client. No network IO happens until Connect.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("modbus client: endpoint required")
	}
	if cfg.Timeout <= 0 {
		return nil, errors.New("modbus client: timeout must be > 0")
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout
	h.SlaveId = cfg.UnitID

	return &Client{
		handler: h,
		client:  modbus.NewClient(h),
	}, nil
}

// Connect dials the gateway. ONE attempt per call.
func (c *Client) Connect() error {
	if err := c.handler.Connect(); err != nil {
		return fmt.Errorf("modbus client: connect %s: %w", c.handler.Address, err)
	}
	c.connected = true
	return nil
}

// ReadBlock performs a single holding-register transaction and unpacks
// the big-endian payload. Bounded by the configured timeout.
func (c *Client) ReadBlock(addr, qty uint16) ([]uint16, error) {
	if !c.connected {
		return nil, ErrNotConnected
	}

	payload, err := c.client.ReadHoldingRegisters(addr, qty)
	if err != nil {
		return nil, err
	}
	if len(payload) != int(qty)*2 {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrShortResponse, len(payload), int(qty)*2)
	}

	regs := make([]uint16, qty)
	for i := range regs {
		regs[i] = uint16(payload[2*i])<<8 | uint16(payload[2*i+1])
	}
	return regs, nil
}

// Close releases the session. Safe to call repeatedly.
func (c *Client) Close() error {
	c.connected = false
	return c.handler.Close()
}
