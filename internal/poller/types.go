// internal/poller/types.go
package poller

import (
	"errors"
	"net"
	"syscall"

	"github.com/goburrow/modbus"

	pmodbus "dewdash/internal/poller/modbus"
)

// FailureKind classifies a failed cycle for reconnect policy.
type FailureKind uint8

const (
	// KindConnect: session establishment failed. Retried next cycle.
	KindConnect FailureKind = iota

	// KindTimeout: the bounded read expired. Whether this drops the
	// session is configurable.
	KindTimeout

	// KindProtocol: malformed or unexpected response. The session is
	// considered broken.
	KindProtocol

	// KindNotConnected: read attempted without a session. Programming
	// or ordering error; forces a reconnect.
	KindNotConnected
)

func (k FailureKind) String() string {
	switch k {
	case KindConnect:
		return "connect"
	case KindTimeout:
		return "timeout"
	case KindProtocol:
		return "protocol"
	case KindNotConnected:
		return "not_connected"
	default:
		return "unknown"
	}
}

// Classify maps an adapter error onto the reconnect taxonomy without
// assuming concrete transport types. Anything unrecognized is treated
// as a broken session.
func Classify(err error) FailureKind {
	if errors.Is(err, pmodbus.ErrNotConnected) {
		return KindNotConnected
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return KindTimeout
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return KindConnect
	}

	var me *modbus.ModbusError
	if errors.As(err, &me) {
		return KindProtocol
	}
	if errors.Is(err, pmodbus.ErrShortResponse) {
		return KindProtocol
	}

	return KindProtocol
}
