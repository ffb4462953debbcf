// internal/status/state.go
package status

// ConnState is the acquisition loop's view of the gateway session.
// Owned exclusively by the poller; every other component only reads it.
type ConnState uint8

const (
	Disconnected ConnState = iota
	Connecting
	Connected
)

func (s ConnState) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	default:
		return "unknown"
	}
}
