// internal/sensor/types.go
package sensor

import "time"

// RegisterCount is the number of gateway local registers in one sample.
const RegisterCount = 5

// Register order within a RawSample.
const (
	regHumidity = iota
	regTempC
	regTempF
	regDewC
	regDewF
)

// RawSample is one block of gateway registers read in a single
// transaction. Immutable once produced.
type RawSample [RegisterCount]uint16

// Reading is a decoded physical snapshot. All fields are produced
// together from exactly one RawSample; there is no partial state.
type Reading struct {
	HumidityPct  float64
	TemperatureC float64
	TemperatureF float64
	DewPointC    float64
	DewPointF    float64

	// DewPointSpreadC is TemperatureC minus DewPointC. Small spreads
	// mean condensation is close.
	DewPointSpreadC  float64
	CondensationRisk bool

	// Raw registers are retained for diagnostics.
	Raw RawSample
	At  time.Time
}
