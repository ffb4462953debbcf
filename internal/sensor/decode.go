// internal/sensor/decode.go
package sensor

import "time"

// S24 register scaling. These divisors are sensor protocol and MUST NOT
// be configurable.
const (
	humidityDivisor    = 100.0
	temperatureDivisor = 20.0
	dewPointDivisor    = 100.0
)

// condensationSpreadC is the dew point spread at or below which the
// reading is flagged as a condensation risk.
const condensationSpreadC = 2.0

// Decode converts one raw register block into physical quantities.
// Pure and total: every register value is valid input.
// No IO. No side effects.
func Decode(raw RawSample, at time.Time) Reading {
	r := Reading{
		HumidityPct:  float64(raw[regHumidity]) / humidityDivisor,
		TemperatureC: float64(raw[regTempC]) / temperatureDivisor,
		TemperatureF: float64(raw[regTempF]) / temperatureDivisor,
		DewPointC:    float64(raw[regDewC]) / dewPointDivisor,
		DewPointF:    float64(raw[regDewF]) / dewPointDivisor,
		Raw:          raw,
		At:           at,
	}
	r.DewPointSpreadC = r.TemperatureC - r.DewPointC
	r.CondensationRisk = r.DewPointSpreadC <= condensationSpreadC
	return r
}
