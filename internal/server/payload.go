// internal/server/payload.go
package server

import (
	"time"

	"dewdash/internal/status"
)

// Reading endpoint status values.
const (
	statusPending = "pending"
	statusOnline  = "online"
	statusOffline = "offline"
)

// DataPayload is the reading endpoint body. Field names are the wire
// contract consumed by the dashboard.
type DataPayload struct {
	Status           string   `json:"status"`
	Online           bool     `json:"online"`
	Stale            bool     `json:"stale"`
	HumidityPct      float64  `json:"humidity_pct"`
	TemperatureC     float64  `json:"temperature_c"`
	TemperatureF     float64  `json:"temperature_f"`
	DewPointC        float64  `json:"dewpoint_c"`
	DewPointF        float64  `json:"dewpoint_f"`
	DewPointSpreadC  float64  `json:"dewpoint_spread_c"`
	CondensationRisk bool     `json:"condensation_risk"`
	RawRegisters     []uint16 `json:"raw_registers"`
	LastUpdate       string   `json:"last_update"`
}

// PendingPayload is returned before the first successful read. It
// deliberately carries no zero-valued reading fields.
type PendingPayload struct {
	Status string `json:"status"`
	Online bool   `json:"online"`
}

// HealthPayload is the liveness endpoint body.
type HealthPayload struct {
	Online              bool   `json:"online"`
	State               string `json:"state"`
	ConsecutiveFailures uint32 `json:"consecutive_failures"`
	LastUpdate          string `json:"last_update,omitempty"`
}

func renderData(snap status.Snapshot, now time.Time, period time.Duration, staleFactor int) DataPayload {
	r := snap.Reading

	st := statusOnline
	if !snap.Online() {
		st = statusOffline
	}

	return DataPayload{
		Status:           st,
		Online:           snap.Online(),
		Stale:            snap.Stale(now, period, staleFactor),
		HumidityPct:      r.HumidityPct,
		TemperatureC:     r.TemperatureC,
		TemperatureF:     r.TemperatureF,
		DewPointC:        r.DewPointC,
		DewPointF:        r.DewPointF,
		DewPointSpreadC:  r.DewPointSpreadC,
		CondensationRisk: r.CondensationRisk,
		RawRegisters:     r.Raw[:],
		LastUpdate:       snap.LastSuccessAt.Format(time.RFC3339Nano),
	}
}

func renderHealth(snap status.Snapshot) HealthPayload {
	h := HealthPayload{
		Online:              snap.Online(),
		State:               snap.State.String(),
		ConsecutiveFailures: snap.ConsecutiveFailures,
	}
	if !snap.LastSuccessAt.IsZero() {
		h.LastUpdate = snap.LastSuccessAt.Format(time.RFC3339Nano)
	}
	return h
}
