package model

import "time"

// WheelSector is one static slice of the spin wheel. The sector set is
// fixed at build time; slices are equal-width and sum to 360 degrees.
type WheelSector struct {
	ID        int        `json:"id"`
	Kind      SectorKind `json:"kind"`
	Magnitude int        `json:"magnitude"`
	Label     string     `json:"label"`
}

// SpinOutcome is the transient result of one spin, mirrored from the
// chosen sector. It is never persisted on its own.
type SpinOutcome struct {
	Kind      SectorKind `json:"kind"`
	Magnitude int        `json:"magnitude"`
	Label     string     `json:"label"`
}

// SpinPhase is the wheel engine's state machine phase.
type SpinPhase string

const (
	PhaseIdle     SpinPhase = "idle"
	PhaseSpinning SpinPhase = "spinning"
	PhaseSettled  SpinPhase = "settled"
)

// SpinState is the wheel engine's observable state. Rotation and
// DurationMS describe the spin-to-target transition for a client to
// animate; they carry no probability information.
type SpinState struct {
	Phase      SpinPhase    `json:"phase"`
	Outcome    *SpinOutcome `json:"outcome,omitempty"`
	Rotation   float64      `json:"rotation"`
	DurationMS int64        `json:"duration_ms"`
	StartedAt  time.Time    `json:"started_at,omitzero"`
	CanSpin    bool         `json:"can_spin"`
}

// WheelResponse is the API response DTO for GET /api/wheel.
type WheelResponse struct {
	Sectors []WheelSector `json:"sectors"`
	State   SpinState     `json:"state"`
}
