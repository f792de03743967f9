package domain

import "time"

// TripState represents the lifecycle state of a trip.
//
// CREATED -> IN_PROGRESS -> {COMPLETED, CANCELED}; CREATED -> CANCELED is
// also legal. COMPLETED and CANCELED are terminal.
type TripState string

const (
	TripStateCreated    TripState = "CREATED"
	TripStateInProgress TripState = "IN_PROGRESS"
	TripStateCompleted  TripState = "COMPLETED"
	TripStateCanceled   TripState = "CANCELED"
)

// Terminal reports whether no further transitions are allowed.
func (s TripState) Terminal() bool {
	return s == TripStateCompleted || s == TripStateCanceled
}

// Trip is one rental session linking a user and a vehicle. It references
// the vehicle by ID; the fleet store owns the vehicle and all mutation goes
// through the coordinator.
//
// StartedAt is set exactly when the trip leaves CREATED; EndedAt exactly
// when it reaches a terminal state. Price is authoritative only once the
// state is COMPLETED.
type Trip struct {
	ID        string
	UserID    string
	VehicleID string
	State     TripState
	StartedAt time.Time
	EndedAt   time.Time
	Distance  Distance
	Price     Money
}

// Duration returns the elapsed trip time, or zero while either timestamp
// is unset.
func (t *Trip) Duration() time.Duration {
	if t.StartedAt.IsZero() || t.EndedAt.IsZero() {
		return 0
	}
	return t.EndedAt.Sub(t.StartedAt)
}
