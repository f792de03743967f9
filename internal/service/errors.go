package service

import "errors"

var (
	// ErrVehicleUnavailable is returned when a trip start targets a vehicle
	// that is not in state AVAILABLE.
	ErrVehicleUnavailable = errors.New("vehicle is not available")

	// ErrTripNotFound is returned when an operation references an unknown or
	// no-longer-active trip id.
	ErrTripNotFound = errors.New("trip not found")

	// ErrInvalidStateTransition is returned when an operation is illegal for
	// the trip's current state.
	ErrInvalidStateTransition = errors.New("invalid trip state transition")

	// ErrInvalidUserID is returned when a user id is empty.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrInvalidVehicleID is returned when a vehicle id is empty.
	ErrInvalidVehicleID = errors.New("invalid vehicle id")

	// ErrInvalidTripID is returned when a trip id is empty.
	ErrInvalidTripID = errors.New("invalid trip id")
)
