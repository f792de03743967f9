package domain

// VehicleState represents the availability state of a vehicle.
type VehicleState string

const (
	VehicleStateAvailable   VehicleState = "AVAILABLE"
	VehicleStateInUse       VehicleState = "IN_USE"
	VehicleStateMaintenance VehicleState = "MAINTENANCE"
	VehicleStateReserved    VehicleState = "RESERVED"
)

// VehicleKind distinguishes the rentable asset types in the fleet.
type VehicleKind string

const (
	VehicleKindCar     VehicleKind = "CAR"
	VehicleKindEBike   VehicleKind = "EBIKE"
	VehicleKindScooter VehicleKind = "SCOOTER"
)

// Vehicle represents a rentable asset. The kind-specific attributes are
// plain fields on one struct; the kinds carry no behavioral difference.
// Only the trip coordinator writes State.
type Vehicle struct {
	ID    string
	Model string
	Kind  VehicleKind

	// Kind-specific attributes; exactly one is meaningful per kind.
	FuelType     string // cars
	BatteryLevel string // e-bikes
	WeightLimit  string // scooters

	State         VehicleState
	RatePerMinute Money
}

// NewVehicle creates an AVAILABLE vehicle.
func NewVehicle(id, model string, kind VehicleKind, ratePerMinute Money) *Vehicle {
	return &Vehicle{
		ID:            id,
		Model:         model,
		Kind:          kind,
		State:         VehicleStateAvailable,
		RatePerMinute: ratePerMinute,
	}
}
