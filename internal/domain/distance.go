package domain

import (
	"errors"
	"fmt"
)

// ErrNegativeDistance is returned when a distance below zero is supplied.
var ErrNegativeDistance = errors.New("distance cannot be negative")

// Distance is an immutable distance in kilometers.
type Distance struct {
	Km float64
}

// Kilometers creates a Distance, rejecting negative values.
func Kilometers(km float64) (Distance, error) {
	if km < 0 {
		return Distance{}, fmt.Errorf("%w: %v", ErrNegativeDistance, km)
	}
	return Distance{Km: km}, nil
}

// Add returns the sum of two distances.
func (d Distance) Add(other Distance) Distance {
	return Distance{Km: d.Km + other.Km}
}

// IsZero reports whether no distance has been recorded.
func (d Distance) IsZero() bool {
	return d.Km == 0
}

func (d Distance) String() string {
	return fmt.Sprintf("%vkm", d.Km)
}
