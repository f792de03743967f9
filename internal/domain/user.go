package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMembershipTier is returned when a tier cannot be parsed from
// external input.
var ErrUnknownMembershipTier = errors.New("unknown membership tier")

// MembershipTier classifies users for discount purposes.
type MembershipTier string

const (
	TierStandard MembershipTier = "STANDARD"
	TierPremium  MembershipTier = "PREMIUM"
	TierVIP      MembershipTier = "VIP"
)

// DiscountMultiplier returns the pricing multiplier attached to the tier.
// No pricing strategy currently consumes it; it is carried as user data.
func (t MembershipTier) DiscountMultiplier() float64 {
	switch t {
	case TierPremium:
		return 0.8
	case TierVIP:
		return 0.0
	default:
		return 1.0
	}
}

// ParseMembershipTier validates a tier supplied at the boundary.
func ParseMembershipTier(s string) (MembershipTier, error) {
	switch MembershipTier(strings.ToUpper(strings.TrimSpace(s))) {
	case TierStandard:
		return TierStandard, nil
	case TierPremium:
		return TierPremium, nil
	case TierVIP:
		return TierVIP, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMembershipTier, s)
	}
}

// User represents a registered member of the sharing service.
type User struct {
	ID   string
	Name string
	Tier MembershipTier
}
