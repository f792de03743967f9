package domain

import (
	"errors"
	"testing"
)

func TestParseMembershipTier(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  MembershipTier
	}{
		{"STANDARD", TierStandard},
		{"premium", TierPremium},
		{" vip ", TierVIP},
	}

	for _, tc := range cases {
		got, err := ParseMembershipTier(tc.input)
		if err != nil {
			t.Errorf("ParseMembershipTier(%q): unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMembershipTier(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestParseMembershipTier_Unknown(t *testing.T) {
	t.Parallel()

	if _, err := ParseMembershipTier("GOLD"); !errors.Is(err, ErrUnknownMembershipTier) {
		t.Errorf("expected ErrUnknownMembershipTier, got %v", err)
	}
}

func TestMembershipTier_DiscountMultiplier(t *testing.T) {
	t.Parallel()

	if got := TierStandard.DiscountMultiplier(); got != 1.0 {
		t.Errorf("STANDARD multiplier = %v, want 1.0", got)
	}
	if got := TierPremium.DiscountMultiplier(); got != 0.8 {
		t.Errorf("PREMIUM multiplier = %v, want 0.8", got)
	}
	if got := TierVIP.DiscountMultiplier(); got != 0.0 {
		t.Errorf("VIP multiplier = %v, want 0.0", got)
	}
}
