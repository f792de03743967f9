package pricing

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fleetshare/internal/domain"
)

var tripStart = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func usd(v float64) domain.Money {
	return domain.NewMoney(decimal.NewFromFloat(v), "USD")
}

func tenMinuteTrip() Snapshot {
	return Snapshot{
		StartedAt: tripStart,
		EndedAt:   tripStart.Add(10 * time.Minute),
	}
}

func TestTimeBased_TenMinutes(t *testing.T) {
	t.Parallel()

	price, err := Evaluate(TimeBased(usd(0.5)), tenMinuteTrip())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := usd(5); !price.Equal(want) {
		t.Errorf("expected %s, got %s", want, price)
	}
}

func TestTimeBased_TruncatesPartialMinutes(t *testing.T) {
	t.Parallel()

	snap := Snapshot{
		StartedAt: tripStart,
		EndedAt:   tripStart.Add(10*time.Minute + 59*time.Second),
	}

	price, err := Evaluate(TimeBased(usd(0.5)), snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 10m59s bills as 10 whole minutes.
	if want := usd(5); !price.Equal(want) {
		t.Errorf("expected %s, got %s", want, price)
	}
}

func TestTimeBased_MissingTimestampsYieldZero(t *testing.T) {
	t.Parallel()

	cases := map[string]Snapshot{
		"no timestamps": {},
		"no end":        {StartedAt: tripStart},
	}

	for name, snap := range cases {
		price, err := Evaluate(TimeBased(usd(0.5)), snap)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if !price.IsZero() || price.Currency != "USD" {
			t.Errorf("%s: expected zero USD, got %s", name, price)
		}
	}
}

func TestDistanceBased_TenKilometers(t *testing.T) {
	t.Parallel()

	distance, _ := domain.Kilometers(10)
	snap := Snapshot{Distance: distance}

	price, err := Evaluate(DistanceBased(usd(0.5)), snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := usd(5); !price.Equal(want) {
		t.Errorf("expected %s, got %s", want, price)
	}
}

func TestDistanceBased_NoDistanceYieldsZero(t *testing.T) {
	t.Parallel()

	price, err := Evaluate(DistanceBased(usd(0.5)), tenMinuteTrip())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !price.IsZero() {
		t.Errorf("expected zero, got %s", price)
	}
}

func TestSurge_TenMinutesAtOneAndAHalf(t *testing.T) {
	t.Parallel()

	price, err := Evaluate(Surge(TimeBased(usd(0.5)), 1.5), tenMinuteTrip())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := usd(7.5); !price.Equal(want) {
		t.Errorf("expected %s, got %s", want, price)
	}
}

func TestSurge_IdentityMultiplier(t *testing.T) {
	t.Parallel()

	wrapped := TimeBased(usd(0.5))
	snap := tenMinuteTrip()

	direct, err := Evaluate(wrapped, snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	surged, err := Evaluate(Surge(wrapped, 1.0), snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !surged.Equal(direct) {
		t.Errorf("Surge(s, 1.0) = %s, want %s", surged, direct)
	}
}

func TestSurge_DiscountMultiplierIsLegal(t *testing.T) {
	t.Parallel()

	price, err := Evaluate(Surge(TimeBased(usd(0.5)), 0.5), tenMinuteTrip())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := usd(2.5); !price.Equal(want) {
		t.Errorf("expected %s, got %s", want, price)
	}
}

func TestHybrid_SumsChildren(t *testing.T) {
	t.Parallel()

	timeNode := TimeBased(usd(0.5))
	distNode := DistanceBased(usd(0.2))

	distance, _ := domain.Kilometers(10)
	snap := Snapshot{
		StartedAt: tripStart,
		EndedAt:   tripStart.Add(10 * time.Minute),
		Distance:  distance,
	}

	a, _ := Evaluate(timeNode, snap)
	b, _ := Evaluate(distNode, snap)
	want, err := a.Add(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := Evaluate(Hybrid(timeNode, distNode), snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !got.Equal(want) {
		t.Errorf("Hybrid = %s, want %s", got, want)
	}
	if w := usd(7); !got.Equal(w) {
		t.Errorf("expected %s, got %s", w, got)
	}
}

func TestHybrid_NAry(t *testing.T) {
	t.Parallel()

	// Three children, arbitrary breadth.
	node := Hybrid(
		TimeBased(usd(0.5)),
		TimeBased(usd(0.25)),
		DistanceBased(usd(1)),
	)

	distance, _ := domain.Kilometers(4)
	snap := Snapshot{
		StartedAt: tripStart,
		EndedAt:   tripStart.Add(10 * time.Minute),
		Distance:  distance,
	}

	got, err := Evaluate(node, snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 5 + 2.5 + 4
	if want := usd(11.5); !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestHybrid_CurrencyMismatchFails(t *testing.T) {
	t.Parallel()

	node := Hybrid(
		TimeBased(usd(0.5)),
		TimeBased(domain.NewMoney(decimal.NewFromFloat(0.5), "EUR")),
	)

	if _, err := Evaluate(node, tenMinuteTrip()); !errors.Is(err, domain.ErrCurrencyMismatch) {
		t.Errorf("expected ErrCurrencyMismatch, got %v", err)
	}
}

func TestNestedComposition(t *testing.T) {
	t.Parallel()

	// Surge around a hybrid that itself contains a surged node.
	distance, _ := domain.Kilometers(10)
	snap := Snapshot{
		StartedAt: tripStart,
		EndedAt:   tripStart.Add(10 * time.Minute),
		Distance:  distance,
	}

	node := Surge(
		Hybrid(
			Surge(TimeBased(usd(0.5)), 2), // 10
			DistanceBased(usd(0.2)),       // 2
		),
		1.5,
	)

	got, err := Evaluate(node, snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := usd(18); !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestEvaluate_IsDeterministic(t *testing.T) {
	t.Parallel()

	node := Surge(Hybrid(TimeBased(usd(0.5)), DistanceBased(usd(0.2))), 1.25)
	snap := tenMinuteTrip()

	first, err := Evaluate(node, snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 5; i++ {
		again, err := Evaluate(node, snap)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !again.Equal(first) {
			t.Fatalf("evaluation %d = %s, want %s", i, again, first)
		}
	}
}
