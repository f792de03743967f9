package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoney_AddSubtractRoundTrip(t *testing.T) {
	t.Parallel()

	a := NewMoney(decimal.NewFromFloat(12.35), "USD")
	b := NewMoney(decimal.NewFromFloat(7.65), "USD")

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	back, err := sum.Subtract(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !back.Equal(a) {
		t.Errorf("expected %s after round trip, got %s", a, back)
	}
}

func TestMoney_AddCurrencyMismatch(t *testing.T) {
	t.Parallel()

	usd := MoneyFromFloat(10)
	eur := NewMoney(decimal.NewFromInt(10), "EUR")

	if _, err := usd.Add(eur); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("expected ErrCurrencyMismatch, got %v", err)
	}

	if _, err := usd.Subtract(eur); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("expected ErrCurrencyMismatch, got %v", err)
	}
}

func TestMoney_MultiplyExact(t *testing.T) {
	t.Parallel()

	rate := MoneyFromFloat(0.5)

	got := rate.Multiply(10)
	want := MoneyFromFloat(5)
	if !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestMoney_MultiplyBelowOneIsLegal(t *testing.T) {
	t.Parallel()

	price := MoneyFromFloat(10)

	got := price.Multiply(0.8)
	want := MoneyFromFloat(8)
	if !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestMoney_RepeatedAdditionStaysExact(t *testing.T) {
	t.Parallel()

	// 0.1 summed 100 times must be exactly 10; drift here would corrupt
	// revenue reports.
	total := ZeroMoney("USD")
	cent := MoneyFromFloat(0.1)

	var err error
	for i := 0; i < 100; i++ {
		total, err = total.Add(cent)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if want := MoneyFromFloat(10); !total.Equal(want) {
		t.Errorf("expected %s, got %s", want, total)
	}
}

func TestMoney_ZeroIsFoldIdentity(t *testing.T) {
	t.Parallel()

	a := MoneyFromFloat(3.33)

	sum, err := ZeroMoney("USD").Add(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !sum.Equal(a) {
		t.Errorf("expected %s, got %s", a, sum)
	}
}

func TestDistance_RejectsNegative(t *testing.T) {
	t.Parallel()

	if _, err := Kilometers(-1); !errors.Is(err, ErrNegativeDistance) {
		t.Errorf("expected ErrNegativeDistance, got %v", err)
	}
}

func TestDistance_Add(t *testing.T) {
	t.Parallel()

	a, _ := Kilometers(1.5)
	b, _ := Kilometers(2.5)

	if got := a.Add(b); got.Km != 4 {
		t.Errorf("expected 4km, got %v", got.Km)
	}
}
