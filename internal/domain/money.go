package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no currency is specified.
const DefaultCurrency = "USD"

// ErrCurrencyMismatch is returned when arithmetic is attempted between
// Money values of different currencies. No conversion exists.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// Money is an immutable monetary amount tagged with a currency.
// Amounts use exact decimal arithmetic; completed trip prices are summed
// across the whole history for reporting, so binary float drift is not
// acceptable here.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

// NewMoney creates a Money value in the given currency.
func NewMoney(amount decimal.Decimal, currency string) Money {
	return Money{Amount: amount, Currency: currency}
}

// MoneyFromFloat creates a Money value in the default currency.
func MoneyFromFloat(value float64) Money {
	return Money{Amount: decimal.NewFromFloat(value), Currency: DefaultCurrency}
}

// ZeroMoney returns the neutral element for summing in the given currency.
func ZeroMoney(currency string) Money {
	return Money{Amount: decimal.Zero, Currency: currency}
}

// Add returns the sum of two Money values of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if err := m.checkCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

// Subtract returns the difference of two Money values of the same currency.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.checkCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{Amount: m.Amount.Sub(other.Amount), Currency: m.Currency}, nil
}

// Multiply scales the amount by an arbitrary finite factor. Factors below
// 1.0 are legal and reduce the amount.
func (m Money) Multiply(factor float64) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromFloat(factor)), Currency: m.Currency}
}

// Equal reports whether two Money values have the same currency and amount.
func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount.String(), m.Currency)
}

func (m Money) checkCurrency(other Money) error {
	if m.Currency != other.Currency {
		return fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}
	return nil
}
