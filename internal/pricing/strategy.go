// Package pricing computes trip prices from composable strategy trees.
//
// A strategy is a pure function from a trip snapshot to a Money amount:
// no I/O, no hidden state, identical results on repeated evaluation.
// Trees compose to arbitrary depth; Hybrid sums any number of children and
// Surge wraps any node, including another Surge.
package pricing

import (
	"time"

	"fleetshare/internal/domain"
)

// Kind tags a strategy node.
type Kind string

const (
	KindTime     Kind = "TIME"
	KindDistance Kind = "DISTANCE"
	KindHybrid   Kind = "HYBRID"
	KindSurge    Kind = "SURGE"
)

// Strategy is one node of a pricing tree. Which fields are meaningful
// depends on Kind; use the constructors rather than building nodes by hand.
type Strategy struct {
	Kind Kind

	// Rate is the per-minute (TIME) or per-kilometer (DISTANCE) unit price.
	Rate domain.Money

	// Children are summed by a HYBRID node.
	Children []*Strategy

	// Wrapped and Multiplier belong to a SURGE node.
	Wrapped    *Strategy
	Multiplier float64
}

// TimeBased prices a trip by whole elapsed minutes at the given rate.
func TimeBased(ratePerMinute domain.Money) *Strategy {
	return &Strategy{Kind: KindTime, Rate: ratePerMinute}
}

// DistanceBased prices a trip by recorded kilometers at the given rate.
func DistanceBased(ratePerKm domain.Money) *Strategy {
	return &Strategy{Kind: KindDistance, Rate: ratePerKm}
}

// Hybrid sums the results of all child strategies. Children must agree on
// currency; evaluation fails with domain.ErrCurrencyMismatch otherwise.
func Hybrid(children ...*Strategy) *Strategy {
	return &Strategy{Kind: KindHybrid, Children: children}
}

// Surge multiplies the wrapped strategy's result by a fixed factor. The
// factor is supplied by configuration, not derived from demand; values
// below 1.0 are legal and act as a discount.
func Surge(wrapped *Strategy, multiplier float64) *Strategy {
	return &Strategy{Kind: KindSurge, Wrapped: wrapped, Multiplier: multiplier}
}

// Snapshot is the read-only view of a trip that pricing operates on.
// A zero timestamp means the value is not set.
type Snapshot struct {
	StartedAt time.Time
	EndedAt   time.Time
	Distance  domain.Distance
}

// Evaluate walks the strategy tree against a trip snapshot.
//
// Missing trip data never fails a strategy: a time node without both
// timestamps and a distance node without a recorded distance both yield
// zero in their configured rate currency. The only error is a currency
// mismatch between composed children.
func Evaluate(s *Strategy, snap Snapshot) (domain.Money, error) {
	switch s.Kind {
	case KindTime:
		if snap.StartedAt.IsZero() || snap.EndedAt.IsZero() {
			return domain.ZeroMoney(s.Rate.Currency), nil
		}
		// Whole minutes, truncated.
		minutes := int64(snap.EndedAt.Sub(snap.StartedAt) / time.Minute)
		return s.Rate.Multiply(float64(minutes)), nil

	case KindDistance:
		if snap.Distance.IsZero() {
			return domain.ZeroMoney(s.Rate.Currency), nil
		}
		return s.Rate.Multiply(snap.Distance.Km), nil

	case KindHybrid:
		total := domain.Money{}
		for i, child := range s.Children {
			price, err := Evaluate(child, snap)
			if err != nil {
				return domain.Money{}, err
			}
			if i == 0 {
				total = price
				continue
			}
			total, err = total.Add(price)
			if err != nil {
				return domain.Money{}, err
			}
		}
		if len(s.Children) == 0 {
			return domain.ZeroMoney(domain.DefaultCurrency), nil
		}
		return total, nil

	case KindSurge:
		price, err := Evaluate(s.Wrapped, snap)
		if err != nil {
			return domain.Money{}, err
		}
		return price.Multiply(s.Multiplier), nil
	}

	return domain.ZeroMoney(domain.DefaultCurrency), nil
}
