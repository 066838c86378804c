// Package delivery defines the DeliveryQuote value object, the priced and
// timed envelope the estimator produces for a candidate or in-flight order.
package delivery

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrQuoteIsNotConstructed is returned when validating a Quote that was
// not created via NewQuote or PickupQuote.
var ErrQuoteIsNotConstructed = errs.NewValueIsRequiredError(
	"delivery quote must be created via NewQuote or PickupQuote")

// Quote is an immutable cost/time estimate for bringing an order to its
// destination. Pickup quotes carry zero distance, duration, and fee and
// are never derived from routing.
type Quote struct {
	distanceKm  float64
	durationMin int
	fee         kernel.Money
	pickup      bool

	guard guard.ConstructorGuard
}

// NewQuote creates a delivery quote from routed distance and duration and
// a policy-computed fee.
func NewQuote(distanceKm float64, durationMin int, fee kernel.Money) (Quote, error) {
	if err := fee.Validate(); err != nil {
		return Quote{}, err
	}
	if distanceKm < 0 {
		return Quote{}, errs.NewValueIsInvalidError("quote distance must not be negative")
	}
	if durationMin < 0 {
		return Quote{}, errs.NewValueIsInvalidError("quote duration must not be negative")
	}

	return Quote{
		distanceKm:  distanceKm,
		durationMin: durationMin,
		fee:         fee,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// PickupQuote returns the fixed zero quote for pickup orders.
func PickupQuote() Quote {
	return Quote{
		fee:    kernel.ZeroMoney(),
		pickup: true,

		guard: guard.NewConstructorGuard(),
	}
}

// Validate checks that the quote was created via a constructor.
func (q Quote) Validate() error {
	return q.guard.Validate(ErrQuoteIsNotConstructed)
}

// DistanceKm returns the routed distance in kilometers.
func (q Quote) DistanceKm() float64 {
	return q.distanceKm
}

// DurationMin returns the estimated travel time in whole minutes.
func (q Quote) DurationMin() int {
	return q.durationMin
}

// Fee returns the computed delivery fee.
func (q Quote) Fee() kernel.Money {
	return q.fee
}

// IsPickup reports whether this is the degenerate pickup quote.
func (q Quote) IsPickup() bool {
	return q.pickup
}
