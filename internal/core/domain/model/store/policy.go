package store

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPolicyIsNotConstructed is returned when validating a DeliveryPolicy
// that was not created via one of the constructors.
var ErrPolicyIsNotConstructed = errs.NewValueIsRequiredError(
	"delivery policy must be created via NewFlatFeePolicy or NewDistanceFeePolicy")

// DeliveryPolicy is the store-configured pricing and eligibility rule set
// for delivery orders. It is either flat-fee or distance-based, decided at
// construction, and may carry a free-delivery threshold.
//
// The policy computes fees but never talks to routing. Distance comes in
// from the caller.
type DeliveryPolicy struct { //nolint:recvcheck //using for validation
	minOrder kernel.Money
	flatFee  *kernel.Money
	baseFee  kernel.Money
	perKmFee kernel.Money
	freeOver *kernel.Money
	accepted []kernel.FulfillmentType

	guard guard.ConstructorGuard
}

// NewFlatFeePolicy creates a policy charging the same fee for every
// delivery regardless of distance.
func NewFlatFeePolicy(
	minOrder, flatFee kernel.Money,
	freeOver *kernel.Money,
	accepted []kernel.FulfillmentType,
) (DeliveryPolicy, error) {
	if err := validatePolicyInputs(minOrder, freeOver, accepted, flatFee.Validate()); err != nil {
		return DeliveryPolicy{}, err
	}

	return DeliveryPolicy{
		minOrder: minOrder,
		flatFee:  &flatFee,
		baseFee:  kernel.ZeroMoney(),
		perKmFee: kernel.ZeroMoney(),
		freeOver: freeOver,
		accepted: accepted,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// NewDistanceFeePolicy creates a policy charging baseFee plus perKmFee
// for every routed kilometer.
func NewDistanceFeePolicy(
	minOrder, baseFee, perKmFee kernel.Money,
	freeOver *kernel.Money,
	accepted []kernel.FulfillmentType,
) (DeliveryPolicy, error) {
	if err := validatePolicyInputs(minOrder, freeOver, accepted,
		errors.Join(baseFee.Validate(), perKmFee.Validate())); err != nil {
		return DeliveryPolicy{}, err
	}

	return DeliveryPolicy{
		minOrder: minOrder,
		baseFee:  baseFee,
		perKmFee: perKmFee,
		freeOver: freeOver,
		accepted: accepted,

		guard: guard.NewConstructorGuard(),
	}, nil
}

func validatePolicyInputs(
	minOrder kernel.Money,
	freeOver *kernel.Money,
	accepted []kernel.FulfillmentType,
	feeErr error,
) error {
	errsJoined := errors.Join(minOrder.Validate(), feeErr)
	if freeOver != nil {
		errsJoined = errors.Join(errsJoined, freeOver.Validate())
	}
	if errsJoined != nil {
		return errsJoined
	}
	if len(accepted) == 0 {
		return errs.NewValueIsRequiredError("accepted fulfillment types")
	}
	for _, t := range accepted {
		if err := t.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Validate checks that the policy was created via a constructor.
func (p DeliveryPolicy) Validate() error {
	return p.guard.Validate(ErrPolicyIsNotConstructed)
}

// MinimumOrder returns the minimum subtotal the store accepts for delivery.
func (p DeliveryPolicy) MinimumOrder() kernel.Money {
	return p.minOrder
}

// IsFlatFee reports whether this policy charges a flat delivery fee.
func (p DeliveryPolicy) IsFlatFee() bool {
	return p.flatFee != nil
}

// Accepts reports whether the store handles the given fulfillment type.
func (p DeliveryPolicy) Accepts(t kernel.FulfillmentType) bool {
	for _, accepted := range p.accepted {
		if accepted == t {
			return true
		}
	}
	return false
}

// AcceptedTypes returns a copy of the accepted fulfillment types.
func (p DeliveryPolicy) AcceptedTypes() []kernel.FulfillmentType {
	out := make([]kernel.FulfillmentType, len(p.accepted))
	copy(out, p.accepted)
	return out
}

// FlatFee returns the flat fee and true if the policy is flat-fee.
func (p DeliveryPolicy) FlatFee() (kernel.Money, bool) {
	if p.flatFee == nil {
		return kernel.Money{}, false
	}
	return *p.flatFee, true
}

// BaseFee returns the distance-independent part of a distance-based fee.
func (p DeliveryPolicy) BaseFee() kernel.Money {
	return p.baseFee
}

// PerKmFee returns the per-kilometer part of a distance-based fee.
func (p DeliveryPolicy) PerKmFee() kernel.Money {
	return p.perKmFee
}

// FreeOver returns the free-delivery threshold and true when configured.
func (p DeliveryPolicy) FreeOver() (kernel.Money, bool) {
	if p.freeOver == nil {
		return kernel.Money{}, false
	}
	return *p.freeOver, true
}

// FeeFor computes the delivery fee for a routed distance and order
// subtotal. A configured free-over threshold met by the subtotal wins
// over both fee schemes.
func (p DeliveryPolicy) FeeFor(distanceKm float64, subtotal kernel.Money) (kernel.Money, error) {
	if err := errors.Join(p.Validate(), subtotal.Validate()); err != nil {
		return kernel.Money{}, err
	}
	if distanceKm < 0 {
		return kernel.Money{}, errs.NewValueIsInvalidError("distance must not be negative")
	}

	if p.freeOver != nil && !subtotal.LessThan(*p.freeOver) {
		return kernel.ZeroMoney(), nil
	}
	if p.flatFee != nil {
		return *p.flatFee, nil
	}

	variable := p.perKmFee.Amount().Mul(decimal.NewFromFloat(distanceKm))
	return kernel.NewMoney(p.baseFee.Amount().Add(variable))
}
