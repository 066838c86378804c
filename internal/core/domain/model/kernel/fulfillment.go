package kernel

import (
	"fulfillment/internal/pkg/errs"
)

// FulfillmentType says how a confirmed order reaches the customer:
// picked up at the store or delivered to an address.
type FulfillmentType int

const (
	// FulfillmentTypeUnknown is the invalid zero value.
	FulfillmentTypeUnknown FulfillmentType = iota
	// FulfillmentTypePickup means the customer collects the order in person.
	FulfillmentTypePickup
	// FulfillmentTypeDelivery means the order is brought to a delivery address.
	FulfillmentTypeDelivery
)

// FulfillmentTypeFromString parses the wire form ("PICKUP", "DELIVERY").
func FulfillmentTypeFromString(s string) (FulfillmentType, error) {
	switch s {
	case "PICKUP":
		return FulfillmentTypePickup, nil
	case "DELIVERY":
		return FulfillmentTypeDelivery, nil
	default:
		return FulfillmentTypeUnknown, errs.NewValueIsInvalidError("fulfillment type: " + s)
	}
}

// Validate rejects the zero value.
func (t FulfillmentType) Validate() error {
	switch t {
	case FulfillmentTypePickup, FulfillmentTypeDelivery:
		return nil
	default:
		return errs.NewValueIsRequiredError("fulfillment type")
	}
}

// IsPickup reports whether the order is collected at the store.
func (t FulfillmentType) IsPickup() bool {
	return t == FulfillmentTypePickup
}

// IsDelivery reports whether the order is delivered to an address.
func (t FulfillmentType) IsDelivery() bool {
	return t == FulfillmentTypeDelivery
}

// String returns the wire form of the fulfillment type.
func (t FulfillmentType) String() string {
	switch t {
	case FulfillmentTypePickup:
		return "PICKUP"
	case FulfillmentTypeDelivery:
		return "DELIVERY"
	default:
		return "UNKNOWN"
	}
}
