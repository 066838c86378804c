package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to turn a session's cart into a
// confirmed order. The delivery address is required for delivery orders
// and must be absent for pickup orders.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID       string
	customerID      kernel.UUID
	fulfillment     kernel.FulfillmentType
	deliveryAddress *kernel.GeoPoint
	customerNotes   string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order from a cart.
func NewPlaceOrderCommand(
	sessionID string,
	customerID kernel.UUID,
	fulfillment kernel.FulfillmentType,
	deliveryAddress *kernel.GeoPoint,
	customerNotes string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		deliveryAddress: deliveryAddress,
		customerNotes:   customerNotes,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setCustomerID(customerID),
		cmd.setFulfillment(fulfillment),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	if fulfillment.IsDelivery() {
		if deliveryAddress == nil {
			return PlaceOrderCommand{}, errs.NewValueIsRequiredError("delivery address")
		}
		if err := deliveryAddress.Validate(); err != nil {
			return PlaceOrderCommand{}, err
		}
	} else if deliveryAddress != nil {
		return PlaceOrderCommand{}, errs.NewValueIsInvalidError("pickup orders must not carry a delivery address")
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// SessionID returns the cart session key.
func (c PlaceOrderCommand) SessionID() string { return c.sessionID }

// CustomerID returns the ordering customer.
func (c PlaceOrderCommand) CustomerID() kernel.UUID { return c.customerID }

// Fulfillment returns how the order reaches the customer.
func (c PlaceOrderCommand) Fulfillment() kernel.FulfillmentType { return c.fulfillment }

// DeliveryAddress returns the destination, nil for pickup.
func (c PlaceOrderCommand) DeliveryAddress() *kernel.GeoPoint { return c.deliveryAddress }

// CustomerNotes returns the free-text notes for the store.
func (c PlaceOrderCommand) CustomerNotes() string { return c.customerNotes }

func (c *PlaceOrderCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setFulfillment(fulfillment kernel.FulfillmentType) error {
	if err := fulfillment.Validate(); err != nil {
		return err
	}

	c.fulfillment = fulfillment
	return nil
}
