package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateDriverLocationCommandIsNotConstructed = errors.New(
	"UpdateDriverLocationCommand must be created via NewUpdateDriverLocationCommand constructor",
)

// UpdateDriverLocationCommand represents a driver position ping for an
// in-flight delivery. Pings arriving after the order closed are accepted
// and dropped without effect.
type UpdateDriverLocationCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID
	position kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdateDriverLocationCommand creates a command carrying a driver ping.
func NewUpdateDriverLocationCommand(
	orderID, driverID kernel.UUID,
	position kernel.GeoPoint,
) (UpdateDriverLocationCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		driverID.Validate(),
		position.Validate(),
	); err != nil {
		return UpdateDriverLocationCommand{}, err
	}

	return UpdateDriverLocationCommand{
		orderID:  orderID,
		driverID: driverID,
		position: position,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverLocationCommandIsNotConstructed)
}

// OrderID returns the order the ping belongs to.
func (c UpdateDriverLocationCommand) OrderID() kernel.UUID { return c.orderID }

// DriverID returns the pinging driver.
func (c UpdateDriverLocationCommand) DriverID() kernel.UUID { return c.driverID }

// Position returns the driver's current coordinates.
func (c UpdateDriverLocationCommand) Position() kernel.GeoPoint { return c.position }
