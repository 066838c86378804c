package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("order must be created via NewOrder or RestoreOrder")

// Order is the confirmed, persisted fulfillment unit and the aggregate
// root of the lifecycle state machine. It is created from a finalized
// cart snapshot plus a delivery quote and thereafter accepts only the
// transitions its status machine allows, authorized per actor.
//
// Invariants:
//   - line items are frozen at placement and never change
//   - subtotal, fee, and total are recomputed from frozen lines, never
//     taken from client input; total = subtotal + deliveryFee
//   - a delivery address is present iff the order is a delivery order
//   - each status timestamp is written exactly once
//   - terminal orders admit no mutation; driver pings on them are
//     dropped without error
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	storeID         kernel.UUID
	storeOwnerID    kernel.UUID
	fulfillment     kernel.FulfillmentType
	deliveryAddress *kernel.GeoPoint
	lines           []LineItem
	status          Status
	subtotal        kernel.Money
	deliveryFee     kernel.Money
	total           kernel.Money
	customerNotes   string
	rejectionReason string
	timestamps      Timestamps
	driverID        *kernel.UUID
	driverPosition  *kernel.GeoPoint
	liveEstimate    *delivery.Quote

	guard guard.ConstructorGuard
}

// NewOrder creates an order in PLACED status from frozen line items and a
// successful delivery quote (the zero quote for pickup orders).
//
// Validation rules:
//   - lines must be non-empty and individually valid
//   - deliveryAddress is required for delivery orders and forbidden for
//     pickup orders
//   - the quote kind must match the fulfillment type
//
// The PLACED timestamp is recorded at now.
func NewOrder(
	customerID, storeID, storeOwnerID kernel.UUID,
	fulfillment kernel.FulfillmentType,
	deliveryAddress *kernel.GeoPoint,
	lines []LineItem,
	quote delivery.Quote,
	customerNotes string,
	now time.Time,
) (*Order, error) {
	if err := errors.Join(
		customerID.Validate(),
		storeID.Validate(),
		storeOwnerID.Validate(),
		fulfillment.Validate(),
		quote.Validate(),
	); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("order lines")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
	}
	if err := validateAddress(fulfillment, deliveryAddress); err != nil {
		return nil, err
	}
	if quote.IsPickup() != fulfillment.IsPickup() {
		return nil, errs.NewValueIsInvalidError("quote kind does not match fulfillment type")
	}

	o := &Order{
		id:              kernel.NewUUID(),
		customerID:      customerID,
		storeID:         storeID,
		storeOwnerID:    storeOwnerID,
		fulfillment:     fulfillment,
		deliveryAddress: deliveryAddress,
		lines:           append([]LineItem(nil), lines...),
		status:          Placed,
		deliveryFee:     quote.Fee(),
		customerNotes:   customerNotes,
		timestamps:      NewTimestamps(),

		guard: guard.NewConstructorGuard(),
	}
	if err := o.recomputeTotals(); err != nil {
		return nil, err
	}
	if err := o.timestamps.record(Placed, now); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. Subtotal and total
// are recomputed from the frozen lines rather than trusted from storage.
func RestoreOrder(
	id, customerID, storeID, storeOwnerID kernel.UUID,
	fulfillment kernel.FulfillmentType,
	deliveryAddress *kernel.GeoPoint,
	lines []LineItem,
	status Status,
	deliveryFee kernel.Money,
	customerNotes, rejectionReason string,
	timestamps Timestamps,
	driverID *kernel.UUID,
	driverPosition *kernel.GeoPoint,
	liveEstimate *delivery.Quote,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		storeID.Validate(),
		storeOwnerID.Validate(),
		fulfillment.Validate(),
		status.Validate(),
		deliveryFee.Validate(),
	); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("order lines")
	}
	if err := validateAddress(fulfillment, deliveryAddress); err != nil {
		return nil, err
	}

	o := &Order{
		id:              id,
		customerID:      customerID,
		storeID:         storeID,
		storeOwnerID:    storeOwnerID,
		fulfillment:     fulfillment,
		deliveryAddress: deliveryAddress,
		lines:           append([]LineItem(nil), lines...),
		status:          status,
		deliveryFee:     deliveryFee,
		customerNotes:   customerNotes,
		rejectionReason: rejectionReason,
		timestamps:      timestamps,
		driverID:        driverID,
		driverPosition:  driverPosition,
		liveEstimate:    liveEstimate,

		guard: guard.NewConstructorGuard(),
	}
	if err := o.recomputeTotals(); err != nil {
		return nil, err
	}

	return o, nil
}

func validateAddress(fulfillment kernel.FulfillmentType, address *kernel.GeoPoint) error {
	if fulfillment.IsDelivery() {
		if address == nil {
			return errs.NewValueIsRequiredError("delivery address")
		}
		return address.Validate()
	}
	if address != nil {
		return errs.NewValueIsInvalidError("pickup orders must not carry a delivery address")
	}
	return nil
}

func (o *Order) recomputeTotals() error {
	subtotal := kernel.ZeroMoney()
	for _, line := range o.lines {
		lineTotal, err := line.Total()
		if err != nil {
			return err
		}
		subtotal, err = subtotal.Add(lineTotal)
		if err != nil {
			return err
		}
	}

	total, err := subtotal.Add(o.deliveryFee)
	if err != nil {
		return err
	}

	o.subtotal = subtotal
	o.total = total
	return nil
}

// Validate ensures the Order was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// CustomerID returns the ordering customer.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// StoreID returns the selling store.
func (o *Order) StoreID() kernel.UUID { return o.storeID }

// StoreOwnerID returns the owner of the selling store.
func (o *Order) StoreOwnerID() kernel.UUID { return o.storeOwnerID }

// FulfillmentType returns how the order reaches the customer.
func (o *Order) FulfillmentType() kernel.FulfillmentType { return o.fulfillment }

// DeliveryAddress returns the destination, nil for pickup orders.
func (o *Order) DeliveryAddress() *kernel.GeoPoint { return o.deliveryAddress }

// Lines returns a copy of the frozen line items in order.
func (o *Order) Lines() []LineItem {
	return append([]LineItem(nil), o.lines...)
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Subtotal returns the sum of frozen line totals.
func (o *Order) Subtotal() kernel.Money { return o.subtotal }

// DeliveryFee returns the fee fixed at placement.
func (o *Order) DeliveryFee() kernel.Money { return o.deliveryFee }

// Total returns subtotal plus delivery fee.
func (o *Order) Total() kernel.Money { return o.total }

// CustomerNotes returns the free-text notes from the customer.
func (o *Order) CustomerNotes() string { return o.customerNotes }

// RejectionReason returns the reason, non-empty iff the order is REJECTED.
func (o *Order) RejectionReason() string { return o.rejectionReason }

// Timestamps returns the per-status timestamp record.
func (o *Order) Timestamps() Timestamps { return o.timestamps }

// DriverID returns the assigned driver, nil if none.
func (o *Order) DriverID() *kernel.UUID { return o.driverID }

// DriverPosition returns the last recorded driver position, nil if none.
func (o *Order) DriverPosition() *kernel.GeoPoint { return o.driverPosition }

// LiveEstimate returns the last recomputed in-flight estimate, nil if none.
func (o *Order) LiveEstimate() *delivery.Quote { return o.liveEstimate }

// ensureOpen fails with an OrderClosedError if the order is terminal.
func (o *Order) ensureOpen() error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return errs.NewOrderClosedError(o.id.String(), o.status.String())
	}
	return nil
}

// Accept moves the order from PLACED to ACCEPTED. Only the store owner
// may accept.
func (o *Order) Accept(actor Actor, now time.Time) error {
	if err := o.ensureOpen(); err != nil {
		return err
	}
	if err := o.authorize(actor, "accept", asStoreOwner); err != nil {
		return err
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}
	if err := o.timestamps.record(newStatus, now); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Reject moves the order from PLACED to REJECTED with a required reason.
// Only the store owner may reject.
func (o *Order) Reject(actor Actor, reason string, now time.Time) error {
	if err := o.ensureOpen(); err != nil {
		return err
	}
	if err := o.authorize(actor, "reject", asStoreOwner); err != nil {
		return err
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("rejection reason")
	}

	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}
	if err := o.timestamps.record(newStatus, now); err != nil {
		return err
	}

	o.status = newStatus
	o.rejectionReason = reason
	return nil
}

// Cancel withdraws the order before preparation begins. The ordering
// customer or the store owner may cancel.
func (o *Order) Cancel(actor Actor, now time.Time) error {
	if err := o.ensureOpen(); err != nil {
		return err
	}
	if err := o.authorize(actor, "cancel", asCustomer, asStoreOwner); err != nil {
		return err
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	if err := o.timestamps.record(newStatus, now); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// StartPreparing moves the order from ACCEPTED to PREPARING. Only the
// store owner may start preparation.
func (o *Order) StartPreparing(actor Actor, now time.Time) error {
	if err := o.ensureOpen(); err != nil {
		return err
	}
	if err := o.authorize(actor, "startPreparing", asStoreOwner); err != nil {
		return err
	}

	newStatus, err := o.status.StartPreparing()
	if err != nil {
		return err
	}
	if err := o.timestamps.record(newStatus, now); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkReady moves the order from PREPARING to READY. Only the store owner
// may mark it ready.
func (o *Order) MarkReady(actor Actor, now time.Time) error {
	if err := o.ensureOpen(); err != nil {
		return err
	}
	if err := o.authorize(actor, "markReady", asStoreOwner); err != nil {
		return err
	}

	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}
	if err := o.timestamps.record(newStatus, now); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// StartDelivering moves a delivery order from READY to DELIVERING. The
// store owner or a driver may start the run; a driver actor becomes the
// assigned driver if none is assigned yet.
func (o *Order) StartDelivering(actor Actor, now time.Time) error {
	if err := o.ensureOpen(); err != nil {
		return err
	}
	if !o.fulfillment.IsDelivery() {
		return errs.NewInvalidTransitionError(o.status.String(), "startDelivering")
	}
	if err := o.authorize(actor, "startDelivering", asStoreOwner, asDriver); err != nil {
		return err
	}

	newStatus, err := o.status.StartDelivering()
	if err != nil {
		return err
	}
	if err := o.timestamps.record(newStatus, now); err != nil {
		return err
	}

	o.status = newStatus
	if actor.Role() == RoleDriver && o.driverID == nil {
		driverID := actor.ID()
		o.driverID = &driverID
	}
	return nil
}

// Complete closes the order: READY to COMPLETED for pickup handoff, or
// DELIVERING to COMPLETED for delivery handoff. Pickup completion is
// store-owner-driven; delivery completion may also come from the driver.
func (o *Order) Complete(actor Actor, now time.Time) error {
	if err := o.ensureOpen(); err != nil {
		return err
	}

	if o.status == Ready && !o.fulfillment.IsPickup() {
		return errs.NewInvalidTransitionError(o.status.String(), "complete")
	}

	allowed := []capability{asStoreOwner}
	if o.status == Delivering {
		allowed = append(allowed, asDriver)
	}
	if err := o.authorize(actor, "complete", allowed...); err != nil {
		return err
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}
	if err := o.timestamps.record(newStatus, now); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// RecordDriverPing stores the driver's current position and the
// recomputed in-flight estimate. Pings are applied only while the order
// is DELIVERING; pings on any other status, including terminal ones, are
// dropped without error. Returns whether the ping was applied.
//
// Latest-by-arrival wins: the caller serializes pings per order and this
// method simply overwrites the previous position.
func (o *Order) RecordDriverPing(position kernel.GeoPoint, estimate delivery.Quote) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}
	if err := errors.Join(position.Validate(), estimate.Validate()); err != nil {
		return false, err
	}

	if o.status != Delivering {
		return false, nil
	}

	o.driverPosition = &position
	o.liveEstimate = &estimate
	return true, nil
}
