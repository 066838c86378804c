package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// PlaceOrderCommandHandler advances a finalized cart into a persisted
// order: it snapshots the cart, quotes the delivery, freezes the lines,
// creates the aggregate in PLACED, and clears the cart on success.
//
// The whole placement runs under the session lock. Checkout consumes the
// cart, so two concurrent checkouts of one session must serialize: the
// winner empties the cart inside the critical section and the loser then
// fails on the empty cart instead of placing a duplicate order.
//
// Failure anywhere before the commit leaves both the cart and the order
// store untouched; a BelowMinimumOrder or RoutingUnavailable quote
// failure therefore never creates an order.
type PlaceOrderCommandHandler struct {
	cartStore    ports.CartStore
	storeCatalog ports.StoreCatalog
	estimator    *services.DeliveryEstimator
	uowFactory   OrderUoWFactory
	notifier     ports.NotificationDispatcher
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	cartStore ports.CartStore,
	storeCatalog ports.StoreCatalog,
	estimator *services.DeliveryEstimator,
	uowFactory OrderUoWFactory,
	notifier ports.NotificationDispatcher,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		cartStore:    cartStore,
		storeCatalog: storeCatalog,
		estimator:    estimator,
		uowFactory:   uowFactory,
		notifier:     notifier,
	}
}

// Handle places the order and returns the new order's identifier.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	var aggregate *order.Order
	err := h.cartStore.Update(ctx, cmd.SessionID(), func(c *cart.Cart) error {
		placed, placeErr := h.place(ctx, cmd, c)
		if placeErr != nil {
			return placeErr
		}

		// Checkout succeeded; empty the cart before the session lock is
		// released so a concurrent checkout cannot place it again.
		c.Clear()
		aggregate = placed
		return nil
	})
	if err != nil {
		return kernel.UUID{}, err
	}

	h.notifier.Dispatch(ctx, ports.NotificationEvent{
		OrderID:    aggregate.ID(),
		StoreID:    aggregate.StoreID(),
		CustomerID: aggregate.CustomerID(),
		Status:     aggregate.Status(),
	})

	return aggregate.ID(), nil
}

// place quotes, freezes and persists the cart's lines as a new order. It
// runs inside the session's critical section and never mutates the cart.
func (h *PlaceOrderCommandHandler) place(
	ctx context.Context,
	cmd PlaceOrderCommand,
	c *cart.Cart,
) (*order.Order, error) {
	snapshot, err := c.Snapshot()
	if err != nil {
		return nil, err
	}
	if len(snapshot.Lines) == 0 {
		return nil, errs.NewValueIsRequiredError("cart is empty")
	}

	storeRecord, err := h.storeCatalog.GetStore(ctx, snapshot.Lines[0].StoreID)
	if err != nil {
		return nil, err
	}
	if !storeRecord.Policy().Accepts(cmd.Fulfillment()) {
		return nil, errs.NewValueIsInvalidError(
			"store does not accept " + cmd.Fulfillment().String() + " orders")
	}

	destination := storeRecord.Location()
	if cmd.DeliveryAddress() != nil {
		destination = *cmd.DeliveryAddress()
	}
	quote, err := h.estimator.Quote(ctx, storeRecord.Location(), destination,
		cmd.Fulfillment(), snapshot.Subtotal, storeRecord.Policy())
	if err != nil {
		return nil, err
	}

	lines := make([]order.LineItem, 0, len(snapshot.Lines))
	for _, l := range snapshot.Lines {
		line, lineErr := order.NewLineItem(
			l.ItemID, l.Name, l.UnitPrice, l.Quantity, l.Choices, l.Removed, l.Instructions)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	aggregate, err := order.NewOrder(
		cmd.CustomerID(), storeRecord.ID(), storeRecord.OwnerID(),
		cmd.Fulfillment(), cmd.DeliveryAddress(), lines, quote,
		cmd.CustomerNotes(), time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
