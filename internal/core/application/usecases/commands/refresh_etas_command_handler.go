package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/keymutex"
)

// RefreshEtasCommandHandler re-routes every DELIVERING order from its last
// recorded driver position and stores the refreshed estimate.
//
// Each order is processed independently: the routing call happens outside
// the order lock, and a failure for one order never blocks the rest of the
// batch. Orders without a recorded driver position are skipped; a driver
// ping has to arrive first.
type RefreshEtasCommandHandler struct {
	uowFactory OrderUoWFactory
	locks      *keymutex.KeyMutex
	estimator  *services.DeliveryEstimator
}

// NewRefreshEtasCommandHandler creates a handler for the periodic estimate
// refresh.
func NewRefreshEtasCommandHandler(
	uowFactory OrderUoWFactory,
	locks *keymutex.KeyMutex,
	estimator *services.DeliveryEstimator,
) RefreshEtasCommandHandler {
	return RefreshEtasCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		estimator:  estimator,
	}
}

// Handle refreshes the live estimate of every delivering order. Per-order
// failures are joined into the returned error after the whole batch ran.
func (h *RefreshEtasCommandHandler) Handle(ctx context.Context, cmd RefreshEtasCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	orders, err := h.readDeliveringOrders(ctx)
	if err != nil {
		return err
	}

	var failures []error
	for _, aggregate := range orders {
		if aggregate.DriverPosition() == nil || aggregate.DeliveryAddress() == nil {
			continue
		}
		if err = h.refreshOrder(ctx, aggregate); err != nil {
			failures = append(failures, err)
		}
	}

	return errors.Join(failures...)
}

func (h *RefreshEtasCommandHandler) readDeliveringOrders(ctx context.Context) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OrderRepository().GetAllInDeliveringStatus(ctx)
}

// refreshOrder routes from the snapshot read of one order, then applies the
// result under the order lock the same way a driver ping does.
func (h *RefreshEtasCommandHandler) refreshOrder(ctx context.Context, snapshot *order.Order) error {
	position := *snapshot.DriverPosition()

	estimate, err := h.estimator.LiveEstimate(
		ctx, position, *snapshot.DeliveryAddress(), snapshot.DeliveryFee())
	if err != nil {
		return err
	}

	unlock := h.locks.Lock(snapshot.ID().String())
	defer unlock()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// Re-read under the lock: the order may have closed, or a fresher ping
	// may have moved the driver while we routed.
	aggregate, err := uow.OrderRepository().Get(ctx, snapshot.ID())
	if err != nil {
		return err
	}
	if current := aggregate.DriverPosition(); current != nil {
		position = *current
	}

	applied, err := aggregate.RecordDriverPing(position, estimate)
	if err != nil {
		return err
	}
	if !applied {
		return nil
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
