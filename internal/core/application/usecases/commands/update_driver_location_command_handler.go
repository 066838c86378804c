package commands

import (
	"context"
	"sync"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/keymutex"
)

// pingSequencer assigns per-order arrival numbers to driver pings. Routing
// runs outside the order lock, so a ping that arrived earlier but routed
// slower can reach the apply step after a later ping; comparing its arrival
// number against the newest one detects that and the stale ping is dropped.
type pingSequencer struct {
	mu     sync.Mutex
	latest map[string]uint64
}

func newPingSequencer() *pingSequencer {
	return &pingSequencer{latest: make(map[string]uint64)}
}

// arrive registers a new ping for the order and returns its arrival number.
func (s *pingSequencer) arrive(orderID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest[orderID]++
	return s.latest[orderID]
}

// isLatest reports whether seq is still the newest arrival for the order.
func (s *pingSequencer) isLatest(orderID string, seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest[orderID] == seq
}

// forget releases tracking for an order that is no longer delivering.
func (s *pingSequencer) forget(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.latest, orderID)
}

// UpdateDriverLocationCommandHandler records a driver ping and refreshes
// the in-flight estimate by re-routing from the driver's position.
//
// The routing call happens outside the order lock so that frequent pings
// never hold the lifecycle lock for the duration of an external call; the
// lock is taken only to check the order is still open and to apply the
// result. Latest-by-arrival wins: each ping takes an arrival number up
// front, and a ping that finds a newer arrival recorded by the time it
// holds the lock discards its result instead of overwriting the newer
// position. A ping for an order that is no longer DELIVERING succeeds
// with no effect.
type UpdateDriverLocationCommandHandler struct {
	uowFactory OrderUoWFactory
	locks      *keymutex.KeyMutex
	estimator  *services.DeliveryEstimator
	pings      *pingSequencer
}

// NewUpdateDriverLocationCommandHandler creates a handler for driver pings.
func NewUpdateDriverLocationCommandHandler(
	uowFactory OrderUoWFactory,
	locks *keymutex.KeyMutex,
	estimator *services.DeliveryEstimator,
) UpdateDriverLocationCommandHandler {
	return UpdateDriverLocationCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		estimator:  estimator,
		pings:      newPingSequencer(),
	}
}

// Handle refreshes the order's driver position and live estimate.
func (h *UpdateDriverLocationCommandHandler) Handle(ctx context.Context, cmd UpdateDriverLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	seq := h.pings.arrive(cmd.OrderID().String())

	// Cheap pre-read: skip the routing call entirely when the order is
	// not out for delivery anymore.
	aggregate, err := h.readOrder(ctx, cmd)
	if err != nil {
		return err
	}
	if aggregate.Status() != order.Delivering || aggregate.DeliveryAddress() == nil {
		h.pings.forget(cmd.OrderID().String())
		return nil
	}

	estimate, err := h.estimator.LiveEstimate(
		ctx, cmd.Position(), *aggregate.DeliveryAddress(), aggregate.DeliveryFee())
	if err != nil {
		return err
	}

	unlock := h.locks.Lock(cmd.OrderID().String())
	defer unlock()

	// A newer ping arrived while we routed; its coordinates win.
	if !h.pings.isLatest(cmd.OrderID().String(), seq) {
		return nil
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// Re-read under the lock: the order may have closed while we routed.
	aggregate, err = uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	applied, err := aggregate.RecordDriverPing(cmd.Position(), estimate)
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

func (h *UpdateDriverLocationCommandHandler) readOrder(
	ctx context.Context,
	cmd UpdateDriverLocationCommand,
) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OrderRepository().Get(ctx, cmd.OrderID())
}
