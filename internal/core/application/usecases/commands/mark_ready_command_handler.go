package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/keymutex"
)

// MarkReadyCommandHandler moves an order from PREPARING to READY.
type MarkReadyCommandHandler struct {
	transitioner orderTransitioner
}

// NewMarkReadyCommandHandler creates a handler for marking orders ready.
func NewMarkReadyCommandHandler(
	uowFactory OrderUoWFactory,
	locks *keymutex.KeyMutex,
	notifier ports.NotificationDispatcher,
) MarkReadyCommandHandler {
	return MarkReadyCommandHandler{
		transitioner: orderTransitioner{uowFactory: uowFactory, locks: locks, notifier: notifier},
	}
}

// Handle applies the markReady transition under the order lock.
func (h *MarkReadyCommandHandler) Handle(ctx context.Context, cmd MarkReadyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor, err := cmd.actor()
	if err != nil {
		return err
	}

	return h.transitioner.apply(ctx, cmd.OrderID(), func(aggregate *order.Order, now time.Time) error {
		return aggregate.MarkReady(actor, now)
	})
}
