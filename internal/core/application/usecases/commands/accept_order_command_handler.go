package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/keymutex"
)

// AcceptOrderCommandHandler moves an order from PLACED to ACCEPTED.
type AcceptOrderCommandHandler struct {
	transitioner orderTransitioner
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(
	uowFactory OrderUoWFactory,
	locks *keymutex.KeyMutex,
	notifier ports.NotificationDispatcher,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		transitioner: orderTransitioner{uowFactory: uowFactory, locks: locks, notifier: notifier},
	}
}

// Handle applies the accept transition under the order lock.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor, err := cmd.actor()
	if err != nil {
		return err
	}

	return h.transitioner.apply(ctx, cmd.OrderID(), func(aggregate *order.Order, now time.Time) error {
		return aggregate.Accept(actor, now)
	})
}
