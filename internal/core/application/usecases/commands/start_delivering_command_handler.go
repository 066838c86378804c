package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/keymutex"
)

// StartDeliveringCommandHandler moves a delivery order from READY to
// DELIVERING.
type StartDeliveringCommandHandler struct {
	transitioner orderTransitioner
}

// NewStartDeliveringCommandHandler creates a handler for starting delivery runs.
func NewStartDeliveringCommandHandler(
	uowFactory OrderUoWFactory,
	locks *keymutex.KeyMutex,
	notifier ports.NotificationDispatcher,
) StartDeliveringCommandHandler {
	return StartDeliveringCommandHandler{
		transitioner: orderTransitioner{uowFactory: uowFactory, locks: locks, notifier: notifier},
	}
}

// Handle applies the startDelivering transition under the order lock.
func (h *StartDeliveringCommandHandler) Handle(ctx context.Context, cmd StartDeliveringCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor, err := cmd.actor()
	if err != nil {
		return err
	}

	return h.transitioner.apply(ctx, cmd.OrderID(), func(aggregate *order.Order, now time.Time) error {
		return aggregate.StartDelivering(actor, now)
	})
}
