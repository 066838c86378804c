package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/keymutex"
)

// orderActorCommand carries the fields every lifecycle transition command
// shares: the target order and the acting party. Concrete commands embed
// it and add their own constructor guard.
type orderActorCommand struct {
	orderID kernel.UUID
	actorID kernel.UUID
	role    order.Role
}

// OrderID returns the order the transition targets.
func (c orderActorCommand) OrderID() kernel.UUID { return c.orderID }

// ActorID returns the identity of the acting party.
func (c orderActorCommand) ActorID() kernel.UUID { return c.actorID }

// Role returns the acting party's role.
func (c orderActorCommand) Role() order.Role { return c.role }

func (c *orderActorCommand) set(orderID, actorID kernel.UUID, role order.Role) error {
	if err := errors.Join(
		orderID.Validate(),
		actorID.Validate(),
		role.Validate(),
	); err != nil {
		return err
	}

	c.orderID = orderID
	c.actorID = actorID
	c.role = role
	return nil
}

func (c orderActorCommand) actor() (order.Actor, error) {
	return order.NewActor(c.actorID, c.role)
}

// orderTransitioner is the shared load-transition-persist core of every
// lifecycle handler. The per-order lock guarantees at most one transition
// applies at a time: concurrent attempts serialize, and the loser sees
// the new status and fails inside mutate with an InvalidTransitionError.
type orderTransitioner struct {
	uowFactory OrderUoWFactory
	locks      *keymutex.KeyMutex
	notifier   ports.NotificationDispatcher
}

// apply runs mutate against the freshly loaded order under the order's
// lock, persists on success, and dispatches a status notification after
// the commit. Notification failures never reach the caller; the
// dispatcher isolates them.
func (t orderTransitioner) apply(
	ctx context.Context,
	orderID kernel.UUID,
	mutate func(aggregate *order.Order, now time.Time) error,
) error {
	unlock := t.locks.Lock(orderID.String())
	defer unlock()

	uow := t.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = mutate(aggregate, time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	t.notifier.Dispatch(ctx, ports.NotificationEvent{
		OrderID:    aggregate.ID(),
		StoreID:    aggregate.StoreID(),
		CustomerID: aggregate.CustomerID(),
		Status:     aggregate.Status(),
	})

	return nil
}
