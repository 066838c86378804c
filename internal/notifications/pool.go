// Package notifications delivers order event notifications off the request
// path. Transitions enqueue events into a bounded pool; delivery failures are
// logged and dropped, never surfaced back to the transition that caused them.
package notifications

import (
	"context"
	"log/slog"
	"sync"

	"fulfillment/internal/core/ports"
)

// Sender performs the actual delivery of one event, typically to a push
// gateway or a message broker.
type Sender interface {
	Send(ctx context.Context, event ports.NotificationEvent) error
}

// SenderFunc adapts functions to the Sender interface.
type SenderFunc func(ctx context.Context, event ports.NotificationEvent) error

// Send calls the underlying function.
func (fn SenderFunc) Send(ctx context.Context, event ports.NotificationEvent) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, event)
}

// NewLogSender returns a Sender that only logs events. Used until a real
// push gateway is wired in.
func NewLogSender(logger *slog.Logger) Sender {
	return SenderFunc(func(ctx context.Context, event ports.NotificationEvent) error {
		logger.InfoContext(ctx, "order notification",
			"order_id", event.OrderID.String(),
			"store_id", event.StoreID.String(),
			"customer_id", event.CustomerID.String(),
			"status", event.Status.String(),
		)
		return nil
	})
}

// Pool is a bounded worker pool implementing ports.NotificationDispatcher.
// A fixed set of workers drains a fixed-size queue; when the queue is full
// Dispatch drops the event and logs instead of blocking the transition.
type Pool struct {
	sender Sender
	logger *slog.Logger

	queue    chan ports.NotificationEvent
	wg       sync.WaitGroup
	stopOnce sync.Once
}

const (
	defaultWorkers   = 4
	defaultQueueSize = 256
)

// NewPool creates and starts the pool. Non-positive workers or queueSize
// fall back to defaults.
func NewPool(workers, queueSize int, sender Sender, logger *slog.Logger) *Pool {
	if workers <= 0 {
		workers = defaultWorkers
	}
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	pool := &Pool{
		sender: sender,
		logger: logger.With("component", "notification_pool"),
		queue:  make(chan ports.NotificationEvent, queueSize),
	}

	pool.wg.Add(workers)
	for range workers {
		go pool.work()
	}

	return pool
}

// Dispatch enqueues the event without blocking. A full queue drops the
// event; the caller never observes the loss.
func (p *Pool) Dispatch(ctx context.Context, event ports.NotificationEvent) {
	select {
	case p.queue <- event:
	default:
		p.logger.WarnContext(ctx, "notification queue full, dropping event",
			"order_id", event.OrderID.String(),
			"status", event.Status.String(),
		)
	}
}

// Stop closes the queue and waits for the workers to drain it. Dispatch
// must not be called after Stop.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.queue)
	})
	p.wg.Wait()
}

func (p *Pool) work() {
	defer p.wg.Done()

	for event := range p.queue {
		p.deliver(event)
	}
}

// deliver isolates one send so that a panicking Sender kills neither the
// worker nor the process.
func (p *Pool) deliver(event ports.NotificationEvent) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("notification sender panicked",
				"order_id", event.OrderID.String(),
				"panic", r,
			)
		}
	}()

	if err := p.sender.Send(context.Background(), event); err != nil {
		p.logger.Error("notification delivery failed",
			"order_id", event.OrderID.String(),
			"status", event.Status.String(),
			"error", err,
		)
	}
}
