package commands_test

import (
	"context"
	"sync"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/menu"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/store"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInDeliveringStatus(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockMenuCatalog struct{ mock.Mock }

func (m *MockMenuCatalog) GetItem(ctx context.Context, id kernel.UUID) (*menu.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Item), args.Error(1)
}

type MockStoreCatalog struct{ mock.Mock }

func (m *MockStoreCatalog) GetStore(ctx context.Context, id kernel.UUID) (*store.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Store), args.Error(1)
}

// fakeCartStore is a minimal in-memory cart store for handler tests.
type fakeCartStore struct {
	mu      sync.Mutex
	carts   map[string]*cart.Cart
	dropped []string
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: make(map[string]*cart.Cart)}
}

func (f *fakeCartStore) Update(_ context.Context, sessionID string, fn func(*cart.Cart) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.carts[sessionID]
	if !ok {
		c = cart.NewCart()
		f.carts[sessionID] = c
	}
	return fn(c)
}

func (f *fakeCartStore) View(_ context.Context, sessionID string, fn func(*cart.Cart) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.carts[sessionID]
	if !ok {
		c = cart.NewCart()
	}
	return fn(c)
}

func (f *fakeCartStore) Drop(_ context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.carts, sessionID)
	f.dropped = append(f.dropped, sessionID)
	return nil
}

// recordingNotifier captures dispatched events for assertions.
type recordingNotifier struct {
	mu     sync.Mutex
	events []ports.NotificationEvent
}

func (r *recordingNotifier) Dispatch(_ context.Context, event ports.NotificationEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingNotifier) Events() []ports.NotificationEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ports.NotificationEvent(nil), r.events...)
}

// stubRouting implements services.RoutingClient with canned legs.
type stubRouting struct {
	mu         sync.Mutex
	leg        services.RouteLeg
	fail       bool
	routeCalls int
}

func (s *stubRouting) Route(_ context.Context, _, _ kernel.GeoPoint) (services.RouteLeg, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routeCalls++
	if s.fail {
		return services.RouteLeg{}, errs.NewValueIsInvalidError("routing down")
	}
	return s.leg, nil
}

func (s *stubRouting) RouteMatrix(_ context.Context, _ kernel.GeoPoint, dests []kernel.GeoPoint) ([]services.RouteLeg, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, errs.NewValueIsInvalidError("routing down")
	}
	legs := make([]services.RouteLeg, len(dests))
	for i := range legs {
		legs[i] = s.leg
	}
	return legs, nil
}

func (s *stubRouting) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.routeCalls
}
