package commands_test

import (
	"context"
	"sync"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/store"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func mustPoint(t *testing.T, lat, lon float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return p
}

func newTestStore(t *testing.T, minOrder string) *store.Store {
	t.Helper()
	policy, err := store.NewFlatFeePolicy(
		mustMoney(t, minOrder), mustMoney(t, "3.50"), nil,
		[]kernel.FulfillmentType{kernel.FulfillmentTypePickup, kernel.FulfillmentTypeDelivery},
	)
	require.NoError(t, err)
	s, err := store.NewStore(kernel.NewUUID(), "Luigi's", mustPoint(t, 52.52, 13.40), policy)
	require.NoError(t, err)
	return s
}

func fillCart(t *testing.T, carts *fakeCartStore, sessionID string, storeID kernel.UUID, price string, qty int) {
	t.Helper()
	item := newTestItem(t, storeID, price)
	err := carts.Update(t.Context(), sessionID, func(c *cart.Cart) error {
		_, addErr := c.AddItem(item, qty, cart.EmptyCustomization())
		return addErr
	})
	require.NoError(t, err)
}

func cartLineCount(t *testing.T, carts *fakeCartStore, sessionID string) int {
	t.Helper()
	count := -1
	err := carts.View(t.Context(), sessionID, func(c *cart.Cart) error {
		snap, snapErr := c.Snapshot()
		if snapErr != nil {
			return snapErr
		}
		count = len(snap.Lines)
		return nil
	})
	require.NoError(t, err)
	return count
}

func newPlaceOrderHandler(
	t *testing.T,
	carts *fakeCartStore,
	catalog *MockStoreCatalog,
	routing *stubRouting,
	factory *MockOrderUoWFactory,
	notifier *recordingNotifier,
) commands.PlaceOrderCommandHandler {
	t.Helper()
	estimator, err := services.NewDeliveryEstimator(routing)
	require.NoError(t, err)
	return commands.NewPlaceOrderCommandHandler(carts, catalog, estimator, factory, notifier)
}

func TestPlaceOrderCommandHandler_Handle_DeliverySuccess(t *testing.T) {
	ctx := t.Context()
	testStore := newTestStore(t, "10.00")
	carts := newFakeCartStore()
	fillCart(t, carts, "session-1", testStore.ID(), "9.50", 2)

	catalog := new(MockStoreCatalog)
	catalog.On("GetStore", ctx, testStore.ID()).Return(testStore, nil).Once()

	routing := &stubRouting{leg: services.RouteLeg{DistanceKm: 4.2, DurationMin: 18}}

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := &recordingNotifier{}
	h := newPlaceOrderHandler(t, carts, catalog, routing, factory, notifier)

	addr := mustPoint(t, 52.50, 13.45)
	customerID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(
		"session-1", customerID, kernel.FulfillmentTypeDelivery, &addr, "ring twice")
	require.NoError(t, err)

	orderID, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NoError(t, orderID.Validate())
	assert.Equal(t, 0, cartLineCount(t, carts, "session-1"))

	events := notifier.Events()
	require.Len(t, events, 1)
	assert.Equal(t, order.Placed, events[0].Status)
	assert.True(t, events[0].CustomerID.IsEqual(customerID))

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	catalog.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	catalog := new(MockStoreCatalog)
	factory := new(MockOrderUoWFactory)
	h := newPlaceOrderHandler(t, newFakeCartStore(), catalog, &stubRouting{}, factory, &recordingNotifier{})

	cmd, err := commands.NewPlaceOrderCommand(
		"session-1", kernel.NewUUID(), kernel.FulfillmentTypePickup, nil, "")
	require.NoError(t, err)

	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	factory.AssertNotCalled(t, "Create")
}

func TestPlaceOrderCommandHandler_Handle_BelowMinimum(t *testing.T) {
	ctx := t.Context()
	testStore := newTestStore(t, "20.00")
	carts := newFakeCartStore()
	fillCart(t, carts, "session-1", testStore.ID(), "18.00", 1)

	catalog := new(MockStoreCatalog)
	catalog.On("GetStore", ctx, testStore.ID()).Return(testStore, nil).Once()
	routing := &stubRouting{}
	factory := new(MockOrderUoWFactory)
	h := newPlaceOrderHandler(t, carts, catalog, routing, factory, &recordingNotifier{})

	addr := mustPoint(t, 52.50, 13.45)
	cmd, err := commands.NewPlaceOrderCommand(
		"session-1", kernel.NewUUID(), kernel.FulfillmentTypeDelivery, &addr, "")
	require.NoError(t, err)

	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	var below *errs.BelowMinimumOrderError
	require.ErrorAs(t, err, &below)
	assert.True(t, below.Shortfall.Equal(mustMoney(t, "2.00").Amount()))

	// No order was created and the cart survived.
	factory.AssertNotCalled(t, "Create")
	assert.Equal(t, 1, cartLineCount(t, carts, "session-1"))
	assert.Equal(t, 0, routing.calls())
}

func TestPlaceOrderCommandHandler_Handle_RoutingDown(t *testing.T) {
	ctx := t.Context()
	testStore := newTestStore(t, "10.00")
	carts := newFakeCartStore()
	fillCart(t, carts, "session-1", testStore.ID(), "18.00", 1)

	catalog := new(MockStoreCatalog)
	catalog.On("GetStore", ctx, testStore.ID()).Return(testStore, nil).Once()
	factory := new(MockOrderUoWFactory)
	h := newPlaceOrderHandler(t, carts, catalog, &stubRouting{fail: true}, factory, &recordingNotifier{})

	addr := mustPoint(t, 52.50, 13.45)
	cmd, err := commands.NewPlaceOrderCommand(
		"session-1", kernel.NewUUID(), kernel.FulfillmentTypeDelivery, &addr, "")
	require.NoError(t, err)

	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrRoutingUnavailable)
	factory.AssertNotCalled(t, "Create")
}

// gatedOrderUoW parks the first Begin until released so a second checkout
// can be raced against one that is mid-persist.
type gatedOrderUoW struct {
	repo    ports.OrderRepository
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (u *gatedOrderUoW) Begin(context.Context) error {
	u.once.Do(func() { close(u.entered) })
	<-u.release
	return nil
}

func (u *gatedOrderUoW) Commit(context.Context) error   { return nil }
func (u *gatedOrderUoW) Rollback(context.Context) error { return nil }

func (u *gatedOrderUoW) OrderRepository() ports.OrderRepository { return u.repo }

type staticUoWFactory struct{ uow commands.OrderUoW }

func (f staticUoWFactory) Create() commands.OrderUoW { return f.uow }

// countingOrderRepository records added orders without mock bookkeeping so
// it can be shared safely between racing goroutines.
type countingOrderRepository struct {
	mu    sync.Mutex
	added []*order.Order
}

func (r *countingOrderRepository) Add(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.added = append(r.added, o)
	return nil
}

func (r *countingOrderRepository) Update(context.Context, *order.Order) error { return nil }

func (r *countingOrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	return nil, errs.NewObjectNotFoundError("orderID", id)
}

func (r *countingOrderRepository) GetAllInDeliveringStatus(context.Context) ([]*order.Order, error) {
	return nil, nil
}

func (r *countingOrderRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.added)
}

func TestPlaceOrderCommandHandler_Handle_ConcurrentCheckoutPlacesOneOrder(t *testing.T) {
	ctx := t.Context()
	testStore := newTestStore(t, "10.00")
	carts := newFakeCartStore()
	fillCart(t, carts, "session-1", testStore.ID(), "9.50", 2)

	catalog := new(MockStoreCatalog)
	catalog.On("GetStore", ctx, testStore.ID()).Return(testStore, nil).Once()

	repo := &countingOrderRepository{}
	uow := &gatedOrderUoW{
		repo:    repo,
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}

	estimator, err := services.NewDeliveryEstimator(
		&stubRouting{leg: services.RouteLeg{DistanceKm: 4.2, DurationMin: 18}})
	require.NoError(t, err)
	notifier := &recordingNotifier{}
	h := commands.NewPlaceOrderCommandHandler(carts, catalog, estimator, staticUoWFactory{uow: uow}, notifier)

	addr := mustPoint(t, 52.50, 13.45)
	cmd, err := commands.NewPlaceOrderCommand(
		"session-1", kernel.NewUUID(), kernel.FulfillmentTypeDelivery, &addr, "")
	require.NoError(t, err)

	first := make(chan error, 1)
	go func() {
		_, handleErr := h.Handle(ctx, cmd)
		first <- handleErr
	}()
	// The first checkout is mid-persist and still owns the session.
	<-uow.entered

	second := make(chan error, 1)
	go func() {
		_, handleErr := h.Handle(ctx, cmd)
		second <- handleErr
	}()

	close(uow.release)

	require.NoError(t, <-first)
	// The loser waits out the session lock and finds the cart consumed.
	require.ErrorIs(t, <-second, errs.ErrValueIsRequired)

	assert.Equal(t, 1, repo.count())
	assert.Len(t, notifier.Events(), 1)
	assert.Equal(t, 0, cartLineCount(t, carts, "session-1"))
}

func TestPlaceOrderCommandHandler_Handle_PickupSkipsRouting(t *testing.T) {
	ctx := t.Context()
	testStore := newTestStore(t, "10.00")
	carts := newFakeCartStore()
	fillCart(t, carts, "session-1", testStore.ID(), "4.00", 1)

	catalog := new(MockStoreCatalog)
	catalog.On("GetStore", ctx, testStore.ID()).Return(testStore, nil).Once()
	routing := &stubRouting{}

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newPlaceOrderHandler(t, carts, catalog, routing, factory, &recordingNotifier{})

	// Pickup: no minimum-order check, no routing call, zero fee.
	cmd, err := commands.NewPlaceOrderCommand(
		"session-1", kernel.NewUUID(), kernel.FulfillmentTypePickup, nil, "")
	require.NoError(t, err)

	_, err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, routing.calls())
}
