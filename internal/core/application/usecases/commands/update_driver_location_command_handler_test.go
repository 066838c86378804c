package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/keymutex"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeliveringOrder(t *testing.T, driverID kernel.UUID) *order.Order {
	t.Helper()
	ownerID := kernel.NewUUID()
	aggregate := newPlacedDeliveryOrder(t, ownerID)

	owner, err := order.NewActor(ownerID, order.RoleStoreOwner)
	require.NoError(t, err)
	driver, err := order.NewActor(driverID, order.RoleDriver)
	require.NoError(t, err)

	now := time.Now().UTC()
	require.NoError(t, aggregate.Accept(owner, now))
	require.NoError(t, aggregate.StartPreparing(owner, now.Add(time.Minute)))
	require.NoError(t, aggregate.MarkReady(owner, now.Add(2*time.Minute)))
	require.NoError(t, aggregate.StartDelivering(driver, now.Add(3*time.Minute)))
	return aggregate
}

func newDriverLocationHandler(
	t *testing.T,
	factory *MockOrderUoWFactory,
	routing *stubRouting,
) commands.UpdateDriverLocationCommandHandler {
	t.Helper()
	estimator, err := services.NewDeliveryEstimator(routing)
	require.NoError(t, err)
	return commands.NewUpdateDriverLocationCommandHandler(factory, keymutex.New(), estimator)
}

func TestUpdateDriverLocationCommandHandler_Handle_Applied(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	aggregate := newDeliveringOrder(t, driverID)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(repo)
	// First UoW pre-reads without the lock, second re-reads under it.
	uow.On("Begin", ctx).Return(nil).Times(2)
	repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Times(2)
	repo.On("Update", ctx, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Times(2)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Times(2)

	routing := &stubRouting{leg: services.RouteLeg{DistanceKm: 1.8, DurationMin: 7}}
	h := newDriverLocationHandler(t, factory, routing)

	position := mustPoint(t, 52.51, 13.42)
	cmd, err := commands.NewUpdateDriverLocationCommand(aggregate.ID(), driverID, position)
	require.NoError(t, err)

	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, aggregate.DriverPosition())
	samePos, err := aggregate.DriverPosition().IsEqual(position)
	require.NoError(t, err)
	assert.True(t, samePos)

	estimate := aggregate.LiveEstimate()
	require.NotNil(t, estimate)
	assert.InDelta(t, 1.8, estimate.DistanceKm(), 0.001)
	assert.Equal(t, 7, estimate.DurationMin())
	// The fee stays fixed at placement; only distance and ETA refresh.
	assert.True(t, estimate.Fee().IsEqual(aggregate.DeliveryFee()))

	assert.Equal(t, 1, routing.calls())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateDriverLocationCommandHandler_Handle_OrderNotDelivering(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	aggregate := newPlacedDeliveryOrder(t, ownerID)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(repo)
	uow.On("Begin", ctx).Return(nil).Once()
	repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	routing := &stubRouting{leg: services.RouteLeg{DistanceKm: 1.8, DurationMin: 7}}
	h := newDriverLocationHandler(t, factory, routing)

	cmd, err := commands.NewUpdateDriverLocationCommand(
		aggregate.ID(), kernel.NewUUID(), mustPoint(t, 52.51, 13.42))
	require.NoError(t, err)

	// Ping on a PLACED order is accepted and dropped without routing.
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, 0, routing.calls())
	assert.Nil(t, aggregate.DriverPosition())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateDriverLocationCommandHandler_Handle_ClosedBetweenReadAndLock(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	delivering := newDeliveringOrder(t, driverID)

	driver, err := order.NewActor(driverID, order.RoleDriver)
	require.NoError(t, err)

	// The second read observes the order after the driver completed it.
	completed := newDeliveringOrder(t, driverID)
	require.NoError(t, completed.Complete(driver, time.Now().UTC()))

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(repo)
	uow.On("Begin", ctx).Return(nil).Times(2)
	repo.On("Get", ctx, delivering.ID()).Return(delivering, nil).Once()
	repo.On("Get", ctx, delivering.ID()).Return(completed, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Times(2)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Times(2)

	routing := &stubRouting{leg: services.RouteLeg{DistanceKm: 1.8, DurationMin: 7}}
	h := newDriverLocationHandler(t, factory, routing)

	cmd, err := commands.NewUpdateDriverLocationCommand(
		delivering.ID(), driverID, mustPoint(t, 52.51, 13.42))
	require.NoError(t, err)

	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, 1, routing.calls())
	assert.Nil(t, completed.DriverPosition())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

// gatedRouting parks the first Route call until released so a later ping
// can overtake a slower-routing earlier one.
type gatedRouting struct {
	leg     services.RouteLeg
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (g *gatedRouting) Route(context.Context, kernel.GeoPoint, kernel.GeoPoint) (services.RouteLeg, error) {
	var first bool
	g.once.Do(func() {
		first = true
		close(g.entered)
	})
	if first {
		<-g.release
	}
	return g.leg, nil
}

func (g *gatedRouting) RouteMatrix(_ context.Context, _ kernel.GeoPoint, dests []kernel.GeoPoint) ([]services.RouteLeg, error) {
	legs := make([]services.RouteLeg, len(dests))
	for i := range legs {
		legs[i] = g.leg
	}
	return legs, nil
}

func TestUpdateDriverLocationCommandHandler_Handle_StalePingDoesNotOverwriteNewer(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	aggregate := newDeliveringOrder(t, driverID)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(repo)
	// Three unit of work uses: both pre-reads plus the newer ping's apply.
	// The stale ping skips its apply entirely.
	uow.On("Begin", ctx).Return(nil).Times(3)
	repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Times(3)
	repo.On("Update", ctx, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Times(3)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Times(3)

	routing := &gatedRouting{
		leg:     services.RouteLeg{DistanceKm: 1.8, DurationMin: 7},
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	estimator, err := services.NewDeliveryEstimator(routing)
	require.NoError(t, err)
	h := commands.NewUpdateDriverLocationCommandHandler(factory, keymutex.New(), estimator)

	stalePos := mustPoint(t, 52.51, 13.42)
	newerPos := mustPoint(t, 52.49, 13.38)
	staleCmd, err := commands.NewUpdateDriverLocationCommand(aggregate.ID(), driverID, stalePos)
	require.NoError(t, err)
	newerCmd, err := commands.NewUpdateDriverLocationCommand(aggregate.ID(), driverID, newerPos)
	require.NoError(t, err)

	stale := make(chan error, 1)
	go func() {
		stale <- h.Handle(ctx, staleCmd)
	}()
	// The earlier ping is stuck in routing; the later one overtakes it.
	<-routing.entered

	require.NoError(t, h.Handle(ctx, newerCmd))

	close(routing.release)
	require.NoError(t, <-stale)

	// The slower-routing earlier ping was discarded, not applied.
	require.NotNil(t, aggregate.DriverPosition())
	samePos, err := aggregate.DriverPosition().IsEqual(newerPos)
	require.NoError(t, err)
	assert.True(t, samePos)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateDriverLocationCommandHandler_Handle_RoutingDown(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	aggregate := newDeliveringOrder(t, driverID)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(repo)
	uow.On("Begin", ctx).Return(nil).Once()
	repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newDriverLocationHandler(t, factory, &stubRouting{fail: true})

	cmd, err := commands.NewUpdateDriverLocationCommand(
		aggregate.ID(), driverID, mustPoint(t, 52.51, 13.42))
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrRoutingUnavailable)
	assert.Nil(t, aggregate.DriverPosition())
}
