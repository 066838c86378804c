package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/keymutex"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newPingedDeliveringOrder walks an order out for delivery and records one
// driver ping so the refresh job has a position to route from.
func newPingedDeliveringOrder(t *testing.T, driverID kernel.UUID) *order.Order {
	t.Helper()
	aggregate := newDeliveringOrder(t, driverID)

	estimate, err := delivery.NewQuote(4.2, 18, aggregate.DeliveryFee())
	require.NoError(t, err)
	applied, err := aggregate.RecordDriverPing(mustPoint(t, 52.51, 13.42), estimate)
	require.NoError(t, err)
	require.True(t, applied)
	return aggregate
}

func newRefreshEtasHandler(
	t *testing.T,
	factory *MockOrderUoWFactory,
	routing *stubRouting,
) commands.RefreshEtasCommandHandler {
	t.Helper()
	estimator, err := services.NewDeliveryEstimator(routing)
	require.NoError(t, err)
	return commands.NewRefreshEtasCommandHandler(factory, keymutex.New(), estimator)
}

func TestRefreshEtasCommandHandler_Handle_RefreshesEstimate(t *testing.T) {
	ctx := t.Context()
	aggregate := newPingedDeliveringOrder(t, kernel.NewUUID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(repo)
	// First UoW reads the batch, second applies one refresh under the lock.
	uow.On("Begin", ctx).Return(nil).Times(2)
	repo.On("GetAllInDeliveringStatus", ctx).Return([]*order.Order{aggregate}, nil).Once()
	repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	repo.On("Update", ctx, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Times(2)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Times(2)

	routing := &stubRouting{leg: services.RouteLeg{DistanceKm: 2.5, DurationMin: 9}}
	h := newRefreshEtasHandler(t, factory, routing)

	require.NoError(t, h.Handle(ctx, commands.NewRefreshEtasCommand()))

	estimate := aggregate.LiveEstimate()
	require.NotNil(t, estimate)
	assert.InDelta(t, 2.5, estimate.DistanceKm(), 0.001)
	assert.Equal(t, 9, estimate.DurationMin())
	assert.True(t, estimate.Fee().IsEqual(aggregate.DeliveryFee()))

	assert.Equal(t, 1, routing.calls())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRefreshEtasCommandHandler_Handle_SkipsOrdersWithoutPing(t *testing.T) {
	ctx := t.Context()
	// Out for delivery but no ping yet, so there is nothing to route from.
	aggregate := newDeliveringOrder(t, kernel.NewUUID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(repo)
	uow.On("Begin", ctx).Return(nil).Once()
	repo.On("GetAllInDeliveringStatus", ctx).Return([]*order.Order{aggregate}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	routing := &stubRouting{leg: services.RouteLeg{DistanceKm: 2.5, DurationMin: 9}}
	h := newRefreshEtasHandler(t, factory, routing)

	require.NoError(t, h.Handle(ctx, commands.NewRefreshEtasCommand()))

	assert.Equal(t, 0, routing.calls())
	assert.Nil(t, aggregate.LiveEstimate())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRefreshEtasCommandHandler_Handle_RoutingDown(t *testing.T) {
	ctx := t.Context()
	aggregate := newPingedDeliveringOrder(t, kernel.NewUUID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(repo)
	uow.On("Begin", ctx).Return(nil).Once()
	repo.On("GetAllInDeliveringStatus", ctx).Return([]*order.Order{aggregate}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newRefreshEtasHandler(t, factory, &stubRouting{fail: true})

	err := h.Handle(ctx, commands.NewRefreshEtasCommand())

	require.ErrorIs(t, err, errs.ErrRoutingUnavailable)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRefreshEtasCommandHandler_Handle_InvalidCommand(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	h := newRefreshEtasHandler(t, factory, &stubRouting{})

	err := h.Handle(t.Context(), commands.RefreshEtasCommand{})

	require.ErrorIs(t, err, commands.ErrRefreshEtasCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
