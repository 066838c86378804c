package queries_test

import (
	"context"
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/store"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStoreCatalog struct{ mock.Mock }

func (m *MockStoreCatalog) GetStore(ctx context.Context, id kernel.UUID) (*store.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Store), args.Error(1)
}

type routingStub struct {
	leg  services.RouteLeg
	fail bool
}

func (s *routingStub) Route(_ context.Context, _, _ kernel.GeoPoint) (services.RouteLeg, error) {
	if s.fail {
		return services.RouteLeg{}, errs.NewValueIsInvalidError("routing down")
	}
	return s.leg, nil
}

func (s *routingStub) RouteMatrix(_ context.Context, _ kernel.GeoPoint, dests []kernel.GeoPoint) ([]services.RouteLeg, error) {
	if s.fail {
		return nil, errs.NewValueIsInvalidError("routing down")
	}
	legs := make([]services.RouteLeg, len(dests))
	for i := range legs {
		legs[i] = s.leg
	}
	return legs, nil
}

func mustPoint(t *testing.T, lat, lon float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return p
}

func deliveryStore(t *testing.T, minOrder string) *store.Store {
	t.Helper()
	policy, err := store.NewFlatFeePolicy(
		mustMoney(t, minOrder), mustMoney(t, "3.50"), nil,
		[]kernel.FulfillmentType{kernel.FulfillmentTypeDelivery},
	)
	require.NoError(t, err)
	s, err := store.NewStore(kernel.NewUUID(), "Luigi's", mustPoint(t, 52.52, 13.40), policy)
	require.NoError(t, err)
	return s
}

func pickupOnlyStore(t *testing.T) *store.Store {
	t.Helper()
	policy, err := store.NewFlatFeePolicy(
		mustMoney(t, "0.00"), mustMoney(t, "0.00"), nil,
		[]kernel.FulfillmentType{kernel.FulfillmentTypePickup},
	)
	require.NoError(t, err)
	s, err := store.NewStore(kernel.NewUUID(), "Counter Only", mustPoint(t, 52.52, 13.40), policy)
	require.NoError(t, err)
	return s
}

func newQuoteHandler(t *testing.T, catalog *MockStoreCatalog, routing *routingStub) queries.GetDeliveryQuoteQueryHandler {
	t.Helper()
	estimator, err := services.NewDeliveryEstimator(routing)
	require.NoError(t, err)
	return queries.NewGetDeliveryQuoteQueryHandler(catalog, estimator)
}

func TestGetDeliveryQuoteQueryHandler_Handle(t *testing.T) {
	t.Run("should price quote from routed distance", func(t *testing.T) {
		ctx := t.Context()
		testStore := deliveryStore(t, "10.00")
		catalog := new(MockStoreCatalog)
		catalog.On("GetStore", ctx, testStore.ID()).Return(testStore, nil).Once()

		h := newQuoteHandler(t, catalog, &routingStub{leg: services.RouteLeg{DistanceKm: 4.2, DurationMin: 18}})

		query, err := queries.NewGetDeliveryQuoteQuery(
			testStore.ID(), mustPoint(t, 52.50, 13.45), mustMoney(t, "19.00"))
		require.NoError(t, err)

		response, err := h.Handle(ctx, query)

		require.NoError(t, err)
		assert.InDelta(t, 4.2, response.DistanceKm, 0.001)
		assert.Equal(t, 18, response.DurationMin)
		assert.True(t, response.Fee.IsEqual(mustMoney(t, "3.50")))
		catalog.AssertExpectations(t)
	})

	t.Run("should fail with shortfall below store minimum", func(t *testing.T) {
		ctx := t.Context()
		testStore := deliveryStore(t, "20.00")
		catalog := new(MockStoreCatalog)
		catalog.On("GetStore", ctx, testStore.ID()).Return(testStore, nil).Once()

		h := newQuoteHandler(t, catalog, &routingStub{})

		query, err := queries.NewGetDeliveryQuoteQuery(
			testStore.ID(), mustPoint(t, 52.50, 13.45), mustMoney(t, "18.00"))
		require.NoError(t, err)

		_, err = h.Handle(ctx, query)

		var below *errs.BelowMinimumOrderError
		require.ErrorAs(t, err, &below)
		assert.True(t, below.Shortfall.Equal(mustMoney(t, "2.00").Amount()))
	})

	t.Run("should fail for pickup-only store", func(t *testing.T) {
		ctx := t.Context()
		testStore := pickupOnlyStore(t)
		catalog := new(MockStoreCatalog)
		catalog.On("GetStore", ctx, testStore.ID()).Return(testStore, nil).Once()

		h := newQuoteHandler(t, catalog, &routingStub{})

		query, err := queries.NewGetDeliveryQuoteQuery(
			testStore.ID(), mustPoint(t, 52.50, 13.45), mustMoney(t, "19.00"))
		require.NoError(t, err)

		_, err = h.Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should surface routing unavailability", func(t *testing.T) {
		ctx := t.Context()
		testStore := deliveryStore(t, "10.00")
		catalog := new(MockStoreCatalog)
		catalog.On("GetStore", ctx, testStore.ID()).Return(testStore, nil).Once()

		h := newQuoteHandler(t, catalog, &routingStub{fail: true})

		query, err := queries.NewGetDeliveryQuoteQuery(
			testStore.ID(), mustPoint(t, 52.50, 13.45), mustMoney(t, "19.00"))
		require.NoError(t, err)

		_, err = h.Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrRoutingUnavailable)
	})

	t.Run("should fail for unknown store", func(t *testing.T) {
		ctx := t.Context()
		storeID := kernel.NewUUID()
		catalog := new(MockStoreCatalog)
		catalog.On("GetStore", ctx, storeID).
			Return(nil, errs.NewObjectNotFoundError("store", storeID)).Once()

		h := newQuoteHandler(t, catalog, &routingStub{})

		query, err := queries.NewGetDeliveryQuoteQuery(
			storeID, mustPoint(t, 52.50, 13.45), mustMoney(t, "19.00"))
		require.NoError(t, err)

		_, err = h.Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
