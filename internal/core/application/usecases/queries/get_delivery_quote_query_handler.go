package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// GetDeliveryQuoteQueryHandler prices a prospective delivery before
// checkout. It applies the same policy path as order placement, so a quote
// shown here matches the fee the order would be created with.
type GetDeliveryQuoteQueryHandler struct {
	storeCatalog ports.StoreCatalog
	estimator    *services.DeliveryEstimator
}

// NewGetDeliveryQuoteQueryHandler creates a handler for up-front quotes.
func NewGetDeliveryQuoteQueryHandler(
	storeCatalog ports.StoreCatalog,
	estimator *services.DeliveryEstimator,
) GetDeliveryQuoteQueryHandler {
	return GetDeliveryQuoteQueryHandler{
		storeCatalog: storeCatalog,
		estimator:    estimator,
	}
}

// Handle produces the quote. Fails with BelowMinimumOrder when the subtotal
// is under the store minimum and with RoutingUnavailable when the routing
// capability is down.
func (h GetDeliveryQuoteQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryQuoteQuery,
) (GetDeliveryQuoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryQuoteQueryResponse{}, err
	}

	storeRecord, err := h.storeCatalog.GetStore(ctx, query.StoreID())
	if err != nil {
		return GetDeliveryQuoteQueryResponse{}, err
	}
	if !storeRecord.Policy().Accepts(kernel.FulfillmentTypeDelivery) {
		return GetDeliveryQuoteQueryResponse{}, errs.NewValueIsInvalidError(
			"store does not accept DELIVERY orders")
	}

	quote, err := h.estimator.Quote(ctx, storeRecord.Location(), query.Destination(),
		kernel.FulfillmentTypeDelivery, query.Subtotal(), storeRecord.Policy())
	if err != nil {
		return GetDeliveryQuoteQueryResponse{}, err
	}

	return GetDeliveryQuoteQueryResponse{
		DistanceKm:  quote.DistanceKm(),
		DurationMin: quote.DurationMin(),
		Fee:         quote.Fee(),
	}, nil
}
