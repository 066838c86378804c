package services

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/store"
	"fulfillment/internal/pkg/errs"
)

// RouteLeg is the distance/duration pair the routing capability returns
// for one origin-destination pair.
type RouteLeg struct {
	DistanceKm  float64
	DurationMin int
}

// RoutingClient is the contract to the external routing capability. Calls
// are blocking I/O with a bounded timeout enforced by the implementation;
// any returned error is treated as routing unavailability, never as a
// default distance.
type RoutingClient interface {
	// Route returns distance and duration for a single origin-destination pair.
	Route(ctx context.Context, origin, destination kernel.GeoPoint) (RouteLeg, error)

	// RouteMatrix returns one leg per destination for a shared origin,
	// aligned by index with the destinations slice.
	RouteMatrix(ctx context.Context, origin kernel.GeoPoint, destinations []kernel.GeoPoint) ([]RouteLeg, error)
}

// DeliveryEstimator is the domain service producing priced, timed
// delivery quotes.
//
// Business rules:
//   - PICKUP quotes are fixed to zero and never touch routing
//   - a DELIVERY subtotal below the store minimum fails with
//     BelowMinimumOrder before any routing call, carrying the shortfall
//   - a routing failure surfaces as RoutingUnavailable; the estimator
//     never substitutes a default distance and never retries
//   - the fee comes from the store's policy: flat, or base plus per-km,
//     with an optional free-over threshold
type DeliveryEstimator struct {
	routing RoutingClient
}

// NewDeliveryEstimator creates the estimator over a routing client.
func NewDeliveryEstimator(routing RoutingClient) (*DeliveryEstimator, error) {
	if routing == nil {
		return nil, errs.NewValueIsRequiredError("routing client")
	}
	return &DeliveryEstimator{routing: routing}, nil
}

// Quote produces the delivery quote for a candidate order.
//
// For pickup the zero quote is returned immediately. For delivery the
// subtotal is checked against the store minimum, the route is fetched,
// and the policy fee is applied to the routed distance.
func (e *DeliveryEstimator) Quote(
	ctx context.Context,
	origin, destination kernel.GeoPoint,
	fulfillment kernel.FulfillmentType,
	subtotal kernel.Money,
	policy store.DeliveryPolicy,
) (delivery.Quote, error) {
	if err := fulfillment.Validate(); err != nil {
		return delivery.Quote{}, err
	}
	if fulfillment.IsPickup() {
		return delivery.PickupQuote(), nil
	}

	if err := subtotal.Validate(); err != nil {
		return delivery.Quote{}, err
	}
	if err := policy.Validate(); err != nil {
		return delivery.Quote{}, err
	}
	if subtotal.LessThan(policy.MinimumOrder()) {
		return delivery.Quote{}, errs.NewBelowMinimumOrderError(
			policy.MinimumOrder().Amount(), subtotal.Amount())
	}

	leg, err := e.route(ctx, origin, destination)
	if err != nil {
		return delivery.Quote{}, err
	}

	return e.priceLeg(leg, subtotal, policy)
}

// QuoteMany produces one delivery quote per destination using a single
// distance-matrix call, aligned by index. Semantics per destination match
// Quote for a delivery order.
func (e *DeliveryEstimator) QuoteMany(
	ctx context.Context,
	origin kernel.GeoPoint,
	destinations []kernel.GeoPoint,
	subtotal kernel.Money,
	policy store.DeliveryPolicy,
) ([]delivery.Quote, error) {
	if len(destinations) == 0 {
		return nil, errs.NewValueIsRequiredError("destinations")
	}
	if err := subtotal.Validate(); err != nil {
		return nil, err
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if subtotal.LessThan(policy.MinimumOrder()) {
		return nil, errs.NewBelowMinimumOrderError(
			policy.MinimumOrder().Amount(), subtotal.Amount())
	}
	if err := origin.Validate(); err != nil {
		return nil, err
	}
	for _, d := range destinations {
		if err := d.Validate(); err != nil {
			return nil, err
		}
	}

	legs, err := e.routing.RouteMatrix(ctx, origin, destinations)
	if err != nil {
		return nil, errs.NewRoutingUnavailableError(err)
	}
	if len(legs) != len(destinations) {
		return nil, errs.NewRoutingUnavailableError(
			errs.NewValueIsInvalidError("matrix result count does not match destinations"))
	}

	quotes := make([]delivery.Quote, 0, len(legs))
	for _, leg := range legs {
		q, err := e.priceLeg(leg, subtotal, policy)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}

	return quotes, nil
}

// LiveEstimate re-routes an in-flight delivery from the driver's current
// position to the delivery address. The fee is the one fixed at
// placement; only distance and duration are recomputed.
func (e *DeliveryEstimator) LiveEstimate(
	ctx context.Context,
	driverPosition, destination kernel.GeoPoint,
	fee kernel.Money,
) (delivery.Quote, error) {
	if err := fee.Validate(); err != nil {
		return delivery.Quote{}, err
	}

	leg, err := e.route(ctx, driverPosition, destination)
	if err != nil {
		return delivery.Quote{}, err
	}

	return delivery.NewQuote(leg.DistanceKm, leg.DurationMin, fee)
}

func (e *DeliveryEstimator) route(ctx context.Context, origin, destination kernel.GeoPoint) (RouteLeg, error) {
	if err := origin.Validate(); err != nil {
		return RouteLeg{}, err
	}
	if err := destination.Validate(); err != nil {
		return RouteLeg{}, err
	}

	leg, err := e.routing.Route(ctx, origin, destination)
	if err != nil {
		return RouteLeg{}, errs.NewRoutingUnavailableError(err)
	}
	if leg.DistanceKm < 0 || leg.DurationMin < 0 {
		return RouteLeg{}, errs.NewRoutingUnavailableError(
			errs.NewValueIsInvalidError("negative route leg"))
	}

	return leg, nil
}

func (e *DeliveryEstimator) priceLeg(
	leg RouteLeg,
	subtotal kernel.Money,
	policy store.DeliveryPolicy,
) (delivery.Quote, error) {
	fee, err := policy.FeeFor(leg.DistanceKm, subtotal)
	if err != nil {
		return delivery.Quote{}, err
	}

	return delivery.NewQuote(leg.DistanceKm, leg.DurationMin, fee)
}
