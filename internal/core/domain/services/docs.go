// Package services contains stateless domain services that coordinate
// multiple aggregates or external capabilities without belonging to any
// single aggregate.
//
// DeliveryEstimator turns routing results and store policy into priced
// delivery quotes. It depends on the RoutingClient contract only; the
// HTTP distance-matrix adapter implements it.
package services
