package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/store"
)

// StoreCatalog is the read contract to store records: location, owner,
// and the delivery policy the estimator applies.
type StoreCatalog interface {
	// GetStore returns the store or an ObjectNotFoundError.
	GetStore(ctx context.Context, id kernel.UUID) (*store.Store, error)
}
