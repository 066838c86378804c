// Package store holds the store aggregate as the fulfillment core sees it:
// an identity, an owner, a pickup location, and the delivery policy the
// estimator applies. Catalog management and store onboarding live outside
// the core; this package is the contract the ports hand back.
package store

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrStoreIsNotConstructed is returned when validating a Store that was
// not created via NewStore or RestoreStore.
var ErrStoreIsNotConstructed = errs.NewValueIsRequiredError(
	"store must be created via NewStore or RestoreStore")

// Store is a selling location owned by exactly one person. Its location is
// the routing origin for delivery quotes and its policy prices them.
type Store struct {
	id       kernel.UUID
	ownerID  kernel.UUID
	name     string
	location kernel.GeoPoint
	policy   DeliveryPolicy

	guard guard.ConstructorGuard
}

// NewStore creates a store with a fresh identity.
func NewStore(ownerID kernel.UUID, name string, location kernel.GeoPoint, policy DeliveryPolicy) (*Store, error) {
	return newStore(kernel.NewUUID(), ownerID, name, location, policy)
}

// RestoreStore reconstructs a store from persistence.
func RestoreStore(id, ownerID kernel.UUID, name string, location kernel.GeoPoint, policy DeliveryPolicy) (*Store, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return newStore(id, ownerID, name, location, policy)
}

func newStore(id, ownerID kernel.UUID, name string, location kernel.GeoPoint, policy DeliveryPolicy) (*Store, error) {
	if err := errors.Join(
		ownerID.Validate(),
		location.Validate(),
		policy.Validate(),
	); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Store{
		id:       id,
		ownerID:  ownerID,
		name:     name,
		location: location,
		policy:   policy,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the store was created via a constructor.
func (s *Store) Validate() error {
	return s.guard.Validate(ErrStoreIsNotConstructed)
}

// ID returns the store identifier.
func (s *Store) ID() kernel.UUID {
	return s.id
}

// OwnerID returns the identifier of the owning person.
func (s *Store) OwnerID() kernel.UUID {
	return s.ownerID
}

// Name returns the display name.
func (s *Store) Name() string {
	return s.name
}

// Location returns the pickup location, used as the routing origin.
func (s *Store) Location() kernel.GeoPoint {
	return s.location
}

// Policy returns the delivery policy.
func (s *Store) Policy() DeliveryPolicy {
	return s.policy
}

// IsOwnedBy reports whether the given person owns this store.
func (s *Store) IsOwnedBy(personID kernel.UUID) bool {
	return s.ownerID.IsEqual(personID)
}
