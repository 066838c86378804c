package order

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Role classifies the party attempting an order transition.
type Role int

const (
	// RoleUnknown is the invalid zero value.
	RoleUnknown Role = iota
	// RoleCustomer is the person who placed the order.
	RoleCustomer
	// RoleStoreOwner is the person who owns the selling store.
	RoleStoreOwner
	// RoleDriver is the person delivering the order.
	RoleDriver
)

// RoleFromString parses the wire form of a role.
func RoleFromString(s string) (Role, error) {
	switch s {
	case "CUSTOMER":
		return RoleCustomer, nil
	case "STORE_OWNER":
		return RoleStoreOwner, nil
	case "DRIVER":
		return RoleDriver, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidError("role: " + s)
	}
}

// Validate rejects the zero value.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleStoreOwner, RoleDriver:
		return nil
	default:
		return errs.NewValueIsRequiredError("role")
	}
}

// String returns the wire form of the role.
func (r Role) String() string {
	switch r {
	case RoleCustomer:
		return "CUSTOMER"
	case RoleStoreOwner:
		return "STORE_OWNER"
	case RoleDriver:
		return "DRIVER"
	default:
		return "UNKNOWN"
	}
}

// ErrActorIsNotConstructed is returned when validating an Actor that was
// not created via NewActor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError(
	"actor must be created via NewActor")

// Actor is the identity and role of the party attempting a transition.
// Authorization is a pure function of the actor and its relationship to
// the order: owning the store, having placed the order, or being the
// assigned driver. Roles alone grant nothing.
type Actor struct {
	id   kernel.UUID
	role Role

	guard guard.ConstructorGuard
}

// NewActor creates an actor with a validated identity and role.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:   id,
		role: role,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the actor was created via NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's identity.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// capability is a relationship between an actor and a specific order that
// a transition may require.
type capability int

const (
	// asCustomer requires the actor to be the customer who placed the order.
	asCustomer capability = iota
	// asStoreOwner requires the actor to own the selling store.
	asStoreOwner
	// asDriver requires a driver: the assigned one, or any driver while
	// no driver has been assigned yet.
	asDriver
)

// capabilitiesOf derives the actor's capabilities on this order.
func (o *Order) capabilitiesOf(actor Actor) map[capability]bool {
	caps := make(map[capability]bool, 3)

	switch actor.Role() {
	case RoleCustomer:
		caps[asCustomer] = actor.ID().IsEqual(o.customerID)
	case RoleStoreOwner:
		caps[asStoreOwner] = actor.ID().IsEqual(o.storeOwnerID)
	case RoleDriver:
		caps[asDriver] = o.driverID == nil || actor.ID().IsEqual(*o.driverID)
	case RoleUnknown:
	}

	return caps
}

// authorize fails with an UnauthorizedError unless the actor holds at
// least one of the capabilities the transition declares.
func (o *Order) authorize(actor Actor, action string, allowed ...capability) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	caps := o.capabilitiesOf(actor)
	for _, c := range allowed {
		if caps[c] {
			return nil
		}
	}

	return errs.NewUnauthorizedError(actor.ID().String(), action)
}
