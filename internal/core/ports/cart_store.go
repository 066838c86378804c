package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/cart"
)

// CartStore holds one cart per customer session. Implementations must
// serialize access per session: Update and View run their closure under
// an exclusive per-session lock so that concurrent requests from the same
// session (two browser tabs) cannot lose updates.
type CartStore interface {
	// Update runs fn against the session's cart under the session lock,
	// creating an empty cart on first use. Errors from fn are returned
	// unchanged; the cart keeps whatever state fn left it in.
	Update(ctx context.Context, sessionID string, fn func(*cart.Cart) error) error

	// View runs fn against the session's cart under the session lock
	// without creating one; a missing session yields an empty cart view.
	View(ctx context.Context, sessionID string, fn func(*cart.Cart) error) error

	// Drop discards the session's cart, used after successful checkout.
	Drop(ctx context.Context, sessionID string) error
}
