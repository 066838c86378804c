// Package cartstore holds session carts in process memory. Carts are
// pre-checkout working state; losing them on restart costs a customer a few
// taps, so they are not persisted. Access is serialized per session so two
// tabs of the same browser cannot lose each other's updates.
package cartstore

import (
	"context"
	"sync"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/keymutex"
)

// Store is the in-memory CartStore implementation.
type Store struct {
	locks *keymutex.KeyMutex

	mu    sync.RWMutex
	carts map[string]*cart.Cart
}

// New creates an empty cart store.
func New() *Store {
	return &Store{
		locks: keymutex.New(),
		carts: make(map[string]*cart.Cart),
	}
}

// Update runs fn against the session's cart under the session lock,
// creating an empty cart on first use.
func (s *Store) Update(_ context.Context, sessionID string, fn func(*cart.Cart) error) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("sessionID")
	}

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	s.mu.Lock()
	c, ok := s.carts[sessionID]
	if !ok {
		c = cart.NewCart()
		s.carts[sessionID] = c
	}
	s.mu.Unlock()

	return fn(c)
}

// View runs fn against the session's cart under the session lock. A missing
// session yields an empty cart view that is not retained.
func (s *Store) View(_ context.Context, sessionID string, fn func(*cart.Cart) error) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("sessionID")
	}

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	s.mu.RLock()
	c, ok := s.carts[sessionID]
	s.mu.RUnlock()
	if !ok {
		c = cart.NewCart()
	}

	return fn(c)
}

// Drop discards the session's cart.
func (s *Store) Drop(_ context.Context, sessionID string) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("sessionID")
	}

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	s.mu.Lock()
	delete(s.carts, sessionID)
	s.mu.Unlock()

	return nil
}
