package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand represents a request to empty a session's cart.
// Clearing an already empty cart succeeds.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	sessionID string

	guard guard.ConstructorGuard
}

// NewClearCartCommand creates a command to clear a cart.
func NewClearCartCommand(sessionID string) (ClearCartCommand, error) {
	if sessionID == "" {
		return ClearCartCommand{}, ErrSessionIDIsRequired
	}

	return ClearCartCommand{
		sessionID: sessionID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

// SessionID returns the cart session key.
func (c ClearCartCommand) SessionID() string { return c.sessionID }
