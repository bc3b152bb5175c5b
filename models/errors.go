package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrNegativeAmount rejects negative inputs to balance operations.
var ErrNegativeAmount = errors.New("amount must not be negative")

// InsufficientFundsError is an expected, non-fatal decline of a purchase.
type InsufficientFundsError struct {
	Price   int
	Balance int
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: price %d, balance %d", e.Price, e.Balance)
}

// Shortfall is how many coins the user is missing.
func (e *InsufficientFundsError) Shortfall() int {
	return e.Price - e.Balance
}

// CooldownActiveError is an expected, non-fatal decline of a free-pack claim.
type CooldownActiveError struct {
	Remaining time.Duration
}

func (e *CooldownActiveError) Error() string {
	return fmt.Sprintf("cooldown active: %s remaining", e.Remaining)
}

// ConfigurationError reports broken static configuration (missing pack,
// empty card pool, rarity with no matching cards). It is fatal to the
// triggering operation and never retried.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}
