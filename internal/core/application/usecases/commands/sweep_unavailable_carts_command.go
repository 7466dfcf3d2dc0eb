package commands

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrSweepUnavailableCartsCommandIsNotConstructed = errors.New(
	"SweepUnavailableCartsCommand must be created via NewSweepUnavailableCartsCommand constructor",
)

// SweepUnavailableCartsCommand triggers a batch clear of carts whose
// restaurant has been suspended or banned since the items were added. The
// same rule is applied lazily when a cart is viewed; the sweep keeps storage
// from accumulating dead carts between views.
type SweepUnavailableCartsCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepUnavailableCartsCommand creates a parameterless sweep command.
func NewSweepUnavailableCartsCommand() SweepUnavailableCartsCommand {
	return SweepUnavailableCartsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *SweepUnavailableCartsCommand) Validate() error {
	return c.guard.Validate(ErrSweepUnavailableCartsCommandIsNotConstructed)
}
