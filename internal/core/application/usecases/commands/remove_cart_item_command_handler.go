package commands

import (
	"context"
)

// RemoveCartItemCommandHandler handles taking items out of customer carts.
// Removal needs no gate checks: a customer may always empty their cart, even
// when the restaurant has since closed or been suspended.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveCartItemCommandHandler creates a handler for cart removals.
func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal. Returns cart.ErrLineNotFound when the item is
// not in the cart, and errs.ErrObjectNotFound when the customer has no cart.
func (h RemoveCartItemCommandHandler) Handle(ctx context.Context, command RemoveCartItemCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()

	customerCart, err := cartRepo.GetByCustomer(ctx, command.CustomerID())
	if err != nil {
		return err
	}

	if command.All() {
		err = customerCart.RemoveAll(command.MenuItemID())
	} else {
		err = customerCart.RemoveOne(command.MenuItemID())
	}
	if err != nil {
		return err
	}

	if err = cartRepo.Update(ctx, customerCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
