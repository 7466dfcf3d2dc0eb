package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/pkg/errs"
)

// AddCartItemCommandHandler handles putting menu items into customer carts.
// Runs the full gate chain before the cart mutates: the customer must be
// active, the item available, and the item's restaurant approved, active, and
// open. The single-restaurant cart rule is enforced by the aggregate itself.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartItemCommandHandler creates a handler for cart additions.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the addition. The cart is created lazily on the customer's
// first add. Quantities for an item already in the cart are additive.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, command AddCartItemCommand) error {
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

	customer, err := uow.AccountRepository().Get(ctx, command.CustomerID())
	if err != nil {
		return err
	}
	if err = customer.EnsureActive(); err != nil {
		return err
	}

	item, err := uow.MenuItemRepository().Get(ctx, command.MenuItemID())
	if err != nil {
		return err
	}
	if !item.IsAvailable() {
		return menu.ErrItemUnavailable
	}

	restaurant, err := uow.AccountRepository().Get(ctx, item.Restaurant())
	if err != nil {
		return err
	}
	if err = restaurant.EnsureOrderable(); err != nil {
		return err
	}

	cartRepo := uow.CartRepository()

	customerCart, err := cartRepo.GetByCustomer(ctx, command.CustomerID())
	created := false
	if errors.Is(err, errs.ErrObjectNotFound) {
		customerCart, err = cart.NewCart(kernel.NewUUID(), command.CustomerID())
		created = true
	}
	if err != nil {
		return err
	}

	if err = customerCart.AddItem(item.ID(), item.Restaurant(), command.Quantity()); err != nil {
		return err
	}

	if created {
		err = cartRepo.Add(ctx, customerCart)
	} else {
		err = cartRepo.Update(ctx, customerCart)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
