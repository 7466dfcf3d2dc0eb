package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/services"
)

// CheckoutCommandHandler converts a customer's cart into an order. The order,
// its payment record, and the cleared cart are committed in one transaction:
// either the customer ends up with an order and an empty cart, or with their
// cart untouched.
//
// Example:
//
//	handler := NewCheckoutCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrCartIsEmpty):
//	    // nothing to check out
//	case errors.Is(err, account.ErrRestaurantUnavailable):
//	    // restaurant suspended or closed since the items were added
//	case err != nil:
//	    return err
//	}
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(uowFactory CheckoutUoWFactory) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checkout and returns the created order's ID. All gate
// checks, the price snapshot, and the total computation live in the checkout
// domain service; this handler assembles its inputs and persists its outputs.
func (h CheckoutCommandHandler) Handle(ctx context.Context, command CheckoutCommand) (kernel.UUID, error) {
	if err := command.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customer, err := uow.AccountRepository().Get(ctx, command.CustomerID())
	if err != nil {
		return kernel.UUID{}, err
	}

	cartRepo := uow.CartRepository()
	customerCart, err := cartRepo.GetByCustomer(ctx, command.CustomerID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if customerCart.IsEmpty() {
		return kernel.UUID{}, services.ErrCartIsEmpty
	}

	restaurant, err := uow.AccountRepository().Get(ctx, *customerCart.Restaurant())
	if err != nil {
		return kernel.UUID{}, err
	}

	items, err := uow.MenuItemRepository().GetAllByRestaurant(ctx, restaurant.ID())
	if err != nil {
		return kernel.UUID{}, err
	}
	catalog := make(map[kernel.UUID]*menu.MenuItem, len(items))
	for _, item := range items {
		catalog[item.ID()] = item
	}

	result, err := services.NewCheckoutService().Checkout(
		customer,
		restaurant,
		customerCart,
		catalog,
		services.CheckoutRequest{
			DeliveryAddress: command.DeliveryAddress(),
			PaymentMethod:   command.PaymentMethod(),
			DeliveryType:    command.DeliveryType(),
			TipAmount:       command.TipAmount(),
			Card:            command.Card(),
		},
		time.Now().UTC(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, result.Order); err != nil {
		return kernel.UUID{}, err
	}
	if err = orderRepo.AddPayment(ctx, result.Payment); err != nil {
		return kernel.UUID{}, err
	}
	if err = cartRepo.Update(ctx, customerCart); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return result.Order.ID(), nil
}
