package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// ViewCartQueryHandler assembles the cart view. Unlike the other read
// handlers it goes through the unit of work: if the cart's restaurant has
// been suspended or banned since the items were added, viewing the cart
// clears it in place, and that write must commit.
type ViewCartQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewViewCartQueryHandler creates a handler for cart views.
func NewViewCartQueryHandler(uowFactory ports.UnitOfWorkFactory) ViewCartQueryHandler {
	return ViewCartQueryHandler{uowFactory: uowFactory}
}

// Handle returns the customer's cart priced from the current catalog. A
// customer without a cart gets an empty view, not an error.
func (h ViewCartQueryHandler) Handle(ctx context.Context, query ViewCartQuery) (ViewCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ViewCartQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ViewCartQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()

	customerCart, err := cartRepo.GetByCustomer(ctx, query.CustomerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ViewCartQueryResponse{}, nil
	}
	if err != nil {
		return ViewCartQueryResponse{}, err
	}

	cartID := customerCart.ID()
	response := ViewCartQueryResponse{CartID: &cartID}

	if customerCart.IsEmpty() {
		return response, nil
	}

	restaurantID := *customerCart.Restaurant()

	restaurant, err := uow.AccountRepository().Get(ctx, restaurantID)
	if err != nil {
		return ViewCartQueryResponse{}, err
	}
	if restaurant.IsBlocked() {
		customerCart.Clear()
		if err = cartRepo.Update(ctx, customerCart); err != nil {
			return ViewCartQueryResponse{}, err
		}
		if err = uow.Commit(ctx); err != nil {
			return ViewCartQueryResponse{}, err
		}
		response.RestaurantUnavailable = true
		return response, nil
	}

	items, err := uow.MenuItemRepository().GetAllByRestaurant(ctx, restaurantID)
	if err != nil {
		return ViewCartQueryResponse{}, err
	}
	names := make(map[kernel.UUID]int, len(items))
	for i, item := range items {
		names[item.ID()] = i
	}

	response.RestaurantID = &restaurantID
	for _, line := range customerCart.Lines() {
		itemResponse := ViewCartItemResponse{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
		}
		if i, ok := names[line.MenuItemID]; ok {
			itemResponse.Name = items[i].Name()
			itemResponse.UnitPrice = items[i].Price()
		}
		response.Items = append(response.Items, itemResponse)
		response.Subtotal += itemResponse.UnitPrice * float64(itemResponse.Quantity)
	}

	return response, nil
}
