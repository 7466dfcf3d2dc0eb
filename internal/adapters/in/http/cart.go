package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
)

// GetCart handles GET /api/v1/cart - shows the caller's cart priced from the
// live menu.
func (s *Server) GetCart(ctx echo.Context) error {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewViewCartQuery(identity.AccountID)
	if err != nil {
		return fail(ctx, err)
	}

	view, err := s.queries.ViewCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := Cart{
		CartID:                optionalIDString(view.CartID),
		RestaurantID:          optionalIDString(view.RestaurantID),
		Items:                 make([]CartItem, len(view.Items)),
		Subtotal:              view.Subtotal,
		RestaurantUnavailable: view.RestaurantUnavailable,
	}
	for i, item := range view.Items {
		response.Items[i] = CartItem{
			MenuItemID: item.MenuItemID.String(),
			Name:       item.Name,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddCartItem handles POST /api/v1/cart/items - adds an item to the caller's
// cart, creating the cart on first use.
func (s *Server) AddCartItem(ctx echo.Context) error {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var request AddCartItemRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	menuItemID, err := kernel.UUIDFromString(request.MenuItemID)
	if err != nil {
		return badRequest(ctx, "Invalid menu item ID")
	}

	command, err := commands.NewAddCartItemCommand(identity.AccountID, menuItemID, request.Quantity)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.AddCartItem.Handle(ctx.Request().Context(), command); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveCartItem handles DELETE /api/v1/cart/items/:id - decrements one unit,
// or removes the whole line with ?all=true.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	menuItemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid menu item ID")
	}

	all := ctx.QueryParam("all") == "true"

	command, err := commands.NewRemoveCartItemCommand(identity.AccountID, menuItemID, all)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.RemoveCartItem.Handle(ctx.Request().Context(), command); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func optionalIDString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
