package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
)

// GetRestaurantMenu handles GET /api/v1/restaurants/:id/menu - the public
// menu listing used for browsing before ordering.
func (s *Server) GetRestaurantMenu(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid restaurant ID")
	}

	uow := s.uowFactory.Create()
	items, err := uow.MenuItemRepository().GetAllByRestaurant(ctx.Request().Context(), restaurantID)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]MenuItemResponse, len(items))
	for i, item := range items {
		response[i] = MenuItemResponse{
			ID:          item.ID().String(),
			Name:        item.Name(),
			Description: item.Description(),
			Price:       item.Price(),
			Available:   item.IsAvailable(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateMenuItem handles POST /api/v1/menu - adds an item to the caller's
// menu.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var request MenuItemRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	menuItemID := kernel.NewUUID()
	command, err := commands.NewCreateMenuItemCommand(
		menuItemID, identity.AccountID,
		request.Name, request.Description,
		request.Price,
	)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.CreateMenuItem.Handle(ctx.Request().Context(), command); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, MenuItemResponse{
		ID:          menuItemID.String(),
		Name:        request.Name,
		Description: request.Description,
		Price:       request.Price,
		Available:   true,
	})
}

// UpdateMenuItem handles PUT /api/v1/menu/:id - edits name, description, and
// price. Items referenced by an active order cannot be edited.
func (s *Server) UpdateMenuItem(ctx echo.Context) error {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	menuItemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid menu item ID")
	}

	var request MenuItemRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	command, err := commands.NewUpdateMenuItemCommand(
		menuItemID, identity.AccountID,
		request.Name, request.Description,
		request.Price,
	)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.UpdateMenuItem.Handle(ctx.Request().Context(), command); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteMenuItem handles DELETE /api/v1/menu/:id - removes an item unless an
// active order references it.
func (s *Server) DeleteMenuItem(ctx echo.Context) error {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	menuItemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid menu item ID")
	}

	command, err := commands.NewDeleteMenuItemCommand(menuItemID, identity.AccountID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.DeleteMenuItem.Handle(ctx.Request().Context(), command); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetMenuItemAvailability handles PATCH /api/v1/menu/:id/availability -
// toggles an item on or off the menu. Allowed even while orders reference
// the item.
func (s *Server) SetMenuItemAvailability(ctx echo.Context) error {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	menuItemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid menu item ID")
	}

	var request SetAvailabilityRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	command, err := commands.NewSetMenuItemAvailabilityCommand(
		menuItemID, identity.AccountID, request.Available,
	)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.SetMenuItemAvailability.Handle(ctx.Request().Context(), command); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
