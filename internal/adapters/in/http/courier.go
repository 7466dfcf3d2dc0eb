package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
)

// GetClaimableOrders handles GET /api/v1/courier/orders - orders the caller
// could claim right now, oldest first.
func (s *Server) GetClaimableOrders(ctx echo.Context) error {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetClaimableOrdersQuery(identity.AccountID)
	if err != nil {
		return fail(ctx, err)
	}

	orders, err := s.queries.GetClaimableOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]ClaimableOrder, len(orders))
	for i, claimable := range orders {
		response[i] = ClaimableOrder{
			ID:              claimable.ID.String(),
			RestaurantID:    claimable.RestaurantID.String(),
			DeliveryAddress: claimable.DeliveryAddress,
			TotalAmount:     claimable.TotalAmount,
			CreatedAt:       claimable.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ClaimOrder handles POST /api/v1/courier/orders/:id/claim - assigns the
// order to the caller. Losing a claim race yields a conflict.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	command, err := commands.NewClaimOrderCommand(identity.AccountID, orderID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.ClaimOrder.Handle(ctx.Request().Context(), command); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
