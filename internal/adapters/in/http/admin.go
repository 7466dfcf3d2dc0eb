package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
)

// SetAccountStatus handles PATCH /api/v1/admin/accounts/:id/status - an
// admin suspends, bans, or reinstates an account. Blocking a restaurant
// cancels its open orders in the same transaction.
func (s *Server) SetAccountStatus(ctx echo.Context) error {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	accountID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid account ID")
	}

	var request SetAccountStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := account.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Unknown account status: "+request.Status)
	}

	command, err := commands.NewSetAccountStatusCommand(identity.AccountID, accountID, status)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.SetAccountStatus.Handle(ctx.Request().Context(), command); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApproveRestaurant handles POST /api/v1/admin/accounts/:id/approve - an
// admin approves a restaurant for taking orders.
func (s *Server) ApproveRestaurant(ctx echo.Context) error {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	restaurantID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid account ID")
	}

	command, err := commands.NewApproveRestaurantCommand(identity.AccountID, restaurantID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.ApproveRestaurant.Handle(ctx.Request().Context(), command); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RetireAccount handles POST /api/v1/admin/accounts/:id/retire - removes an
// account and detaches or cleans up everything it owned. The owner may
// retire their own account through the same route.
func (s *Server) RetireAccount(ctx echo.Context) error {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	accountID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid account ID")
	}

	command, err := commands.NewRetireAccountCommand(identity.AccountID, accountID)
	if err != nil {
		return fail(ctx, err)
	}

	summary, err := s.commands.RetireAccount.Handle(ctx.Request().Context(), command)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RetireAccountResponse{
		DetachedOrders:       summary.DetachedOrders,
		CancelledOrders:      summary.CancelledOrders,
		DeletedMenuItems:     summary.DeletedMenuItems,
		DeletedCarts:         summary.DeletedCarts,
		DeletedRequests:      summary.DeletedRequests,
		UnaffiliatedCouriers: summary.UnaffiliatedCouriers,
	})
}
