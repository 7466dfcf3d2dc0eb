package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
)

// RequestAffiliation handles POST /api/v1/affiliations - a courier asks to
// work for a restaurant.
func (s *Server) RequestAffiliation(ctx echo.Context) error {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var request RequestAffiliationRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(request.RestaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant ID")
	}

	requestID := kernel.NewUUID()
	command, err := commands.NewRequestAffiliationCommand(requestID, identity.AccountID, restaurantID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.RequestAffiliation.Handle(ctx.Request().Context(), command); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RequestAffiliationResponse{RequestID: requestID.String()})
}

// GetAffiliationRequests handles GET /api/v1/affiliations - the requests
// filed with the caller's restaurant, newest first.
func (s *Server) GetAffiliationRequests(ctx echo.Context) error {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetAffiliationRequestsQuery(identity.AccountID)
	if err != nil {
		return fail(ctx, err)
	}

	requests, err := s.queries.GetAffiliationRequests.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]AffiliationRequest, len(requests))
	for i, request := range requests {
		response[i] = AffiliationRequest{
			ID:        request.ID.String(),
			CourierID: request.CourierID.String(),
			Status:    request.Status.String(),
			CreatedAt: request.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RespondAffiliation handles POST /api/v1/affiliations/:id/respond - the
// restaurant accepts or rejects a pending request.
func (s *Server) RespondAffiliation(ctx echo.Context) error {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	requestID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid request ID")
	}

	var request RespondAffiliationRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	command, err := commands.NewRespondAffiliationCommand(identity.AccountID, requestID, request.Accept)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.RespondAffiliation.Handle(ctx.Request().Context(), command); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelAffiliationRequest handles DELETE /api/v1/affiliations/:id - the
// courier withdraws a still-pending request.
func (s *Server) CancelAffiliationRequest(ctx echo.Context) error {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	requestID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid request ID")
	}

	command, err := commands.NewCancelAffiliationRequestCommand(identity.AccountID, requestID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.CancelAffiliationRequest.Handle(ctx.Request().Context(), command); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
