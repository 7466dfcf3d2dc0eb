package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// Checkout handles POST /api/v1/orders - converts the caller's cart into an
// order.
func (s *Server) Checkout(ctx echo.Context) error {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var request CheckoutRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	paymentMethod, err := order.PaymentMethodFromString(request.PaymentMethod)
	if err != nil {
		return badRequest(ctx, "Unknown payment method: "+request.PaymentMethod)
	}
	deliveryType, err := order.DeliveryTypeFromString(request.DeliveryType)
	if err != nil {
		return badRequest(ctx, "Unknown delivery type: "+request.DeliveryType)
	}

	var card *order.CardInfo
	if request.CardNumber != "" || request.CardExpiry != "" || request.CardCVC != "" {
		card = &order.CardInfo{
			Number: request.CardNumber,
			Expiry: request.CardExpiry,
			CVC:    request.CardCVC,
		}
	}

	command, err := commands.NewCheckoutCommand(
		identity.AccountID,
		request.DeliveryAddress,
		paymentMethod,
		deliveryType,
		request.TipAmount,
		card,
	)
	if err != nil {
		return fail(ctx, err)
	}

	orderID, err := s.commands.Checkout.Handle(ctx.Request().Context(), command)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CheckoutResponse{OrderID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders - the caller's order history. For
// customers that is the orders they placed, for restaurant owners the orders
// placed at their venue.
func (s *Server) GetOrders(ctx echo.Context) error {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var summaries []queries.OrderSummaryResponse
	switch identity.Role {
	case account.Customer:
		query, queryErr := queries.NewGetCustomerOrdersQuery(identity.AccountID)
		if queryErr != nil {
			return fail(ctx, queryErr)
		}
		summaries, err = s.queries.GetCustomerOrders.Handle(ctx.Request().Context(), query)
	case account.RestaurantOwner:
		query, queryErr := queries.NewGetRestaurantOrdersQuery(identity.AccountID)
		if queryErr != nil {
			return fail(ctx, queryErr)
		}
		summaries, err = s.queries.GetRestaurantOrders.Handle(ctx.Request().Context(), query)
	default:
		return fail(ctx, account.ErrRoleMismatch)
	}
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]OrderSummary, len(summaries))
	for i, summary := range summaries {
		response[i] = OrderSummary{
			ID:          summary.ID.String(),
			Status:      summary.Status.String(),
			TotalAmount: summary.TotalAmount,
			CreatedAt:   summary.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - the full order view. Only the
// order's participants and admins may see it.
func (s *Server) GetOrder(ctx echo.Context) error {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	view, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	if !isOrderParticipant(identity, view) {
		return fail(ctx, commands.ErrNotOrderParticipant)
	}

	response := Order{
		ID:              view.ID.String(),
		CustomerID:      optionalIDString(view.CustomerID),
		RestaurantID:    optionalIDString(view.RestaurantID),
		CourierID:       optionalIDString(view.CourierID),
		Items:           make([]OrderItem, len(view.Items)),
		DeliveryAddress: view.DeliveryAddress,
		PaymentMethod:   view.PaymentMethod.String(),
		DeliveryType:    view.DeliveryType.String(),
		TipAmount:       view.TipAmount,
		TotalAmount:     view.TotalAmount,
		Status:          view.Status.String(),
		CreatedAt:       view.CreatedAt,
		MaskedCard:      view.MaskedCard,
	}
	for i, item := range view.Items {
		response.Items[i] = OrderItem{
			MenuItemID: item.MenuItemID.String(),
			Name:       item.Name,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AdvanceOrder handles PATCH /api/v1/orders/:id/status - moves the order one
// step forward, or cancels it, within the caller's role permissions.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var request AdvanceOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	next, err := order.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Unknown status: "+request.Status)
	}

	command, err := commands.NewAdvanceOrderCommand(identity.AccountID, orderID, next)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.AdvanceOrder.Handle(ctx.Request().Context(), command); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - customer-initiated
// cancellation. Repeating the call on an already-cancelled order succeeds.
func (s *Server) CancelOrder(ctx echo.Context) error {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	command, err := commands.NewCancelOrderCommand(orderID, identity.Email)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.CancelOrder.Handle(ctx.Request().Context(), command); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func isOrderParticipant(identity Identity, view queries.GetOrderQueryResponse) bool {
	if identity.Role == account.Admin {
		return true
	}
	for _, participant := range []*kernel.UUID{view.CustomerID, view.RestaurantID, view.CourierID} {
		if participant != nil && participant.IsEqual(identity.AccountID) {
			return true
		}
	}
	return false
}
