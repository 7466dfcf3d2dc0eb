package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/affiliation"
	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
)

// fail translates use-case errors into HTTP responses. Expected domain
// outcomes map to 4xx codes; anything unrecognized is a 500 with the detail
// kept out of the body.
func fail(ctx echo.Context, err error) error {
	code := statusCode(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		ctx.Logger().Errorf("request failed: %v", err)
		message = "Internal server error"
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, cart.ErrLineNotFound):
		return http.StatusNotFound

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrPasswordTooShort),
		errors.Is(err, order.ErrCardInfoRequired),
		errors.Is(err, services.ErrCartIsEmpty):
		return http.StatusBadRequest

	case errors.Is(err, account.ErrAccountBlocked),
		errors.Is(err, account.ErrRoleMismatch),
		errors.Is(err, affiliation.ErrNotAffiliated),
		errors.Is(err, affiliation.ErrNotRequestOwner),
		errors.Is(err, commands.ErrNotOrderOwner),
		errors.Is(err, commands.ErrNotOrderParticipant),
		errors.Is(err, commands.ErrTransitionNotPermitted),
		errors.Is(err, commands.ErrNotMenuItemOwner),
		errors.Is(err, commands.ErrAdminOnly),
		errors.Is(err, commands.ErrCannotRetireAccount):
		return http.StatusForbidden

	case errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrAlreadyClaimed),
		errors.Is(err, order.ErrNotClaimable),
		errors.Is(err, order.ErrNotCancellable),
		errors.Is(err, cart.ErrMixedRestaurant),
		errors.Is(err, menu.ErrItemUnavailable),
		errors.Is(err, menu.ErrItemInActiveOrder),
		errors.Is(err, account.ErrRestaurantUnavailable),
		errors.Is(err, account.ErrAdminCannotBeBlocked),
		errors.Is(err, affiliation.ErrRequestAlreadyResolved),
		errors.Is(err, commands.ErrEmailAlreadyRegistered),
		errors.Is(err, commands.ErrRequestAlreadyFiled):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
