package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/order"
)

var (
	// ErrTransitionNotPermitted is returned when the caller's role may not
	// set the requested order status.
	ErrTransitionNotPermitted = errors.New("caller may not set this order status")

	// ErrNotOrderParticipant is returned when the caller is not the order's
	// restaurant or assigned courier.
	ErrNotOrderParticipant = errors.New("order belongs to a different restaurant or courier")
)

// AdvanceOrderCommandHandler moves orders through their lifecycle. Kitchen
// statuses belong to the order's restaurant, delivery statuses to the
// assigned courier, and admins may set anything. The owning customer may
// request CancelledByCustomer here as well; it takes the same idempotent
// path as the dedicated cancel endpoint. Concurrent updates are caught by
// the order row's version check at persistence time.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceOrderCommandHandler creates a handler for status transitions.
func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition. Returns order.ErrInvalidTransition for
// steps the state machine forbids, ErrTransitionNotPermitted for statuses
// outside the caller's role, and ErrNotOrderParticipant when the caller is
// not involved with the order.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, command AdvanceOrderCommand) error {
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

	caller, err := uow.AccountRepository().Get(ctx, command.CallerID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	theOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = authorizeTransition(caller, theOrder, command.Next()); err != nil {
		return err
	}

	if caller.Role() == account.Customer && command.Next() == order.CancelledByCustomer {
		err = theOrder.CancelByCustomer()
	} else {
		err = theOrder.Advance(command.Next())
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, theOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func authorizeTransition(caller *account.Account, theOrder *order.Order, next order.Status) error {
	switch caller.Role() {
	case account.Admin:
		return nil

	case account.RestaurantOwner:
		if theOrder.Restaurant() == nil || !theOrder.Restaurant().IsEqual(caller.ID()) {
			return ErrNotOrderParticipant
		}
		switch next {
		case order.InProgress, order.Preparing, order.Ready, order.Cancelled:
			return nil
		}
		return ErrTransitionNotPermitted

	case account.Courier:
		if theOrder.Courier() == nil || !theOrder.Courier().IsEqual(caller.ID()) {
			return ErrNotOrderParticipant
		}
		switch next {
		case order.PickedUp, order.Delivered:
			return nil
		}
		return ErrTransitionNotPermitted

	case account.Customer:
		if theOrder.Customer() == nil || !theOrder.Customer().IsEqual(caller.ID()) {
			return ErrNotOrderParticipant
		}
		if next == order.CancelledByCustomer {
			return nil
		}
		return ErrTransitionNotPermitted

	default:
		return ErrTransitionNotPermitted
	}
}
