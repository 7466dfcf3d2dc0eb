package commands

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/affiliation"
	"fooddelivery/internal/pkg/errs"
)

// ErrRequestAlreadyFiled is returned when the courier already has a pending
// request with the same restaurant.
var ErrRequestAlreadyFiled = errors.New("a pending request to this restaurant already exists")

// RequestAffiliationCommandHandler handles couriers applying to restaurants.
type RequestAffiliationCommandHandler struct {
	uowFactory AffiliationUoWFactory
}

// NewRequestAffiliationCommandHandler creates a handler for affiliation
// applications.
func NewRequestAffiliationCommandHandler(uowFactory AffiliationUoWFactory) RequestAffiliationCommandHandler {
	return RequestAffiliationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the application. The caller must be an active courier and
// the target an existing restaurant account; duplicate pending requests to
// the same restaurant are rejected.
func (h RequestAffiliationCommandHandler) Handle(ctx context.Context, command RequestAffiliationCommand) error {
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

	accountRepo := uow.AccountRepository()

	courier, err := accountRepo.Get(ctx, command.CourierID())
	if err != nil {
		return err
	}
	if _, err = courier.Courier(); err != nil {
		return err
	}
	if err = courier.EnsureActive(); err != nil {
		return err
	}

	restaurant, err := accountRepo.Get(ctx, command.RestaurantID())
	if err != nil {
		return err
	}
	if _, err = restaurant.Restaurant(); err != nil {
		return err
	}

	affiliationRepo := uow.AffiliationRepository()

	_, err = affiliationRepo.GetPendingByCourierAndRestaurant(ctx, command.CourierID(), command.RestaurantID())
	if err == nil {
		return ErrRequestAlreadyFiled
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	request, err := affiliation.NewRequest(
		command.RequestID(),
		command.CourierID(),
		command.RestaurantID(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = affiliationRepo.Add(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
