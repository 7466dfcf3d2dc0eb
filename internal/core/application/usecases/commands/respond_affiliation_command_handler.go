package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/affiliation"
	"fooddelivery/internal/pkg/errs"
)

// RespondAffiliationCommandHandler handles restaurants resolving affiliation
// requests. A courier holds at most one accepted affiliation: accepting a new
// request supersedes the previous one and repoints the courier's account, all
// in one transaction.
type RespondAffiliationCommandHandler struct {
	uowFactory AffiliationUoWFactory
}

// NewRespondAffiliationCommandHandler creates a handler for affiliation
// responses.
func NewRespondAffiliationCommandHandler(uowFactory AffiliationUoWFactory) RespondAffiliationCommandHandler {
	return RespondAffiliationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the response. Returns affiliation.ErrNotRequestOwner when
// the request is addressed to a different restaurant and
// affiliation.ErrRequestAlreadyResolved when it is no longer pending.
func (h RespondAffiliationCommandHandler) Handle(ctx context.Context, command RespondAffiliationCommand) error {
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

	affiliationRepo := uow.AffiliationRepository()

	request, err := affiliationRepo.Get(ctx, command.RequestID())
	if err != nil {
		return err
	}
	if !request.Restaurant().IsEqual(command.RestaurantID()) {
		return affiliation.ErrNotRequestOwner
	}

	if !command.Accept() {
		if err = request.Reject(); err != nil {
			return err
		}
		if err = affiliationRepo.Update(ctx, request); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	if err = request.Accept(); err != nil {
		return err
	}

	previous, err := affiliationRepo.GetAcceptedByCourier(ctx, request.Courier())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if previous != nil && !previous.ID().IsEqual(request.ID()) {
		if err = previous.Supersede(); err != nil {
			return err
		}
		if err = affiliationRepo.Update(ctx, previous); err != nil {
			return err
		}
	}

	courier, err := uow.AccountRepository().Get(ctx, request.Courier())
	if err != nil {
		return err
	}
	if err = courier.AffiliateWith(request.Restaurant()); err != nil {
		return err
	}

	if err = affiliationRepo.Update(ctx, request); err != nil {
		return err
	}
	if err = uow.AccountRepository().Update(ctx, courier); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
