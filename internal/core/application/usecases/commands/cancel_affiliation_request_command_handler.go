package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/affiliation"
)

// CancelAffiliationRequestCommandHandler handles couriers withdrawing their
// own pending requests. Resolved requests stay on record and cannot be
// withdrawn. Withdrawal is by request ID, which is equivalent to removing
// every pending request for the courier-restaurant pair: filing blocks a
// second pending request for the same pair, so at most one can exist.
type CancelAffiliationRequestCommandHandler struct {
	uowFactory AffiliationUoWFactory
}

// NewCancelAffiliationRequestCommandHandler creates a handler for request
// withdrawal.
func NewCancelAffiliationRequestCommandHandler(
	uowFactory AffiliationUoWFactory,
) CancelAffiliationRequestCommandHandler {
	return CancelAffiliationRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the withdrawal. Returns affiliation.ErrNotRequestOwner
// when the request was filed by a different courier and
// affiliation.ErrRequestAlreadyResolved when it is no longer pending.
func (h CancelAffiliationRequestCommandHandler) Handle(
	ctx context.Context,
	command CancelAffiliationRequestCommand,
) error {
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
	if !request.Courier().IsEqual(command.CourierID()) {
		return affiliation.ErrNotRequestOwner
	}
	if !request.IsPending() {
		return affiliation.ErrRequestAlreadyResolved
	}

	if err = affiliationRepo.Delete(ctx, request.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
