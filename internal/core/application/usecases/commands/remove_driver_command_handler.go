package commands

import (
	"context"
)

// RemoveDriverCommandHandler handles expelling drivers from the allow-set.
// The account record stays: the balance and subscription survive and apply
// again if the driver is re-admitted later.
type RemoveDriverCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRemoveDriverCommandHandler creates a handler for driver expulsion.
func NewRemoveDriverCommandHandler(uowFactory AccountUoWFactory) RemoveDriverCommandHandler {
	return RemoveDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver expulsion command. Idempotent.
func (h RemoveDriverCommandHandler) Handle(ctx context.Context, cmd RemoveDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.AccountRepository().RemoveDriver(ctx, cmd.DriverID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
