package commands

import (
	"context"
)

// AddDriverCommandHandler handles admitting drivers into the allow-set.
// Admission also materializes the account lazily, so a re-admitted driver
// comes back to the balance and subscription they left with.
type AddDriverCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewAddDriverCommandHandler creates a handler for driver admission.
func NewAddDriverCommandHandler(uowFactory AccountUoWFactory) AddDriverCommandHandler {
	return AddDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver admission command. Idempotent.
func (h AddDriverCommandHandler) Handle(ctx context.Context, cmd AddDriverCommand) error {
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

	accountRepo := uow.AccountRepository()

	if err := accountRepo.AddDriver(ctx, cmd.DriverID()); err != nil {
		return err
	}

	if _, err := getOrCreateAccount(ctx, accountRepo, cmd.DriverID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
