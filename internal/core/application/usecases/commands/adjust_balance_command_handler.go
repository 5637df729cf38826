package commands

import (
	"context"
)

// AdjustBalanceCommandHandler handles administrative balance adjustments.
// A missing account materializes lazily with a zero balance before the
// adjustment applies; adjustments may drive the balance negative.
type AdjustBalanceCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewAdjustBalanceCommandHandler creates a handler for balance adjustments.
func NewAdjustBalanceCommandHandler(uowFactory AccountUoWFactory) AdjustBalanceCommandHandler {
	return AdjustBalanceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the balance adjustment command.
func (h AdjustBalanceCommandHandler) Handle(ctx context.Context, cmd AdjustBalanceCommand) error {
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

	driverAccount, err := getOrCreateAccount(ctx, accountRepo, cmd.DriverID())
	if err != nil {
		return err
	}

	driverAccount.AdjustBalance(cmd.Delta())

	if err = accountRepo.Update(ctx, driverAccount); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
