package commands

import (
	"context"
	"time"
)

// ExtendSubscriptionCommandHandler handles subscription extensions.
// Extensions stack on the remaining window: granting 30 days twice in quick
// succession yields roughly 60 days of coverage, not 30.
type ExtendSubscriptionCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewExtendSubscriptionCommandHandler creates a handler for subscription extensions.
func NewExtendSubscriptionCommandHandler(uowFactory AccountUoWFactory) ExtendSubscriptionCommandHandler {
	return ExtendSubscriptionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the subscription extension command.
func (h ExtendSubscriptionCommandHandler) Handle(ctx context.Context, cmd ExtendSubscriptionCommand) error {
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

	if err = driverAccount.ExtendSubscription(cmd.Days(), time.Now()); err != nil {
		return err
	}

	if err = accountRepo.Update(ctx, driverAccount); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
