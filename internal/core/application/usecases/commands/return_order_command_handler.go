package commands

import (
	"context"
	"errors"
	"log/slog"

	"taxidispatch/internal/core/domain/model/order"
	"taxidispatch/internal/core/ports"
	"taxidispatch/internal/pkg/errs"
)

// ErrNotOwner is returned when a driver operates on an order accepted by
// somebody else.
var ErrNotOwner = order.ErrOrderNotOwned

// ReturnOrderCommandHandler handles a driver returning an accepted order.
// The status rollback and the balance refund are committed together.
type ReturnOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
	notifier   ports.Notifier
}

// NewReturnOrderCommandHandler creates a handler for order returns.
func NewReturnOrderCommandHandler(uowFactory DispatchUoWFactory, notifier ports.Notifier) ReturnOrderCommandHandler {
	return ReturnOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the return command.
// Only the accepting driver may return; the acceptance cost is credited back
// and the order becomes pending again, visible to other drivers.
func (h ReturnOrderCommandHandler) Handle(ctx context.Context, cmd ReturnOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	if err = aggregate.Return(cmd.DriverID()); err != nil {
		return err
	}

	accountRepo := uow.AccountRepository()
	driverAccount, err := getOrCreateAccount(ctx, accountRepo, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = driverAccount.Credit(order.AcceptanceCost); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = accountRepo.Update(ctx, driverAccount); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.UpdateOrderMessage(ctx, aggregate); err != nil {
		slog.Warn("failed to update posted order message",
			"orderId", aggregate.ID().String(), "error", err)
	}

	return nil
}
