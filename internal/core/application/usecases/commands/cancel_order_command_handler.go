package commands

import (
	"context"
	"errors"
	"log/slog"

	"taxidispatch/internal/core/domain/model/order"
	"taxidispatch/internal/core/ports"
	"taxidispatch/internal/pkg/errs"
)

// ErrAlreadyTerminal is returned when cancelling a completed or already
// cancelled order.
var ErrAlreadyTerminal = order.ErrOrderAlreadyTerminal

// CancelOrderCommandHandler handles administrative order withdrawal.
//
// Cancelling an accepted order refunds the acceptance cost to the holding
// driver but keeps acceptedBy on the record: the audit trail shows who held
// the order when it was withdrawn.
type CancelOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
	notifier   ports.Notifier
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory DispatchUoWFactory, notifier ports.Notifier) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the cancellation command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	wasAccepted := aggregate.Status() == order.Accepted

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if wasAccepted {
		accountRepo := uow.AccountRepository()
		driverAccount, accErr := getOrCreateAccount(ctx, accountRepo, aggregate.AcceptedBy())
		if accErr != nil {
			return accErr
		}

		if accErr = driverAccount.Credit(order.AcceptanceCost); accErr != nil {
			return accErr
		}

		if accErr = accountRepo.Update(ctx, driverAccount); accErr != nil {
			return accErr
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyCancelled(ctx, aggregate, wasAccepted)
	return nil
}

func (h CancelOrderCommandHandler) notifyCancelled(ctx context.Context, aggregate *order.Order, wasAccepted bool) {
	if err := h.notifier.UpdateOrderMessage(ctx, aggregate); err != nil {
		slog.Warn("failed to update posted order message",
			"orderId", aggregate.ID().String(), "error", err)
	}

	if err := h.notifier.NotifyUser(ctx, aggregate.RequesterID(),
		"Your order was cancelled"); err != nil {
		slog.Warn("failed to notify requester",
			"orderId", aggregate.ID().String(), "error", err)
	}

	if wasAccepted {
		if err := h.notifier.NotifyUser(ctx, aggregate.AcceptedBy(),
			"The order you accepted was cancelled, the acceptance cost was refunded"); err != nil {
			slog.Warn("failed to notify driver",
				"orderId", aggregate.ID().String(), "error", err)
		}
	}
}
