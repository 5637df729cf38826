package commands

import (
	"context"
	"errors"
	"log/slog"

	"taxidispatch/internal/core/domain/model/order"
	"taxidispatch/internal/core/ports"
	"taxidispatch/internal/pkg/errs"
)

// ErrAlreadyCompleted is returned when completing an order twice.
var ErrAlreadyCompleted = order.ErrOrderAlreadyCompleted

// CompleteOrderCommandHandler handles a driver marking an accepted order done.
// No balance movement happens here: the cost was captured at acceptance.
type CompleteOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
	notifier   ports.Notifier
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(uowFactory DispatchUoWFactory, notifier ports.Notifier) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the completion command.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	if err = aggregate.Complete(cmd.DriverID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyCompleted(ctx, aggregate)
	return nil
}

func (h CompleteOrderCommandHandler) notifyCompleted(ctx context.Context, aggregate *order.Order) {
	if err := h.notifier.UpdateOrderMessage(ctx, aggregate); err != nil {
		slog.Warn("failed to update posted order message",
			"orderId", aggregate.ID().String(), "error", err)
	}

	if err := h.notifier.NotifyUser(ctx, aggregate.RequesterID(),
		"Your order was completed"); err != nil {
		slog.Warn("failed to notify requester",
			"orderId", aggregate.ID().String(), "error", err)
	}
}
