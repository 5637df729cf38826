package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"taxidispatch/internal/core/domain/model/account"
	"taxidispatch/internal/core/domain/model/order"
	"taxidispatch/internal/core/ports"
	"taxidispatch/internal/pkg/errs"
)

var (
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderNotPending is returned when the order already left the pending
	// status, typically because another driver won the acceptance race.
	ErrOrderNotPending = errors.New("order is no longer pending")

	// ErrDriverNotEligible is returned when the driver is outside the
	// allow-set or the subscription has lapsed.
	ErrDriverNotEligible = errors.New("driver is not eligible to accept orders")

	// ErrInsufficientBalance is returned when the driver cannot cover the
	// acceptance cost.
	ErrInsufficientBalance = account.ErrInsufficientBalance
)

// AcceptOrderCommandHandler handles a driver claiming a pending order.
//
// The status flip and the balance debit happen inside one serialized unit of
// work: of two concurrent acceptances exactly one observes the order pending
// and wins, the other fails with ErrOrderNotPending and touches nothing.
type AcceptOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
	notifier   ports.Notifier
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(uowFactory DispatchUoWFactory, notifier ports.Notifier) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the acceptance command.
//
// Preconditions checked inside the transaction: the driver is in the
// allow-set, the subscription end is in the future, and the balance covers
// the acceptance cost. On success the order is accepted and the cost debited
// atomically; afterwards the posted channel message and the requester are
// notified, fire-and-forget.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	allowed, err := accountRepo.IsDriverAllowed(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if !allowed {
		return ErrDriverNotEligible
	}

	driverAccount, err := getOrCreateAccount(ctx, accountRepo, cmd.DriverID())
	if err != nil {
		return err
	}

	now := time.Now()
	if !driverAccount.HasActiveSubscription(now) {
		return ErrDriverNotEligible
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	if aggregate.Status() != order.Pending {
		return ErrOrderNotPending
	}

	if err = driverAccount.Debit(order.AcceptanceCost); err != nil {
		return err
	}

	if err = aggregate.Accept(cmd.DriverID(), cmd.DriverLabel(), now); err != nil {
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

	h.notifyAccepted(ctx, aggregate)
	return nil
}

func (h AcceptOrderCommandHandler) notifyAccepted(ctx context.Context, aggregate *order.Order) {
	if err := h.notifier.UpdateOrderMessage(ctx, aggregate); err != nil {
		slog.Warn("failed to update posted order message",
			"orderId", aggregate.ID().String(), "error", err)
	}

	if err := h.notifier.NotifyUser(ctx, aggregate.RequesterID(),
		"Your order was accepted by "+aggregate.AcceptedLabel()); err != nil {
		slog.Warn("failed to notify requester",
			"orderId", aggregate.ID().String(), "error", err)
	}
}

// getOrCreateAccount implements lazy account creation: the first time a
// driver is looked at an empty account materializes.
func getOrCreateAccount(ctx context.Context, accountRepo ports.AccountRepository, driverID string) (*account.DriverAccount, error) {
	existing, err := accountRepo.Get(ctx, driverID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	created, err := account.NewDriverAccount(driverID)
	if err != nil {
		return nil, err
	}
	if err = accountRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}
