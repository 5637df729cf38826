package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taxidispatch/internal/core/application/usecases/commands"
	"taxidispatch/internal/core/domain/model/order"
)

func TestCancelOrderCommandHandler_Handle_PendingOrder(t *testing.T) {
	ctx := context.Background()
	aggregate := pendingOrder(t)
	cmd, err := commands.NewCancelOrderCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	accountRepo := new(MockAccountRepository)
	factory := new(MockDispatchUoWFactory)
	uow := acceptDispatchUoW(factory, orderRepo, accountRepo)

	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	notifier := new(MockNotifier)
	notifier.On("UpdateOrderMessage", mock.Anything, aggregate).Return(nil).Once()
	notifier.On("NotifyUser", mock.Anything, "user-1", mock.AnythingOfType("string")).Return(nil).Once()

	h := commands.NewCancelOrderCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, aggregate.Status())
	orderRepo.AssertExpectations(t)
	accountRepo.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_AcceptedOrderRefundsAndKeepsDriver(t *testing.T) {
	ctx := context.Background()
	aggregate := pendingOrder(t)
	require.NoError(t, aggregate.Accept("drv-1", "Bob", time.Now()))
	driverAccount := subscribedAccount(t, "drv-1", 0)
	cmd, err := commands.NewCancelOrderCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	accountRepo := new(MockAccountRepository)
	factory := new(MockDispatchUoWFactory)
	uow := acceptDispatchUoW(factory, orderRepo, accountRepo)

	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	accountRepo.On("Get", mock.Anything, "drv-1").Return(driverAccount, nil).Once()
	accountRepo.On("Update", mock.Anything, driverAccount).Return(nil).Once()
	orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	notifier := new(MockNotifier)
	notifier.On("UpdateOrderMessage", mock.Anything, aggregate).Return(nil).Once()
	notifier.On("NotifyUser", mock.Anything, "user-1", mock.AnythingOfType("string")).Return(nil).Once()
	notifier.On("NotifyUser", mock.Anything, "drv-1", mock.AnythingOfType("string")).Return(nil).Once()

	h := commands.NewCancelOrderCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, aggregate.Status())
	assert.Equal(t, "drv-1", aggregate.AcceptedBy(), "audit trail keeps the driver")
	assert.Equal(t, order.AcceptanceCost, driverAccount.Balance())
	notifier.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_TerminalOrder(t *testing.T) {
	ctx := context.Background()
	aggregate := pendingOrder(t)
	require.NoError(t, aggregate.Cancel())
	cmd, err := commands.NewCancelOrderCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	accountRepo := new(MockAccountRepository)
	factory := new(MockDispatchUoWFactory)
	acceptDispatchUoW(factory, orderRepo, accountRepo)

	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

	h := commands.NewCancelOrderCommandHandler(factory, new(MockNotifier))
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAlreadyTerminal)
}
