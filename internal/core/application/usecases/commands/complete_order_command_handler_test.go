package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taxidispatch/internal/core/application/usecases/commands"
	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/core/domain/model/order"
	"taxidispatch/internal/pkg/errs"
)

func TestCompleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	aggregate := pendingOrder(t)
	require.NoError(t, aggregate.Accept("drv-1", "Bob", time.Now()))
	cmd, err := commands.NewCompleteOrderCommand(aggregate.ID(), "drv-1")
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
	notifier.On("NotifyUser", mock.Anything, "user-1", mock.Anything).Return(nil).Once()

	h := commands.NewCompleteOrderCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, aggregate.Status())
	assert.Equal(t, "drv-1", aggregate.AcceptedBy())
	orderRepo.AssertExpectations(t)
	accountRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	notifier.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := context.Background()
	aggregate := pendingOrder(t)
	require.NoError(t, aggregate.Accept("drv-1", "Bob", time.Now()))
	cmd, err := commands.NewCompleteOrderCommand(aggregate.ID(), "drv-2")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	accountRepo := new(MockAccountRepository)
	factory := new(MockDispatchUoWFactory)
	acceptDispatchUoW(factory, orderRepo, accountRepo)

	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

	h := commands.NewCompleteOrderCommandHandler(factory, new(MockNotifier))
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNotOwner)
	assert.Equal(t, order.Accepted, aggregate.Status())
}

func TestCompleteOrderCommandHandler_Handle_AlreadyCompleted(t *testing.T) {
	ctx := context.Background()
	aggregate := pendingOrder(t)
	require.NoError(t, aggregate.Accept("drv-1", "Bob", time.Now()))
	require.NoError(t, aggregate.Complete("drv-1"))
	cmd, err := commands.NewCompleteOrderCommand(aggregate.ID(), "drv-1")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	accountRepo := new(MockAccountRepository)
	factory := new(MockDispatchUoWFactory)
	acceptDispatchUoW(factory, orderRepo, accountRepo)

	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

	h := commands.NewCompleteOrderCommandHandler(factory, new(MockNotifier))
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAlreadyCompleted)
}

func TestCompleteOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCompleteOrderCommand(orderID, "drv-1")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	accountRepo := new(MockAccountRepository)
	factory := new(MockDispatchUoWFactory)
	acceptDispatchUoW(factory, orderRepo, accountRepo)

	orderRepo.On("Get", mock.Anything, orderID).
		Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once()

	h := commands.NewCompleteOrderCommandHandler(factory, new(MockNotifier))
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrOrderNotFound)
}
