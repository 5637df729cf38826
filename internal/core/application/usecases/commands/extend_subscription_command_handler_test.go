package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taxidispatch/internal/core/application/usecases/commands"
	"taxidispatch/internal/core/domain/model/account"
	"taxidispatch/internal/pkg/errs"
)

func newAccountUoW(factory *MockAccountUoWFactory, accountRepo *MockAccountRepository) *MockAccountUoW {
	uow := new(MockAccountUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
	uow.On("AccountRepository").Return(accountRepo).Maybe()
	factory.On("Create").Return(uow).Once()
	return uow
}

func TestExtendSubscriptionCommandHandler_Handle_StacksOnExisting(t *testing.T) {
	ctx := context.Background()
	end := time.Now().Add(10 * 24 * time.Hour)
	driverAccount, err := account.RestoreDriverAccount("drv-1", 0, &end)
	require.NoError(t, err)
	cmd, err := commands.NewExtendSubscriptionCommand("drv-1", 5)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	factory := new(MockAccountUoWFactory)
	uow := newAccountUoW(factory, accountRepo)

	accountRepo.On("Get", mock.Anything, "drv-1").Return(driverAccount, nil).Once()
	accountRepo.On("Update", mock.Anything, driverAccount).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	h := commands.NewExtendSubscriptionCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	// the grant appends to the remaining window, not to now
	assert.Equal(t, end.Add(5*24*time.Hour), *driverAccount.SubscriptionEnd())
}

func TestExtendSubscriptionCommandHandler_Handle_CreatesMissingAccount(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewExtendSubscriptionCommand("drv-new", 10)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	factory := new(MockAccountUoWFactory)
	uow := newAccountUoW(factory, accountRepo)

	var created *account.DriverAccount
	accountRepo.On("Get", mock.Anything, "drv-new").Return(nil, errs.ErrObjectNotFound).Once()
	accountRepo.On("Add", mock.Anything, mock.AnythingOfType("*account.DriverAccount")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*account.DriverAccount) }).
		Return(nil).Once()
	accountRepo.On("Update", mock.Anything, mock.AnythingOfType("*account.DriverAccount")).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	h := commands.NewExtendSubscriptionCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, created)
	assert.True(t, created.HasActiveSubscription(time.Now()))
	assert.Equal(t, 0, created.Balance())
}

func TestAdjustBalanceCommandHandler_Handle_TopUp(t *testing.T) {
	ctx := context.Background()
	driverAccount, err := account.NewDriverAccount("drv-1")
	require.NoError(t, err)
	cmd, err := commands.NewAdjustBalanceCommand("drv-1", 500)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	factory := new(MockAccountUoWFactory)
	uow := newAccountUoW(factory, accountRepo)

	accountRepo.On("Get", mock.Anything, "drv-1").Return(driverAccount, nil).Once()
	accountRepo.On("Update", mock.Anything, driverAccount).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	h := commands.NewAdjustBalanceCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, 500, driverAccount.Balance())
}

func TestAdjustBalanceCommandHandler_Handle_DebitBelowZero(t *testing.T) {
	ctx := context.Background()
	driverAccount, err := account.RestoreDriverAccount("drv-1", 30, nil)
	require.NoError(t, err)
	cmd, err := commands.NewAdjustBalanceCommand("drv-1", -100)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	factory := new(MockAccountUoWFactory)
	uow := newAccountUoW(factory, accountRepo)

	accountRepo.On("Get", mock.Anything, "drv-1").Return(driverAccount, nil).Once()
	accountRepo.On("Update", mock.Anything, driverAccount).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	h := commands.NewAdjustBalanceCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	// administrative adjustments have no floor
	assert.Equal(t, -70, driverAccount.Balance())
}

func TestRemoveDriverCommandHandler_Handle_KeepsAccount(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewRemoveDriverCommand("drv-1")
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	factory := new(MockAccountUoWFactory)
	uow := newAccountUoW(factory, accountRepo)

	accountRepo.On("RemoveDriver", mock.Anything, "drv-1").Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	h := commands.NewRemoveDriverCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	// only the allow-set entry goes, the ledger record survives
	accountRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	accountRepo.AssertExpectations(t)
}

func TestAddDriverCommandHandler_Handle_MaterializesAccount(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewAddDriverCommand("drv-1")
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	factory := new(MockAccountUoWFactory)
	uow := newAccountUoW(factory, accountRepo)

	accountRepo.On("AddDriver", mock.Anything, "drv-1").Return(nil).Once()
	accountRepo.On("Get", mock.Anything, "drv-1").Return(nil, errs.ErrObjectNotFound).Once()
	accountRepo.On("Add", mock.Anything, mock.AnythingOfType("*account.DriverAccount")).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	h := commands.NewAddDriverCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	accountRepo.AssertExpectations(t)
}
