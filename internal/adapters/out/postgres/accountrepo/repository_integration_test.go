package accountrepo_test

import (
	"context"
	"testing"
	"time"

	"taxidispatch/internal/adapters/out/postgres/accountrepo"
	"taxidispatch/internal/core/domain/model/account"
	"taxidispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// AccountRepositoryIntegrationTestSuite provides integration tests for
// AccountRepository using PostgreSQL containers.
type AccountRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *accountrepo.GormAccountRepository
}

func (suite *AccountRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&accountrepo.DriverAccountDTO{},
		&accountrepo.AllowedDriverDTO{},
	))
}

func (suite *AccountRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE driver_accounts, allowed_drivers").Error)
	suite.repository = accountrepo.NewGormAccountRepository(suite.db)
}

func (suite *AccountRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AccountRepositoryIntegrationTestSuite) TestAdd_Account_RoundTrips() {
	ctx := context.Background()

	acc, err := account.NewDriverAccount("drv-1")
	suite.Require().NoError(err)
	suite.Require().NoError(acc.ExtendSubscription(30, time.Now()))
	acc.AdjustBalance(500)

	suite.Require().NoError(suite.repository.Add(ctx, acc))

	retrieved, err := suite.repository.Get(ctx, "drv-1")
	suite.Require().NoError(err)
	suite.Equal("drv-1", retrieved.DriverID())
	suite.Equal(500, retrieved.Balance())
	suite.Require().NotNil(retrieved.SubscriptionEnd())
	suite.WithinDuration(*acc.SubscriptionEnd(), *retrieved.SubscriptionEnd(), time.Millisecond)
}

func (suite *AccountRepositoryIntegrationTestSuite) TestGet_NonExistentAccount_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), "drv-none")

	suite.Nil(retrieved)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AccountRepositoryIntegrationTestSuite) TestUpdate_BalanceBackToZero_Persists() {
	ctx := context.Background()

	acc, err := account.NewDriverAccount("drv-1")
	suite.Require().NoError(err)
	acc.AdjustBalance(100)
	suite.Require().NoError(suite.repository.Add(ctx, acc))

	suite.Require().NoError(acc.Debit(100))
	suite.Require().NoError(suite.repository.Update(ctx, acc))

	retrieved, err := suite.repository.Get(ctx, "drv-1")
	suite.Require().NoError(err)
	suite.Equal(0, retrieved.Balance())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestAddDriver_IsIdempotent() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.AddDriver(ctx, "drv-1"))
	suite.Require().NoError(suite.repository.AddDriver(ctx, "drv-1"))

	allowed, err := suite.repository.IsDriverAllowed(ctx, "drv-1")
	suite.Require().NoError(err)
	suite.True(allowed)

	drivers, err := suite.repository.GetAllowedDrivers(ctx)
	suite.Require().NoError(err)
	suite.Equal([]string{"drv-1"}, drivers)
}

func (suite *AccountRepositoryIntegrationTestSuite) TestRemoveDriver_KeepsAccountRecord() {
	ctx := context.Background()

	acc, err := account.NewDriverAccount("drv-1")
	suite.Require().NoError(err)
	acc.AdjustBalance(300)
	suite.Require().NoError(suite.repository.Add(ctx, acc))
	suite.Require().NoError(suite.repository.AddDriver(ctx, "drv-1"))

	suite.Require().NoError(suite.repository.RemoveDriver(ctx, "drv-1"))

	allowed, err := suite.repository.IsDriverAllowed(ctx, "drv-1")
	suite.Require().NoError(err)
	suite.False(allowed)

	// The balance survives revocation.
	retrieved, err := suite.repository.Get(ctx, "drv-1")
	suite.Require().NoError(err)
	suite.Equal(300, retrieved.Balance())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestGetAllowedDrivers_SortedByID() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.AddDriver(ctx, "drv-2"))
	suite.Require().NoError(suite.repository.AddDriver(ctx, "drv-1"))

	drivers, err := suite.repository.GetAllowedDrivers(ctx)
	suite.Require().NoError(err)
	suite.Equal([]string{"drv-1", "drv-2"}, drivers)
}

func TestAccountRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AccountRepositoryIntegrationTestSuite))
}
