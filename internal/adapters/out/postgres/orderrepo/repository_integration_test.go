package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"taxidispatch/internal/adapters/out/postgres/orderrepo"
	"taxidispatch/internal/core/domain/model/geo"
	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/core/domain/model/order"
	"taxidispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers to verify persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	testOrder.SetPostedMessage("channel-1", "msg-7")

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal("user-1", retrieved.RequesterID())
	suite.Equal("Aziz", retrieved.RequesterLabel())
	suite.Equal("Tashkent", retrieved.From().RegionName())
	suite.Equal("Chilanzar", retrieved.From().DistrictName())
	suite.Equal("Samarkand", retrieved.To().RegionName())
	suite.Nil(retrieved.To().DistrictID())
	suite.Equal("+998901234567", retrieved.Phone().String())
	suite.Equal("two passengers", retrieved.Comment())
	suite.Equal(order.Pending, retrieved.Status())
	suite.WithinDuration(testOrder.CreatedAt(), retrieved.CreatedAt(), time.Millisecond)
	suite.Equal("channel-1", retrieved.PostedChannelID())
	suite.Equal("msg-7", retrieved.PostedMessageRef())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AcceptedOrder_PersistsDriverFields() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	acceptedAt := time.Now().UTC().Truncate(time.Millisecond)
	suite.Require().NoError(testOrder.Accept("drv-1", "Bekzod", acceptedAt))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Accepted, retrieved.Status())
	suite.Equal("drv-1", retrieved.AcceptedBy())
	suite.Equal("Bekzod", retrieved.AcceptedLabel())
	suite.Require().NotNil(retrieved.AcceptedAt())
	suite.WithinDuration(acceptedAt, *retrieved.AcceptedAt(), time.Millisecond)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReturnedOrder_ClearsDriverFields() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.Require().NoError(testOrder.Accept("drv-1", "Bekzod", time.Now()))
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Return("drv-1"))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, retrieved.Status())
	suite.Empty(retrieved.AcceptedBy())
	suite.Empty(retrieved.AcceptedLabel())
	suite.Nil(retrieved.AcceptedAt())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	err := suite.repository.Update(context.Background(), suite.createTestOrder())
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInPendingStatus_ReturnsOnlyPendingOldestFirst() {
	ctx := context.Background()

	older := suite.createTestOrderAt(time.Now().Add(-time.Hour))
	newer := suite.createTestOrderAt(time.Now())
	accepted := suite.createTestOrder()
	suite.Require().NoError(accepted.Accept("drv-1", "Bekzod", time.Now()))

	suite.Require().NoError(suite.repository.Add(ctx, newer))
	suite.Require().NoError(suite.repository.Add(ctx, older))
	suite.Require().NoError(suite.repository.Add(ctx, accepted))

	pending, err := suite.repository.GetAllInPendingStatus(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.Equal(older.ID(), pending[0].ID())
	suite.Equal(newer.ID(), pending[1].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllAcceptedBy_FiltersByDriver() {
	ctx := context.Background()

	mine := suite.createTestOrder()
	suite.Require().NoError(mine.Accept("drv-1", "Bekzod", time.Now()))
	other := suite.createTestOrder()
	suite.Require().NoError(other.Accept("drv-2", "Sardor", time.Now()))
	pending := suite.createTestOrder()

	suite.Require().NoError(suite.repository.Add(ctx, mine))
	suite.Require().NoError(suite.repository.Add(ctx, other))
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	held, err := suite.repository.GetAllAcceptedBy(ctx, "drv-1")
	suite.Require().NoError(err)
	suite.Require().Len(held, 1)
	suite.Equal(mine.ID(), held[0].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllAcceptedBy_NoOrders_ReturnsEmptySlice() {
	held, err := suite.repository.GetAllAcceptedBy(context.Background(), "drv-none")
	suite.Require().NoError(err)
	suite.Empty(held)
}

// createTestOrder creates a pending order with a district origin and a
// region-wide destination.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	return suite.createTestOrderAt(time.Now())
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderAt(createdAt time.Time) *order.Order {
	fromDistrictID := kernel.NewUUID()
	from, err := geo.NewPlace(kernel.NewUUID(), "Tashkent", &fromDistrictID, "Chilanzar")
	suite.Require().NoError(err)

	to, err := geo.NewPlace(kernel.NewUUID(), "Samarkand", nil, "")
	suite.Require().NoError(err)

	phone, err := kernel.NewPhoneNumber("+998901234567")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), "user-1", "Aziz", from, to, phone, "two passengers", createdAt,
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
