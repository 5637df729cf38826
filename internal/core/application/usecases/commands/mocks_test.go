package commands_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"taxidispatch/internal/core/application/usecases/commands"
	"taxidispatch/internal/core/domain/model/account"
	"taxidispatch/internal/core/domain/model/geo"
	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/core/domain/model/order"
	"taxidispatch/internal/core/domain/model/route"
	"taxidispatch/internal/core/ports"
)

type MockGeoRepository struct{ mock.Mock }

func (m *MockGeoRepository) AddRegion(ctx context.Context, region *geo.Region) error {
	args := m.Called(ctx, region)
	return args.Error(0)
}
func (m *MockGeoRepository) GetRegion(ctx context.Context, id kernel.UUID) (*geo.Region, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geo.Region), args.Error(1)
}
func (m *MockGeoRepository) GetRegionByName(ctx context.Context, name string) (*geo.Region, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geo.Region), args.Error(1)
}
func (m *MockGeoRepository) GetAllRegions(ctx context.Context) ([]*geo.Region, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*geo.Region), args.Error(1)
}
func (m *MockGeoRepository) DeleteRegion(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockGeoRepository) AddDistrict(ctx context.Context, district *geo.District) error {
	args := m.Called(ctx, district)
	return args.Error(0)
}
func (m *MockGeoRepository) GetDistrict(ctx context.Context, id kernel.UUID) (*geo.District, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geo.District), args.Error(1)
}
func (m *MockGeoRepository) GetDistrictByName(ctx context.Context, regionID kernel.UUID, name string) (*geo.District, error) {
	args := m.Called(ctx, regionID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geo.District), args.Error(1)
}
func (m *MockGeoRepository) GetDistrictsByRegion(ctx context.Context, regionID kernel.UUID) ([]*geo.District, error) {
	args := m.Called(ctx, regionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*geo.District), args.Error(1)
}
func (m *MockGeoRepository) DeleteDistrict(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockRouteRepository) Update(ctx context.Context, aggregate *route.Route) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}
func (m *MockRouteRepository) GetAll(ctx context.Context) ([]*route.Route, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*route.Route), args.Error(1)
}
func (m *MockRouteRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRouteRepository) DeleteByRegion(ctx context.Context, regionID kernel.UUID) error {
	args := m.Called(ctx, regionID)
	return args.Error(0)
}
func (m *MockRouteRepository) DeleteByDistrict(ctx context.Context, districtID kernel.UUID) error {
	args := m.Called(ctx, districtID)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllAcceptedBy(ctx context.Context, driverID string) ([]*order.Order, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, aggregate *account.DriverAccount) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockAccountRepository) Update(ctx context.Context, aggregate *account.DriverAccount) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockAccountRepository) Get(ctx context.Context, driverID string) (*account.DriverAccount, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.DriverAccount), args.Error(1)
}
func (m *MockAccountRepository) AddDriver(ctx context.Context, driverID string) error {
	args := m.Called(ctx, driverID)
	return args.Error(0)
}
func (m *MockAccountRepository) RemoveDriver(ctx context.Context, driverID string) error {
	args := m.Called(ctx, driverID)
	return args.Error(0)
}
func (m *MockAccountRepository) IsDriverAllowed(ctx context.Context, driverID string) (bool, error) {
	args := m.Called(ctx, driverID)
	return args.Bool(0), args.Error(1)
}
func (m *MockAccountRepository) GetAllowedDrivers(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) PostOrder(ctx context.Context, aggregate *order.Order, channels []route.Channel) (string, string, error) {
	args := m.Called(ctx, aggregate, channels)
	return args.String(0), args.String(1), args.Error(2)
}
func (m *MockNotifier) UpdateOrderMessage(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockNotifier) NotifyUser(ctx context.Context, userID string, text string) error {
	args := m.Called(ctx, userID, text)
	return args.Error(0)
}

type MockDispatchUoW struct{ mock.Mock }

func (m *MockDispatchUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDispatchUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDispatchUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDispatchUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockDispatchUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.DispatchUoW {
	args := m.Called()
	return args.Get(0).(commands.DispatchUoW)
}

type MockGeoUoW struct{ mock.Mock }

func (m *MockGeoUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockGeoUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockGeoUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockGeoUoW) GeoRepository() ports.GeoRepository {
	args := m.Called()
	return args.Get(0).(ports.GeoRepository)
}
func (m *MockGeoUoW) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

type MockGeoUoWFactory struct{ mock.Mock }

func (m *MockGeoUoWFactory) Create() commands.GeoUoW {
	args := m.Called()
	return args.Get(0).(commands.GeoUoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockOrderUoW) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}
func (m *MockOrderUoW) GeoRepository() ports.GeoRepository {
	args := m.Called()
	return args.Get(0).(ports.GeoRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockAccountUoW struct{ mock.Mock }

func (m *MockAccountUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAccountUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAccountUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAccountUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

type MockAccountUoWFactory struct{ mock.Mock }

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}
