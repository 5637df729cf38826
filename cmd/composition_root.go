package cmd

import (
	"log/slog"

	"taxidispatch/internal/adapters/out/notifier"
	"taxidispatch/internal/adapters/out/postgres"
	"taxidispatch/internal/core/application/usecases/commands"
	"taxidispatch/internal/core/application/usecases/queries"
	"taxidispatch/internal/core/ports"
	"taxidispatch/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier.NewSlogNotifier(logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) geoUoWFactory() commands.GeoUoWFactory {
	return FuncGeoUoWFactory(func() commands.GeoUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) dispatchUoWFactory() commands.DispatchUoWFactory {
	return FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAddRegionCommandHandler() commands.AddRegionCommandHandler {
	return commands.NewAddRegionCommandHandler(c.geoUoWFactory())
}

func (c *CompositionRoot) CreateDeleteRegionCommandHandler() commands.DeleteRegionCommandHandler {
	return commands.NewDeleteRegionCommandHandler(c.geoUoWFactory())
}

func (c *CompositionRoot) CreateAddDistrictCommandHandler() commands.AddDistrictCommandHandler {
	return commands.NewAddDistrictCommandHandler(c.geoUoWFactory())
}

func (c *CompositionRoot) CreateDeleteDistrictCommandHandler() commands.DeleteDistrictCommandHandler {
	return commands.NewDeleteDistrictCommandHandler(c.geoUoWFactory())
}

func (c *CompositionRoot) CreateAddRouteCommandHandler() commands.AddRouteCommandHandler {
	return commands.NewAddRouteCommandHandler(c.geoUoWFactory())
}

func (c *CompositionRoot) CreateDeleteRouteCommandHandler() commands.DeleteRouteCommandHandler {
	return commands.NewDeleteRouteCommandHandler(c.geoUoWFactory())
}

func (c *CompositionRoot) CreateAttachChannelCommandHandler() commands.AttachChannelCommandHandler {
	return commands.NewAttachChannelCommandHandler(c.geoUoWFactory())
}

func (c *CompositionRoot) CreateDetachChannelCommandHandler() commands.DetachChannelCommandHandler {
	return commands.NewDetachChannelCommandHandler(c.geoUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.dispatchUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateReturnOrderCommandHandler() commands.ReturnOrderCommandHandler {
	return commands.NewReturnOrderCommandHandler(c.dispatchUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.dispatchUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.dispatchUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateAddDriverCommandHandler() commands.AddDriverCommandHandler {
	return commands.NewAddDriverCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateRemoveDriverCommandHandler() commands.RemoveDriverCommandHandler {
	return commands.NewRemoveDriverCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateAdjustBalanceCommandHandler() commands.AdjustBalanceCommandHandler {
	return commands.NewAdjustBalanceCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateExtendSubscriptionCommandHandler() commands.ExtendSubscriptionCommandHandler {
	return commands.NewExtendSubscriptionCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateListRegionsQueryHandler() queries.ListRegionsQueryHandler {
	return queries.NewListRegionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDistrictsQueryHandler() queries.ListDistrictsQueryHandler {
	return queries.NewListDistrictsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListRoutesQueryHandler() queries.ListRoutesQueryHandler {
	return queries.NewListRoutesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverAccountQueryHandler() queries.GetDriverAccountQueryHandler {
	return queries.NewGetDriverAccountQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		queries.NewListExpiringSubscriptionsQueryHandler(c.gormDB),
		c.notifier,
		c.logger,
	)
}

type FuncGeoUoWFactory func() commands.GeoUoW

func (f FuncGeoUoWFactory) Create() commands.GeoUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}
