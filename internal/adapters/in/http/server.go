// Package http implements the inbound HTTP adapter: an echo server satisfying
// the generated ServerInterface and translating requests into commands and
// queries. All order lifecycle triggers funnel through one performOrderAction
// path regardless of how the caller phrased them.
package http

import (
	"errors"
	"net/http"

	"taxidispatch/internal/core/application/usecases/commands"
	"taxidispatch/internal/core/application/usecases/queries"
	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/core/domain/model/order"
	"taxidispatch/internal/core/domain/model/route"
	"taxidispatch/internal/generated/servers"
	"taxidispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	acceptOrderHandler        commands.AcceptOrderCommandHandler
	returnOrderHandler        commands.ReturnOrderCommandHandler
	completeOrderHandler      commands.CompleteOrderCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler
	addRegionHandler          commands.AddRegionCommandHandler
	deleteRegionHandler       commands.DeleteRegionCommandHandler
	addDistrictHandler        commands.AddDistrictCommandHandler
	deleteDistrictHandler     commands.DeleteDistrictCommandHandler
	addRouteHandler           commands.AddRouteCommandHandler
	deleteRouteHandler        commands.DeleteRouteCommandHandler
	attachChannelHandler      commands.AttachChannelCommandHandler
	detachChannelHandler      commands.DetachChannelCommandHandler
	addDriverHandler          commands.AddDriverCommandHandler
	removeDriverHandler       commands.RemoveDriverCommandHandler
	adjustBalanceHandler      commands.AdjustBalanceCommandHandler
	extendSubscriptionHandler commands.ExtendSubscriptionCommandHandler

	// Query handlers
	listRegionsHandler      queries.ListRegionsQueryHandler
	listDistrictsHandler    queries.ListDistrictsQueryHandler
	listRoutesHandler       queries.ListRoutesQueryHandler
	listOrdersHandler       queries.ListOrdersQueryHandler
	getDriverAccountHandler queries.GetDriverAccountQueryHandler

	// Administrators allowed to run geo/route/driver management and cancels.
	adminIDs map[string]struct{}
}

// Handlers bundles every command and query handler wired into the server.
type Handlers struct {
	CreateOrder        commands.CreateOrderCommandHandler
	AcceptOrder        commands.AcceptOrderCommandHandler
	ReturnOrder        commands.ReturnOrderCommandHandler
	CompleteOrder      commands.CompleteOrderCommandHandler
	CancelOrder        commands.CancelOrderCommandHandler
	AddRegion          commands.AddRegionCommandHandler
	DeleteRegion       commands.DeleteRegionCommandHandler
	AddDistrict        commands.AddDistrictCommandHandler
	DeleteDistrict     commands.DeleteDistrictCommandHandler
	AddRoute           commands.AddRouteCommandHandler
	DeleteRoute        commands.DeleteRouteCommandHandler
	AttachChannel      commands.AttachChannelCommandHandler
	DetachChannel      commands.DetachChannelCommandHandler
	AddDriver          commands.AddDriverCommandHandler
	RemoveDriver       commands.RemoveDriverCommandHandler
	AdjustBalance      commands.AdjustBalanceCommandHandler
	ExtendSubscription commands.ExtendSubscriptionCommandHandler

	ListRegions      queries.ListRegionsQueryHandler
	ListDistricts    queries.ListDistrictsQueryHandler
	ListRoutes       queries.ListRoutesQueryHandler
	ListOrders       queries.ListOrdersQueryHandler
	GetDriverAccount queries.GetDriverAccountQueryHandler
}

// NewServer creates a new HTTP server. adminIDs is the set of actor ids
// permitted to perform administrative operations.
func NewServer(handlers Handlers, adminIDs []string) *Server {
	admins := make(map[string]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}

	return &Server{
		createOrderHandler:        handlers.CreateOrder,
		acceptOrderHandler:        handlers.AcceptOrder,
		returnOrderHandler:        handlers.ReturnOrder,
		completeOrderHandler:      handlers.CompleteOrder,
		cancelOrderHandler:        handlers.CancelOrder,
		addRegionHandler:          handlers.AddRegion,
		deleteRegionHandler:       handlers.DeleteRegion,
		addDistrictHandler:        handlers.AddDistrict,
		deleteDistrictHandler:     handlers.DeleteDistrict,
		addRouteHandler:           handlers.AddRoute,
		deleteRouteHandler:        handlers.DeleteRoute,
		attachChannelHandler:      handlers.AttachChannel,
		detachChannelHandler:      handlers.DetachChannel,
		addDriverHandler:          handlers.AddDriver,
		removeDriverHandler:       handlers.RemoveDriver,
		adjustBalanceHandler:      handlers.AdjustBalance,
		extendSubscriptionHandler: handlers.ExtendSubscription,
		listRegionsHandler:        handlers.ListRegions,
		listDistrictsHandler:      handlers.ListDistricts,
		listRoutesHandler:         handlers.ListRoutes,
		listOrdersHandler:         handlers.ListOrders,
		getDriverAccountHandler:   handlers.GetDriverAccount,
		adminIDs:                  admins,
	}
}

// actorHeader carries the external identity of the caller. A real deployment
// would derive it from authentication middleware.
const actorHeader = "X-Actor-Id"

func (s *Server) requireAdmin(ctx echo.Context) error {
	actorID := ctx.Request().Header.Get(actorHeader)
	if _, ok := s.adminIDs[actorID]; !ok {
		return ctx.JSON(http.StatusForbidden, servers.Error{
			Code:    http.StatusForbidden,
			Message: "Administrator access required",
		})
	}
	return nil
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

// ListRegions handles GET /api/v1/regions.
func (s *Server) ListRegions(ctx echo.Context) error {
	regions, err := s.listRegionsHandler.Handle(ctx.Request().Context(), queries.NewListRegionsQuery())
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve regions")
	}

	response := make([]servers.Region, len(regions))
	for i, region := range regions {
		response[i] = servers.Region{
			Id:   region.ID.Bytes(),
			Name: region.Name,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateRegion handles POST /api/v1/regions.
func (s *Server) CreateRegion(ctx echo.Context) error {
	if err := s.requireAdmin(ctx); err != nil {
		return err
	}

	var newRegion servers.NewRegion
	if err := ctx.Bind(&newRegion); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewAddRegionCommand(kernel.NewUUID(), newRegion.Name)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid region data: "+err.Error())
	}

	if err := s.addRegionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, commands.ErrRegionAlreadyExists) {
			return errorResponse(ctx, http.StatusConflict, "Region with this name already exists")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to create region")
	}

	return ctx.NoContent(http.StatusCreated)
}

// DeleteRegion handles DELETE /api/v1/regions/{regionId}.
func (s *Server) DeleteRegion(ctx echo.Context, regionId openapi_types.UUID) error {
	if err := s.requireAdmin(ctx); err != nil {
		return err
	}

	regionID, err := kernel.UUIDFromBytes(regionId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid region id")
	}

	cmd, err := commands.NewDeleteRegionCommand(regionID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.deleteRegionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, commands.ErrRegionNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "Region not found")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to delete region")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListDistricts handles GET /api/v1/regions/{regionId}/districts.
func (s *Server) ListDistricts(ctx echo.Context, regionId openapi_types.UUID) error {
	regionID, err := kernel.UUIDFromBytes(regionId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid region id")
	}

	query, err := queries.NewListDistrictsQuery(regionID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	districts, err := s.listDistrictsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve districts")
	}

	response := make([]servers.District, len(districts))
	for i, district := range districts {
		response[i] = servers.District{
			Id:       district.ID.Bytes(),
			RegionId: district.RegionID.Bytes(),
			Name:     district.Name,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDistrict handles POST /api/v1/regions/{regionId}/districts.
func (s *Server) CreateDistrict(ctx echo.Context, regionId openapi_types.UUID) error {
	if err := s.requireAdmin(ctx); err != nil {
		return err
	}

	regionID, err := kernel.UUIDFromBytes(regionId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid region id")
	}

	var newDistrict servers.NewDistrict
	if err := ctx.Bind(&newDistrict); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewAddDistrictCommand(kernel.NewUUID(), regionID, newDistrict.Name)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid district data: "+err.Error())
	}

	if err := s.addDistrictHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, commands.ErrRegionNotFound):
			return errorResponse(ctx, http.StatusNotFound, "Region not found")
		case errors.Is(err, commands.ErrDistrictAlreadyExists):
			return errorResponse(ctx, http.StatusConflict, "District with this name already exists")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to create district")
	}

	return ctx.NoContent(http.StatusCreated)
}

// DeleteDistrict handles DELETE /api/v1/districts/{districtId}.
func (s *Server) DeleteDistrict(ctx echo.Context, districtId openapi_types.UUID) error {
	if err := s.requireAdmin(ctx); err != nil {
		return err
	}

	districtID, err := kernel.UUIDFromBytes(districtId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid district id")
	}

	cmd, err := commands.NewDeleteDistrictCommand(districtID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.deleteDistrictHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, commands.ErrDistrictNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "District not found")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to delete district")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListRoutes handles GET /api/v1/routes.
func (s *Server) ListRoutes(ctx echo.Context) error {
	routes, err := s.listRoutesHandler.Handle(ctx.Request().Context(), queries.NewListRoutesQuery())
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve routes")
	}

	response := make([]servers.Route, len(routes))
	for i, route := range routes {
		channels := make([]servers.Channel, len(route.Channels))
		for j, channel := range route.Channels {
			channels[j] = servers.Channel{Id: channel.ID, Name: channel.Name}
		}

		response[i] = servers.Route{
			Id:             route.ID.Bytes(),
			FromRegionId:   route.FromRegionID.Bytes(),
			FromDistrictId: optionalID(route.FromDistrictID),
			ToRegionId:     route.ToRegionID.Bytes(),
			ToDistrictId:   optionalID(route.ToDistrictID),
			Channels:       channels,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateRoute handles POST /api/v1/routes.
func (s *Server) CreateRoute(ctx echo.Context) error {
	if err := s.requireAdmin(ctx); err != nil {
		return err
	}

	var newRoute servers.NewRoute
	if err := ctx.Bind(&newRoute); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	fromRegionID, err := kernel.UUIDFromBytes(newRoute.FromRegionId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid origin region id")
	}
	toRegionID, err := kernel.UUIDFromBytes(newRoute.ToRegionId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid destination region id")
	}

	fromDistrictID, err := optionalKernelID(newRoute.FromDistrictId)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid origin district id")
	}
	toDistrictID, err := optionalKernelID(newRoute.ToDistrictId)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid destination district id")
	}

	cmd, err := commands.NewAddRouteCommand(kernel.NewUUID(), fromRegionID, fromDistrictID, toRegionID, toDistrictID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid route data: "+err.Error())
	}

	if err := s.addRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, commands.ErrRegionNotFound), errors.Is(err, commands.ErrDistrictNotFound):
			return errorResponse(ctx, http.StatusNotFound, "Route endpoint not found")
		case errors.Is(err, commands.ErrDistrictOutsideRegion):
			return errorResponse(ctx, http.StatusBadRequest, "District does not belong to the given region")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to create route")
	}

	return ctx.NoContent(http.StatusCreated)
}

// DeleteRoute handles DELETE /api/v1/routes/{routeId}.
func (s *Server) DeleteRoute(ctx echo.Context, routeId openapi_types.UUID) error {
	if err := s.requireAdmin(ctx); err != nil {
		return err
	}

	routeID, err := kernel.UUIDFromBytes(routeId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid route id")
	}

	cmd, err := commands.NewDeleteRouteCommand(routeID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.deleteRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, commands.ErrRouteNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "Route not found")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to delete route")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AttachChannel handles POST /api/v1/routes/{routeId}/channels.
func (s *Server) AttachChannel(ctx echo.Context, routeId openapi_types.UUID) error {
	if err := s.requireAdmin(ctx); err != nil {
		return err
	}

	routeID, err := kernel.UUIDFromBytes(routeId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid route id")
	}

	var newChannel servers.NewChannel
	if err := ctx.Bind(&newChannel); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewAttachChannelCommand(routeID, newChannel.Id, newChannel.Name)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid channel data: "+err.Error())
	}

	if err := s.attachChannelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, commands.ErrRouteNotFound):
			return errorResponse(ctx, http.StatusNotFound, "Route not found")
		case errors.Is(err, route.ErrChannelAlreadyAttached):
			return errorResponse(ctx, http.StatusConflict, "Channel already attached to this route")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to attach channel")
	}

	return ctx.NoContent(http.StatusCreated)
}

// DetachChannel handles DELETE /api/v1/routes/{routeId}/channels/{channelId}.
func (s *Server) DetachChannel(ctx echo.Context, routeId openapi_types.UUID, channelId string) error {
	if err := s.requireAdmin(ctx); err != nil {
		return err
	}

	routeID, err := kernel.UUIDFromBytes(routeId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid route id")
	}

	cmd, err := commands.NewDetachChannelCommand(routeID, channelId)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.detachChannelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, commands.ErrRouteNotFound):
			return errorResponse(ctx, http.StatusNotFound, "Route not found")
		case errors.Is(err, route.ErrChannelNotAttached):
			return errorResponse(ctx, http.StatusNotFound, "Channel not attached to this route")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to detach channel")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	var opts []queries.ListOrdersOption
	if params.Status != nil {
		status, ok := statusFromString(string(*params.Status))
		if !ok {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid status filter")
		}
		opts = append(opts, queries.WithStatus(status))
	}
	if params.AcceptedBy != nil {
		opts = append(opts, queries.WithAcceptedBy(*params.AcceptedBy))
	}

	query, err := queries.NewListOrdersQuery(opts...)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = servers.Order{
			Id:               o.ID.Bytes(),
			RequesterId:      o.RequesterID,
			RequesterLabel:   optionalString(o.RequesterLabel),
			FromRegionName:   o.FromRegionName,
			FromDistrictName: optionalString(o.FromDistrictName),
			ToRegionName:     o.ToRegionName,
			ToDistrictName:   optionalString(o.ToDistrictName),
			Phone:            o.Phone,
			Comment:          optionalString(o.Comment),
			Status:           o.Status.String(),
			CreatedAt:        o.CreatedAt,
			AcceptedBy:       optionalString(o.AcceptedBy),
			AcceptedLabel:    optionalString(o.AcceptedLabel),
			AcceptedAt:       o.AcceptedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	fromRegionID, err := kernel.UUIDFromBytes(newOrder.FromRegionId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid origin region id")
	}
	toRegionID, err := kernel.UUIDFromBytes(newOrder.ToRegionId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid destination region id")
	}

	fromDistrictID, err := optionalKernelID(newOrder.FromDistrictId)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid origin district id")
	}
	toDistrictID, err := optionalKernelID(newOrder.ToDistrictId)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid destination district id")
	}

	phone, err := kernel.NewPhoneNumber(newOrder.Phone)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid phone number: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		newOrder.RequesterId, stringValue(newOrder.RequesterLabel),
		fromRegionID, fromDistrictID,
		toRegionID, toDistrictID,
		phone,
		stringValue(newOrder.Comment),
	)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, commands.ErrRegionNotFound) || errors.Is(err, errs.ErrObjectNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "Trip endpoint not found")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{Id: orderID.Bytes()})
}

// PerformOrderAction handles POST /api/v1/orders/{orderId}/actions.
// Every lifecycle trigger goes through this single entry point.
func (s *Server) PerformOrderAction(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var action servers.OrderAction
	if err := ctx.Bind(&action); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	return s.performOrderAction(ctx, action.ActorId, action.Action, orderID)
}

// performOrderAction dispatches one lifecycle action for one actor. Cancel is
// administrative; the rest act on behalf of the driver named by actorID.
func (s *Server) performOrderAction(
	ctx echo.Context, actorID string, action servers.OrderActionAction, orderID kernel.UUID,
) error {
	reqCtx := ctx.Request().Context()

	switch action {
	case servers.OrderActionActionAccept:
		cmd, err := commands.NewAcceptOrderCommand(orderID, actorID, actorID)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, err.Error())
		}
		return s.orderActionResult(ctx, s.acceptOrderHandler.Handle(reqCtx, cmd))

	case servers.OrderActionActionReturn:
		cmd, err := commands.NewReturnOrderCommand(orderID, actorID)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, err.Error())
		}
		return s.orderActionResult(ctx, s.returnOrderHandler.Handle(reqCtx, cmd))

	case servers.OrderActionActionComplete:
		cmd, err := commands.NewCompleteOrderCommand(orderID, actorID)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, err.Error())
		}
		return s.orderActionResult(ctx, s.completeOrderHandler.Handle(reqCtx, cmd))

	case servers.OrderActionActionCancel:
		if err := s.requireAdmin(ctx); err != nil {
			return err
		}
		cmd, err := commands.NewCancelOrderCommand(orderID)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, err.Error())
		}
		return s.orderActionResult(ctx, s.cancelOrderHandler.Handle(reqCtx, cmd))
	}

	return errorResponse(ctx, http.StatusBadRequest, "Unknown order action")
}

// orderActionResult maps business errors of any lifecycle action to HTTP
// statuses.
func (s *Server) orderActionResult(ctx echo.Context, err error) error {
	switch {
	case err == nil:
		return ctx.NoContent(http.StatusNoContent)
	case errors.Is(err, commands.ErrOrderNotFound):
		return errorResponse(ctx, http.StatusNotFound, "Order not found")
	case errors.Is(err, commands.ErrOrderNotPending):
		return errorResponse(ctx, http.StatusConflict, "Order is no longer available")
	case errors.Is(err, commands.ErrDriverNotEligible):
		return errorResponse(ctx, http.StatusForbidden, "Driver is not eligible to take orders")
	case errors.Is(err, commands.ErrInsufficientBalance):
		return errorResponse(ctx, http.StatusPaymentRequired, "Insufficient balance")
	case errors.Is(err, commands.ErrNotOwner):
		return errorResponse(ctx, http.StatusForbidden, "Order is held by another driver")
	case errors.Is(err, commands.ErrAlreadyCompleted), errors.Is(err, commands.ErrAlreadyTerminal):
		return errorResponse(ctx, http.StatusConflict, "Order already finished")
	}
	return errorResponse(ctx, http.StatusInternalServerError, "Failed to perform order action")
}

// AddDriver handles POST /api/v1/drivers.
func (s *Server) AddDriver(ctx echo.Context) error {
	if err := s.requireAdmin(ctx); err != nil {
		return err
	}

	var newDriver servers.NewDriver
	if err := ctx.Bind(&newDriver); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewAddDriverCommand(newDriver.DriverId)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.addDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to admit driver")
	}

	return ctx.NoContent(http.StatusCreated)
}

// RemoveDriver handles DELETE /api/v1/drivers/{driverId}.
func (s *Server) RemoveDriver(ctx echo.Context, driverId string) error {
	if err := s.requireAdmin(ctx); err != nil {
		return err
	}

	cmd, err := commands.NewRemoveDriverCommand(driverId)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.removeDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to revoke driver")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDriverAccount handles GET /api/v1/drivers/{driverId}/account.
func (s *Server) GetDriverAccount(ctx echo.Context, driverId string) error {
	query, err := queries.NewGetDriverAccountQuery(driverId)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	account, err := s.getDriverAccountHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve driver account")
	}

	return ctx.JSON(http.StatusOK, servers.DriverAccount{
		DriverId:        account.DriverID,
		Balance:         account.Balance,
		SubscriptionEnd: account.SubscriptionEnd,
		Allowed:         account.Allowed,
	})
}

// AdjustBalance handles POST /api/v1/drivers/{driverId}/balance.
func (s *Server) AdjustBalance(ctx echo.Context, driverId string) error {
	if err := s.requireAdmin(ctx); err != nil {
		return err
	}

	var adjustment servers.BalanceAdjustment
	if err := ctx.Bind(&adjustment); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewAdjustBalanceCommand(driverId, adjustment.Delta)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.adjustBalanceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to adjust balance")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ExtendSubscription handles POST /api/v1/drivers/{driverId}/subscription.
func (s *Server) ExtendSubscription(ctx echo.Context, driverId string) error {
	if err := s.requireAdmin(ctx); err != nil {
		return err
	}

	var extension servers.SubscriptionExtension
	if err := ctx.Bind(&extension); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewExtendSubscriptionCommand(driverId, extension.Days)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.extendSubscriptionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to extend subscription")
	}

	return ctx.NoContent(http.StatusNoContent)
}

func statusFromString(raw string) (order.Status, bool) {
	for _, status := range []order.Status{order.Pending, order.Accepted, order.Completed, order.Cancelled} {
		if status.String() == raw {
			return status, true
		}
	}
	return order.Unknown, false
}

func optionalID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalKernelID(raw *openapi_types.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
