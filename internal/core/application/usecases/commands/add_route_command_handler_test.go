package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taxidispatch/internal/core/application/usecases/commands"
	"taxidispatch/internal/core/domain/model/geo"
	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/core/domain/model/route"
)

func TestAddRouteCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	alpha, err := geo.NewRegion(kernel.NewUUID(), "Alpha")
	require.NoError(t, err)
	beta, err := geo.NewRegion(kernel.NewUUID(), "Beta")
	require.NoError(t, err)
	districtX, err := geo.NewDistrict(kernel.NewUUID(), alpha.ID(), "X")
	require.NoError(t, err)

	id := districtX.ID()
	cmd, err := commands.NewAddRouteCommand(kernel.NewUUID(), alpha.ID(), &id, beta.ID(), nil)
	require.NoError(t, err)

	geoRepo := new(MockGeoRepository)
	routeRepo := new(MockRouteRepository)
	factory := new(MockGeoUoWFactory)
	uow := newGeoUoW(factory, geoRepo, routeRepo)

	geoRepo.On("GetRegion", mock.Anything, alpha.ID()).Return(alpha, nil).Once()
	geoRepo.On("GetDistrict", mock.Anything, districtX.ID()).Return(districtX, nil).Once()
	geoRepo.On("GetRegion", mock.Anything, beta.ID()).Return(beta, nil).Once()
	routeRepo.On("Add", mock.Anything, mock.AnythingOfType("*route.Route")).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	h := commands.NewAddRouteCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	routeRepo.AssertExpectations(t)
}

func TestAddRouteCommandHandler_Handle_DistrictOutsideRegion(t *testing.T) {
	ctx := context.Background()
	alpha, err := geo.NewRegion(kernel.NewUUID(), "Alpha")
	require.NoError(t, err)
	beta, err := geo.NewRegion(kernel.NewUUID(), "Beta")
	require.NoError(t, err)
	foreignDistrict, err := geo.NewDistrict(kernel.NewUUID(), beta.ID(), "Y")
	require.NoError(t, err)

	id := foreignDistrict.ID()
	cmd, err := commands.NewAddRouteCommand(kernel.NewUUID(), alpha.ID(), &id, beta.ID(), nil)
	require.NoError(t, err)

	geoRepo := new(MockGeoRepository)
	routeRepo := new(MockRouteRepository)
	factory := new(MockGeoUoWFactory)
	newGeoUoW(factory, geoRepo, routeRepo)

	geoRepo.On("GetRegion", mock.Anything, alpha.ID()).Return(alpha, nil).Once()
	geoRepo.On("GetDistrict", mock.Anything, foreignDistrict.ID()).Return(foreignDistrict, nil).Once()

	h := commands.NewAddRouteCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrDistrictOutsideRegion)
	routeRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestAttachChannelCommandHandler_Handle_Duplicate(t *testing.T) {
	ctx := context.Background()
	r, err := route.NewRoute(kernel.NewUUID(), kernel.NewUUID(), nil, kernel.NewUUID(), nil)
	require.NoError(t, err)
	ch, err := route.NewChannel("C1", "alpha to beta")
	require.NoError(t, err)
	require.NoError(t, r.AttachChannel(ch))

	cmd, err := commands.NewAttachChannelCommand(r.ID(), "C1", "alpha to beta")
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	factory := new(MockGeoUoWFactory)
	newGeoUoW(factory, new(MockGeoRepository), routeRepo)

	routeRepo.On("Get", mock.Anything, r.ID()).Return(r, nil).Once()

	h := commands.NewAttachChannelCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, route.ErrChannelAlreadyAttached)
	routeRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDetachChannelCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	r, err := route.NewRoute(kernel.NewUUID(), kernel.NewUUID(), nil, kernel.NewUUID(), nil)
	require.NoError(t, err)
	ch, err := route.NewChannel("C1", "alpha to beta")
	require.NoError(t, err)
	require.NoError(t, r.AttachChannel(ch))

	cmd, err := commands.NewDetachChannelCommand(r.ID(), "C1")
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	factory := new(MockGeoUoWFactory)
	uow := newGeoUoW(factory, new(MockGeoRepository), routeRepo)

	routeRepo.On("Get", mock.Anything, r.ID()).Return(r, nil).Once()
	routeRepo.On("Update", mock.Anything, r).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	h := commands.NewDetachChannelCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Empty(t, r.Channels())
}
