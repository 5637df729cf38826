package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taxidispatch/internal/core/application/usecases/commands"
	"taxidispatch/internal/core/domain/model/geo"
	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/errs"
)

func TestDeleteRegionCommandHandler_Handle_Cascades(t *testing.T) {
	ctx := context.Background()
	region, err := geo.NewRegion(kernel.NewUUID(), "Alpha")
	require.NoError(t, err)
	cmd, err := commands.NewDeleteRegionCommand(region.ID())
	require.NoError(t, err)

	geoRepo := new(MockGeoRepository)
	routeRepo := new(MockRouteRepository)
	factory := new(MockGeoUoWFactory)
	uow := newGeoUoW(factory, geoRepo, routeRepo)

	mock.InOrder(
		geoRepo.On("GetRegion", mock.Anything, region.ID()).Return(region, nil).Once(),
		routeRepo.On("DeleteByRegion", mock.Anything, region.ID()).Return(nil).Once(),
		geoRepo.On("DeleteRegion", mock.Anything, region.ID()).Return(nil).Once(),
		uow.On("Commit", mock.Anything).Return(nil).Once(),
	)

	h := commands.NewDeleteRegionCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	geoRepo.AssertExpectations(t)
	routeRepo.AssertExpectations(t)
}

func TestDeleteRegionCommandHandler_Handle_RegionNotFound(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewDeleteRegionCommand(kernel.NewUUID())
	require.NoError(t, err)

	geoRepo := new(MockGeoRepository)
	routeRepo := new(MockRouteRepository)
	factory := new(MockGeoUoWFactory)
	newGeoUoW(factory, geoRepo, routeRepo)

	geoRepo.On("GetRegion", mock.Anything, cmd.RegionID()).Return(nil, errs.ErrObjectNotFound).Once()

	h := commands.NewDeleteRegionCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrRegionNotFound)
	routeRepo.AssertNotCalled(t, "DeleteByRegion", mock.Anything, mock.Anything)
}

func TestDeleteDistrictCommandHandler_Handle_Cascades(t *testing.T) {
	ctx := context.Background()
	region, err := geo.NewRegion(kernel.NewUUID(), "Alpha")
	require.NoError(t, err)
	district, err := geo.NewDistrict(kernel.NewUUID(), region.ID(), "X")
	require.NoError(t, err)
	cmd, err := commands.NewDeleteDistrictCommand(district.ID())
	require.NoError(t, err)

	geoRepo := new(MockGeoRepository)
	routeRepo := new(MockRouteRepository)
	factory := new(MockGeoUoWFactory)
	uow := newGeoUoW(factory, geoRepo, routeRepo)

	mock.InOrder(
		geoRepo.On("GetDistrict", mock.Anything, district.ID()).Return(district, nil).Once(),
		routeRepo.On("DeleteByDistrict", mock.Anything, district.ID()).Return(nil).Once(),
		geoRepo.On("DeleteDistrict", mock.Anything, district.ID()).Return(nil).Once(),
		uow.On("Commit", mock.Anything).Return(nil).Once(),
	)

	h := commands.NewDeleteDistrictCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	geoRepo.AssertExpectations(t)
	routeRepo.AssertExpectations(t)
}
