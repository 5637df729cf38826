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

func newGeoUoW(factory *MockGeoUoWFactory, geoRepo *MockGeoRepository, routeRepo *MockRouteRepository) *MockGeoUoW {
	uow := new(MockGeoUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
	uow.On("GeoRepository").Return(geoRepo).Maybe()
	uow.On("RouteRepository").Return(routeRepo).Maybe()
	factory.On("Create").Return(uow).Once()
	return uow
}

func TestAddRegionCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewAddRegionCommand(kernel.NewUUID(), "Alpha")
	require.NoError(t, err)

	geoRepo := new(MockGeoRepository)
	factory := new(MockGeoUoWFactory)
	uow := newGeoUoW(factory, geoRepo, new(MockRouteRepository))

	geoRepo.On("GetRegionByName", mock.Anything, "Alpha").Return(nil, errs.ErrObjectNotFound).Once()
	geoRepo.On("AddRegion", mock.Anything, mock.AnythingOfType("*geo.Region")).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	h := commands.NewAddRegionCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	geoRepo.AssertExpectations(t)
}

func TestAddRegionCommandHandler_Handle_DuplicateName(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewAddRegionCommand(kernel.NewUUID(), "alpha")
	require.NoError(t, err)

	existing, err := geo.NewRegion(kernel.NewUUID(), "Alpha")
	require.NoError(t, err)

	geoRepo := new(MockGeoRepository)
	factory := new(MockGeoUoWFactory)
	newGeoUoW(factory, geoRepo, new(MockRouteRepository))

	geoRepo.On("GetRegionByName", mock.Anything, "alpha").Return(existing, nil).Once()

	h := commands.NewAddRegionCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrRegionAlreadyExists)
	geoRepo.AssertNotCalled(t, "AddRegion", mock.Anything, mock.Anything)
}

func TestNewAddRegionCommand_TrimsAndValidatesName(t *testing.T) {
	cmd, err := commands.NewAddRegionCommand(kernel.NewUUID(), "  Alpha  ")
	require.NoError(t, err)
	require.Equal(t, "Alpha", cmd.Name())

	_, err = commands.NewAddRegionCommand(kernel.NewUUID(), "   ")
	require.ErrorIs(t, err, commands.ErrNameIsRequired)
}
