package commands

import (
	"context"
	"errors"

	"taxidispatch/internal/core/domain/model/geo"
	"taxidispatch/internal/pkg/errs"
)

// ErrRegionAlreadyExists is returned when a region with the same
// case-insensitive name is already registered.
var ErrRegionAlreadyExists = errors.New("region with this name already exists")

// AddRegionCommandHandler handles registering new regions.
type AddRegionCommandHandler struct {
	uowFactory GeoUoWFactory
}

// NewAddRegionCommandHandler creates a handler for region registration.
func NewAddRegionCommandHandler(uowFactory GeoUoWFactory) AddRegionCommandHandler {
	return AddRegionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the region registration command.
// Region names are unique case-insensitively; a duplicate fails with
// ErrRegionAlreadyExists and persists nothing.
func (h AddRegionCommandHandler) Handle(ctx context.Context, cmd AddRegionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	geoRepo := uow.GeoRepository()

	_, err := geoRepo.GetRegionByName(ctx, cmd.Name())
	if err == nil {
		return ErrRegionAlreadyExists
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	region, err := geo.NewRegion(cmd.RegionID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = geoRepo.AddRegion(ctx, region); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
