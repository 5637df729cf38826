package commands

import (
	"context"
	"errors"

	"taxidispatch/internal/pkg/errs"
)

// DeleteRegionCommandHandler handles region removal with its full cascade:
// every district of the region and every route whose origin or destination
// references the region are removed in the same transaction.
type DeleteRegionCommandHandler struct {
	uowFactory GeoUoWFactory
}

// NewDeleteRegionCommandHandler creates a handler for region deletion.
func NewDeleteRegionCommandHandler(uowFactory GeoUoWFactory) DeleteRegionCommandHandler {
	return DeleteRegionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the region deletion command.
func (h DeleteRegionCommandHandler) Handle(ctx context.Context, cmd DeleteRegionCommand) error {
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

	if _, err := geoRepo.GetRegion(ctx, cmd.RegionID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrRegionNotFound
		}
		return err
	}

	if err := uow.RouteRepository().DeleteByRegion(ctx, cmd.RegionID()); err != nil {
		return err
	}

	if err := geoRepo.DeleteRegion(ctx, cmd.RegionID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
