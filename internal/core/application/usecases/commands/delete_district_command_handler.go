package commands

import (
	"context"
	"errors"

	"taxidispatch/internal/pkg/errs"
)

// DeleteDistrictCommandHandler handles district removal with its cascade:
// every route referencing the district as origin or destination is removed in
// the same transaction. The parent region and sibling districts are untouched.
type DeleteDistrictCommandHandler struct {
	uowFactory GeoUoWFactory
}

// NewDeleteDistrictCommandHandler creates a handler for district deletion.
func NewDeleteDistrictCommandHandler(uowFactory GeoUoWFactory) DeleteDistrictCommandHandler {
	return DeleteDistrictCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the district deletion command.
func (h DeleteDistrictCommandHandler) Handle(ctx context.Context, cmd DeleteDistrictCommand) error {
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

	if _, err := geoRepo.GetDistrict(ctx, cmd.DistrictID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrDistrictNotFound
		}
		return err
	}

	if err := uow.RouteRepository().DeleteByDistrict(ctx, cmd.DistrictID()); err != nil {
		return err
	}

	if err := geoRepo.DeleteDistrict(ctx, cmd.DistrictID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
