package commands

import (
	"context"
	"errors"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/core/domain/model/route"
	"taxidispatch/internal/core/ports"
	"taxidispatch/internal/pkg/errs"
)

// ErrDistrictOutsideRegion is returned when a route endpoint names a district
// that does not belong to the endpoint's region.
var ErrDistrictOutsideRegion = errors.New("district does not belong to the given region")

// AddRouteCommandHandler handles registering routes into the route index.
// Every referenced region and district must exist at registration time.
type AddRouteCommandHandler struct {
	uowFactory GeoUoWFactory
}

// NewAddRouteCommandHandler creates a handler for route registration.
func NewAddRouteCommandHandler(uowFactory GeoUoWFactory) AddRouteCommandHandler {
	return AddRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route registration command.
func (h AddRouteCommandHandler) Handle(ctx context.Context, cmd AddRouteCommand) error {
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

	if err := h.checkEndpoint(ctx, geoRepo, cmd.FromRegionID(), cmd.FromDistrictID()); err != nil {
		return err
	}
	if err := h.checkEndpoint(ctx, geoRepo, cmd.ToRegionID(), cmd.ToDistrictID()); err != nil {
		return err
	}

	aggregate, err := route.NewRoute(cmd.RouteID(), cmd.FromRegionID(), cmd.FromDistrictID(), cmd.ToRegionID(), cmd.ToDistrictID())
	if err != nil {
		return err
	}

	if err = uow.RouteRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h AddRouteCommandHandler) checkEndpoint(ctx context.Context, geoRepo ports.GeoRepository, regionID kernel.UUID, districtID *kernel.UUID) error {
	if _, err := geoRepo.GetRegion(ctx, regionID); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrRegionNotFound
		}
		return err
	}

	if districtID == nil {
		return nil
	}

	district, err := geoRepo.GetDistrict(ctx, *districtID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrDistrictNotFound
	}
	if err != nil {
		return err
	}

	if !district.RegionID().IsEqual(regionID) {
		return ErrDistrictOutsideRegion
	}

	return nil
}
