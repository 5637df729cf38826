package commands

import (
	"context"
	"errors"

	"taxidispatch/internal/core/domain/model/geo"
	"taxidispatch/internal/pkg/errs"
)

var (
	// ErrDistrictAlreadyExists is returned when the region already has a
	// district with the same case-insensitive name.
	ErrDistrictAlreadyExists = errors.New("district with this name already exists in the region")

	ErrDistrictNotFound = errors.New("district not found")
)

// AddDistrictCommandHandler handles registering districts under regions.
type AddDistrictCommandHandler struct {
	uowFactory GeoUoWFactory
}

// NewAddDistrictCommandHandler creates a handler for district registration.
func NewAddDistrictCommandHandler(uowFactory GeoUoWFactory) AddDistrictCommandHandler {
	return AddDistrictCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the district registration command.
// The parent region must exist; district names are unique case-insensitively
// within their region.
func (h AddDistrictCommandHandler) Handle(ctx context.Context, cmd AddDistrictCommand) error {
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

	_, err := geoRepo.GetDistrictByName(ctx, cmd.RegionID(), cmd.Name())
	if err == nil {
		return ErrDistrictAlreadyExists
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	district, err := geo.NewDistrict(cmd.DistrictID(), cmd.RegionID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = geoRepo.AddDistrict(ctx, district); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
