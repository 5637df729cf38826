// Package ports defines the contracts between the dispatch core and
// infrastructure: repositories for the geography, route, order and driver
// account aggregates, the unit of work that serializes their mutations, and
// the notifier boundary for channel/user messaging.
package ports

import (
	"context"

	"taxidispatch/internal/core/domain/model/geo"
	"taxidispatch/internal/core/domain/model/kernel"
)

// GeoRepository defines the persistence contract for the geographic hierarchy:
// regions and the districts nested under them.
type GeoRepository interface {
	// AddRegion persists a new region aggregate.
	AddRegion(ctx context.Context, region *geo.Region) error

	// GetRegion retrieves a region by its unique identifier.
	GetRegion(ctx context.Context, id kernel.UUID) (*geo.Region, error)

	// GetRegionByName retrieves a region by case-insensitive name,
	// nil result with errs.ErrObjectNotFound when absent.
	GetRegionByName(ctx context.Context, name string) (*geo.Region, error)

	// GetAllRegions retrieves every region.
	GetAllRegions(ctx context.Context) ([]*geo.Region, error)

	// DeleteRegion removes a region and all districts nested under it.
	// Route cleanup is the caller's responsibility.
	DeleteRegion(ctx context.Context, id kernel.UUID) error

	// AddDistrict persists a new district under its region.
	AddDistrict(ctx context.Context, district *geo.District) error

	// GetDistrict retrieves a district by its unique identifier.
	GetDistrict(ctx context.Context, id kernel.UUID) (*geo.District, error)

	// GetDistrictByName retrieves a district within a region by
	// case-insensitive name.
	GetDistrictByName(ctx context.Context, regionID kernel.UUID, name string) (*geo.District, error)

	// GetDistrictsByRegion retrieves all districts of a region.
	GetDistrictsByRegion(ctx context.Context, regionID kernel.UUID) ([]*geo.District, error)

	// DeleteDistrict removes a single district.
	DeleteDistrict(ctx context.Context, id kernel.UUID) error
}
