package geo

import (
	"strings"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/errs"
)

// Place is a value object naming one side of a trip: a region, optionally
// narrowed to a district. Orders store Places as immutable snapshots taken at
// creation time, so later edits to the geo hierarchy never rewrite history.
type Place struct {
	regionID     kernel.UUID
	regionName   string
	districtID   *kernel.UUID
	districtName string
}

// NewPlace creates a Place. districtID may be nil ("anywhere in the region");
// districtName must be set exactly when districtID is.
func NewPlace(regionID kernel.UUID, regionName string, districtID *kernel.UUID, districtName string) (Place, error) {
	if err := regionID.Validate(); err != nil {
		return Place{}, errs.NewValueIsRequiredErrorWithCause("regionId", err)
	}

	regionName = strings.TrimSpace(regionName)
	if regionName == "" {
		return Place{}, errs.NewValueIsRequiredError("regionName")
	}

	districtName = strings.TrimSpace(districtName)
	if districtID != nil {
		if err := districtID.Validate(); err != nil {
			return Place{}, errs.NewValueIsInvalidErrorWithCause("districtId", err)
		}
		if districtName == "" {
			return Place{}, errs.NewValueIsRequiredError("districtName")
		}
	} else if districtName != "" {
		return Place{}, errs.NewValueIsInvalidErrorWithCause("districtName",
			errs.NewValueIsRequiredError("districtId"))
	}

	return Place{
		regionID:     regionID,
		regionName:   regionName,
		districtID:   districtID,
		districtName: districtName,
	}, nil
}

// RegionID returns the region identifier.
func (p Place) RegionID() kernel.UUID {
	return p.regionID
}

// RegionName returns the region name captured when the place was built.
func (p Place) RegionName() string {
	return p.regionName
}

// DistrictID returns the district identifier, nil for region-level places.
func (p Place) DistrictID() *kernel.UUID {
	return p.districtID
}

// DistrictName returns the district name, empty for region-level places.
func (p Place) DistrictName() string {
	return p.districtName
}

// Validate checks if the Place is properly constructed.
func (p Place) Validate() error {
	if p.regionName == "" {
		return errs.NewValueIsRequiredError("Place must be created via NewPlace")
	}
	return nil
}

// String renders the place as "Region" or "Region (District)".
func (p Place) String() string {
	if p.districtName == "" {
		return p.regionName
	}
	return p.regionName + " (" + p.districtName + ")"
}
