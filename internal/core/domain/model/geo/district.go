package geo

import (
	"errors"
	"strings"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/errs"
)

var (
	// ErrDistrictIsNotConstructed is returned when a District instance was not
	// created through the NewDistrict factory method.
	ErrDistrictIsNotConstructed = errors.New("District must be created via NewDistrict constructor")
)

// District is the second level of the geographic hierarchy. Every district
// belongs to exactly one region, and its name is unique within that region up
// to case. Deleting the parent region deletes the district.
type District struct {
	// id is the unique identifier for the district
	id kernel.UUID

	// name is the display name, unique per region case-insensitively
	name string

	// regionID references the parent region
	regionID kernel.UUID

	// isConstructed ensures the district was created via a constructor
	isConstructed bool
}

// NewDistrict creates a new District bound to a parent region.
func NewDistrict(id kernel.UUID, regionID kernel.UUID, name string) (*District, error) {
	district := &District{
		isConstructed: true,
	}

	if err := errors.Join(
		district.setID(id),
		district.setRegionID(regionID),
		district.setName(name),
	); err != nil {
		return nil, err
	}

	return district, nil
}

// RestoreDistrict reconstructs a District from persisted state.
func RestoreDistrict(id kernel.UUID, regionID kernel.UUID, name string) (*District, error) {
	return NewDistrict(id, regionID, name)
}

// Validate ensures the District instance was properly constructed.
func (d *District) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDistrictIsNotConstructed
	}
	return nil
}

// IsEqual compares two districts by their unique identifiers.
func (d *District) IsEqual(other *District) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the district's unique identifier.
func (d *District) ID() kernel.UUID {
	return d.id
}

// Name returns the district's display name.
func (d *District) Name() string {
	return d.name
}

// RegionID returns the identifier of the parent region.
func (d *District) RegionID() kernel.UUID {
	return d.regionID
}

// NameEquals reports whether the district's name matches the given name up to
// case. Together with RegionID this is the uniqueness key for districts.
func (d *District) NameEquals(name string) bool {
	return strings.EqualFold(d.name, strings.TrimSpace(name))
}

func (d *District) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *District) setRegionID(regionID kernel.UUID) error {
	if err := regionID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("regionId", err)
	}
	d.regionID = regionID
	return nil
}

func (d *District) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}
