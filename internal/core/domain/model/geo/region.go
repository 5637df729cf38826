package geo

import (
	"errors"
	"strings"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/errs"
)

var (
	// ErrRegionIsNotConstructed is returned when a Region instance was not created
	// through the NewRegion factory method.
	ErrRegionIsNotConstructed = errors.New("Region must be created via NewRegion constructor")
)

// Region is the top level of the geographic hierarchy. Districts reference a
// region by id; routes reference regions on both their origin and destination
// side. Region names are unique across the system up to case.
//
// Region uses private fields to ensure encapsulation and can only be created
// through NewRegion or restored from persistence through RestoreRegion.
type Region struct {
	// id is the unique identifier for the region
	id kernel.UUID

	// name is the display name, unique case-insensitively
	name string

	// isConstructed ensures the region was created via a constructor
	isConstructed bool
}

// NewRegion creates a new Region with a trimmed, non-empty name.
func NewRegion(id kernel.UUID, name string) (*Region, error) {
	region := &Region{
		isConstructed: true,
	}

	if err := errors.Join(
		region.setID(id),
		region.setName(name),
	); err != nil {
		return nil, err
	}

	return region, nil
}

// RestoreRegion reconstructs a Region from persisted state.
func RestoreRegion(id kernel.UUID, name string) (*Region, error) {
	return NewRegion(id, name)
}

// Validate ensures the Region instance was properly constructed.
func (r *Region) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRegionIsNotConstructed
	}
	return nil
}

// IsEqual compares two regions by their unique identifiers.
func (r *Region) IsEqual(other *Region) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the region's unique identifier.
func (r *Region) ID() kernel.UUID {
	return r.id
}

// Name returns the region's display name.
func (r *Region) Name() string {
	return r.name
}

// NameEquals reports whether the region's name matches the given name up to
// case. This is the uniqueness key for regions.
func (r *Region) NameEquals(name string) bool {
	return strings.EqualFold(r.name, strings.TrimSpace(name))
}

func (r *Region) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Region) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}
