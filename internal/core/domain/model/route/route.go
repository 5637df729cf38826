package route

import (
	"errors"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/errs"
)

var (
	// ErrRouteIsNotConstructed is returned when a Route instance was not created
	// through the NewRoute factory method.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")

	// ErrChannelAlreadyAttached is returned when attaching a channel whose id is
	// already present on the route.
	ErrChannelAlreadyAttached = errors.New("channel is already attached to this route")

	// ErrChannelNotAttached is returned when detaching a channel id the route
	// does not carry.
	ErrChannelNotAttached = errors.New("channel is not attached to this route")
)

// Route is the aggregate to which dispatch channels attach. It describes a
// directed origin→destination pair; the district on either side is optional
// and a nil district means "any district in that region".
//
// Route follows these invariants:
//   - Both region references are valid UUIDs
//   - District references, when present, are valid UUIDs
//   - Attached channel ids are unique
type Route struct {
	// id is the unique identifier for the route
	id kernel.UUID

	// fromRegionID / fromDistrictID describe the origin side
	fromRegionID   kernel.UUID
	fromDistrictID *kernel.UUID

	// toRegionID / toDistrictID describe the destination side
	toRegionID   kernel.UUID
	toDistrictID *kernel.UUID

	// channels are the dispatch destinations bound to this route
	channels []Channel

	// isConstructed ensures the route was created via a constructor
	isConstructed bool
}

// NewRoute creates a Route with no channels attached. District ids may be nil
// to express region-level granularity on that side.
func NewRoute(id, fromRegionID kernel.UUID, fromDistrictID *kernel.UUID, toRegionID kernel.UUID, toDistrictID *kernel.UUID) (*Route, error) {
	r := &Route{
		isConstructed: true,
		channels:      make([]Channel, 0),
	}

	if err := errors.Join(
		r.setID(id),
		r.setFrom(fromRegionID, fromDistrictID),
		r.setTo(toRegionID, toDistrictID),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRoute reconstructs a Route, including its channels, from persisted state.
func RestoreRoute(id, fromRegionID kernel.UUID, fromDistrictID *kernel.UUID, toRegionID kernel.UUID, toDistrictID *kernel.UUID, channels []Channel) (*Route, error) {
	r, err := NewRoute(id, fromRegionID, fromDistrictID, toRegionID, toDistrictID)
	if err != nil {
		return nil, err
	}

	for _, c := range channels {
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}
	r.channels = append(r.channels, channels...)
	return r, nil
}

// Validate ensures the Route instance was properly constructed.
func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}
	return nil
}

// IsEqual compares two routes by their unique identifiers.
func (r *Route) IsEqual(other *Route) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the route's unique identifier.
func (r *Route) ID() kernel.UUID {
	return r.id
}

// FromRegionID returns the origin region id.
func (r *Route) FromRegionID() kernel.UUID {
	return r.fromRegionID
}

// FromDistrictID returns the origin district id, nil for "any district".
func (r *Route) FromDistrictID() *kernel.UUID {
	return r.fromDistrictID
}

// ToRegionID returns the destination region id.
func (r *Route) ToRegionID() kernel.UUID {
	return r.toRegionID
}

// ToDistrictID returns the destination district id, nil for "any district".
func (r *Route) ToDistrictID() *kernel.UUID {
	return r.toDistrictID
}

// Channels returns a copy of the attached channel list.
func (r *Route) Channels() []Channel {
	out := make([]Channel, len(r.channels))
	copy(out, r.channels)
	return out
}

// AttachChannel adds a dispatch channel to the route.
// Returns ErrChannelAlreadyAttached if a channel with the same id is present.
func (r *Route) AttachChannel(channel Channel) error {
	if err := channel.Validate(); err != nil {
		return err
	}

	for _, existing := range r.channels {
		if existing.IsEqual(channel) {
			return ErrChannelAlreadyAttached
		}
	}

	r.channels = append(r.channels, channel)
	return nil
}

// DetachChannel removes the channel with the given id from the route.
// Returns ErrChannelNotAttached when the id is not present.
func (r *Route) DetachChannel(channelID string) error {
	for i, existing := range r.channels {
		if existing.ID() == channelID {
			r.channels = append(r.channels[:i], r.channels[i+1:]...)
			return nil
		}
	}
	return ErrChannelNotAttached
}

// ReferencesRegion reports whether the route references the region on either side.
// Used for cascade deletion when a region is removed.
func (r *Route) ReferencesRegion(regionID kernel.UUID) bool {
	return r.fromRegionID.IsEqual(regionID) || r.toRegionID.IsEqual(regionID)
}

// ReferencesDistrict reports whether the route references the district on either side.
// Used for cascade deletion when a district is removed.
func (r *Route) ReferencesDistrict(districtID kernel.UUID) bool {
	if r.fromDistrictID != nil && r.fromDistrictID.IsEqual(districtID) {
		return true
	}
	return r.toDistrictID != nil && r.toDistrictID.IsEqual(districtID)
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setFrom(regionID kernel.UUID, districtID *kernel.UUID) error {
	if err := regionID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("fromRegionId", err)
	}
	if districtID != nil {
		if err := districtID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("fromDistrictId", err)
		}
	}
	r.fromRegionID = regionID
	r.fromDistrictID = districtID
	return nil
}

func (r *Route) setTo(regionID kernel.UUID, districtID *kernel.UUID) error {
	if err := regionID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("toRegionId", err)
	}
	if districtID != nil {
		if err := districtID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("toDistrictId", err)
		}
	}
	r.toRegionID = regionID
	r.toDistrictID = districtID
	return nil
}
