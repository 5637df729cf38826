package commands

import (
	"errors"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/guard"
)

var ErrAddRouteCommandIsNotConstructed = errors.New(
	"AddRouteCommand must be created via NewAddRouteCommand constructor",
)

// AddRouteCommand represents a request to register a directed route between
// two geography endpoints, each either region-wide or narrowed to a district.
type AddRouteCommand struct { //nolint:recvcheck //using for validation
	routeID        kernel.UUID
	fromRegionID   kernel.UUID
	fromDistrictID *kernel.UUID
	toRegionID     kernel.UUID
	toDistrictID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddRouteCommand creates a command to register a route.
func NewAddRouteCommand(
	routeID kernel.UUID,
	fromRegionID kernel.UUID, fromDistrictID *kernel.UUID,
	toRegionID kernel.UUID, toDistrictID *kernel.UUID,
) (AddRouteCommand, error) {
	routeCommand := AddRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		routeCommand.setRouteID(routeID),
		routeCommand.setEndpoints(fromRegionID, fromDistrictID, toRegionID, toDistrictID),
	); err != nil {
		return AddRouteCommand{}, err
	}

	return routeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddRouteCommand) Validate() error {
	return c.guard.Validate(ErrAddRouteCommandIsNotConstructed)
}

// RouteID returns the new route's identifier.
func (c AddRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// FromRegionID returns the origin region reference.
func (c AddRouteCommand) FromRegionID() kernel.UUID {
	return c.fromRegionID
}

// FromDistrictID returns the optional origin district reference.
func (c AddRouteCommand) FromDistrictID() *kernel.UUID {
	return c.fromDistrictID
}

// ToRegionID returns the destination region reference.
func (c AddRouteCommand) ToRegionID() kernel.UUID {
	return c.toRegionID
}

// ToDistrictID returns the optional destination district reference.
func (c AddRouteCommand) ToDistrictID() *kernel.UUID {
	return c.toDistrictID
}

func (c *AddRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}

func (c *AddRouteCommand) setEndpoints(fromRegionID kernel.UUID, fromDistrictID *kernel.UUID, toRegionID kernel.UUID, toDistrictID *kernel.UUID) error {
	if err := fromRegionID.Validate(); err != nil {
		return err
	}
	if err := toRegionID.Validate(); err != nil {
		return err
	}
	if fromDistrictID != nil {
		if err := fromDistrictID.Validate(); err != nil {
			return err
		}
	}
	if toDistrictID != nil {
		if err := toDistrictID.Validate(); err != nil {
			return err
		}
	}

	c.fromRegionID = fromRegionID
	c.fromDistrictID = fromDistrictID
	c.toRegionID = toRegionID
	c.toDistrictID = toDistrictID
	return nil
}
