package commands

import (
	"errors"
	"strings"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/guard"
)

var ErrAddDistrictCommandIsNotConstructed = errors.New(
	"AddDistrictCommand must be created via NewAddDistrictCommand constructor",
)

// AddDistrictCommand represents a request to register a district under a region.
type AddDistrictCommand struct { //nolint:recvcheck //using for validation
	districtID kernel.UUID
	regionID   kernel.UUID
	name       string

	guard guard.ConstructorGuard
}

// NewAddDistrictCommand creates a command to register a district.
func NewAddDistrictCommand(districtID, regionID kernel.UUID, name string) (AddDistrictCommand, error) {
	districtCommand := AddDistrictCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		districtCommand.setDistrictID(districtID),
		districtCommand.setRegionID(regionID),
		districtCommand.setName(name),
	); err != nil {
		return AddDistrictCommand{}, err
	}

	return districtCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddDistrictCommand) Validate() error {
	return c.guard.Validate(ErrAddDistrictCommandIsNotConstructed)
}

// DistrictID returns the new district's identifier.
func (c AddDistrictCommand) DistrictID() kernel.UUID {
	return c.districtID
}

// RegionID returns the parent region reference.
func (c AddDistrictCommand) RegionID() kernel.UUID {
	return c.regionID
}

// Name returns the district name.
func (c AddDistrictCommand) Name() string {
	return c.name
}

func (c *AddDistrictCommand) setDistrictID(districtID kernel.UUID) error {
	if err := districtID.Validate(); err != nil {
		return err
	}

	c.districtID = districtID
	return nil
}

func (c *AddDistrictCommand) setRegionID(regionID kernel.UUID) error {
	if err := regionID.Validate(); err != nil {
		return err
	}

	c.regionID = regionID
	return nil
}

func (c *AddDistrictCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
