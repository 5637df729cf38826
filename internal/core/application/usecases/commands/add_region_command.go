package commands

import (
	"errors"
	"strings"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/guard"
)

var (
	ErrAddRegionCommandIsNotConstructed = errors.New(
		"AddRegionCommand must be created via NewAddRegionCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// AddRegionCommand represents a request to register a new top-level region.
type AddRegionCommand struct { //nolint:recvcheck //using for validation
	regionID kernel.UUID
	name     string

	guard guard.ConstructorGuard
}

// NewAddRegionCommand creates a command to register a region.
func NewAddRegionCommand(regionID kernel.UUID, name string) (AddRegionCommand, error) {
	regionCommand := AddRegionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		regionCommand.setRegionID(regionID),
		regionCommand.setName(name),
	); err != nil {
		return AddRegionCommand{}, err
	}

	return regionCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddRegionCommand) Validate() error {
	return c.guard.Validate(ErrAddRegionCommandIsNotConstructed)
}

// RegionID returns the new region's identifier.
func (c AddRegionCommand) RegionID() kernel.UUID {
	return c.regionID
}

// Name returns the region name.
func (c AddRegionCommand) Name() string {
	return c.name
}

func (c *AddRegionCommand) setRegionID(regionID kernel.UUID) error {
	if err := regionID.Validate(); err != nil {
		return err
	}

	c.regionID = regionID
	return nil
}

func (c *AddRegionCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
