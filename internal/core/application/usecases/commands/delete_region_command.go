package commands

import (
	"errors"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/guard"
)

var ErrDeleteRegionCommandIsNotConstructed = errors.New(
	"DeleteRegionCommand must be created via NewDeleteRegionCommand constructor",
)

// DeleteRegionCommand represents a request to remove a region with its whole
// subtree: districts and routes referencing it.
type DeleteRegionCommand struct { //nolint:recvcheck //using for validation
	regionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteRegionCommand creates a command to delete a region.
func NewDeleteRegionCommand(regionID kernel.UUID) (DeleteRegionCommand, error) {
	deleteCommand := DeleteRegionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deleteCommand.setRegionID(regionID); err != nil {
		return DeleteRegionCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteRegionCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRegionCommandIsNotConstructed)
}

// RegionID returns the region to delete.
func (c DeleteRegionCommand) RegionID() kernel.UUID {
	return c.regionID
}

func (c *DeleteRegionCommand) setRegionID(regionID kernel.UUID) error {
	if err := regionID.Validate(); err != nil {
		return err
	}

	c.regionID = regionID
	return nil
}
