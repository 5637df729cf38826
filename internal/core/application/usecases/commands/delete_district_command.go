package commands

import (
	"errors"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/guard"
)

var ErrDeleteDistrictCommandIsNotConstructed = errors.New(
	"DeleteDistrictCommand must be created via NewDeleteDistrictCommand constructor",
)

// DeleteDistrictCommand represents a request to remove a district together
// with the routes referencing it.
type DeleteDistrictCommand struct { //nolint:recvcheck //using for validation
	districtID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteDistrictCommand creates a command to delete a district.
func NewDeleteDistrictCommand(districtID kernel.UUID) (DeleteDistrictCommand, error) {
	deleteCommand := DeleteDistrictCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deleteCommand.setDistrictID(districtID); err != nil {
		return DeleteDistrictCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteDistrictCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDistrictCommandIsNotConstructed)
}

// DistrictID returns the district to delete.
func (c DeleteDistrictCommand) DistrictID() kernel.UUID {
	return c.districtID
}

func (c *DeleteDistrictCommand) setDistrictID(districtID kernel.UUID) error {
	if err := districtID.Validate(); err != nil {
		return err
	}

	c.districtID = districtID
	return nil
}
