package commands

import (
	"errors"

	"taxidispatch/internal/pkg/guard"
)

var ErrAddDriverCommandIsNotConstructed = errors.New(
	"AddDriverCommand must be created via NewAddDriverCommand constructor",
)

// AddDriverCommand represents admitting a driver into the allow-set.
type AddDriverCommand struct { //nolint:recvcheck //using for validation
	driverID string

	guard guard.ConstructorGuard
}

// NewAddDriverCommand creates a command to admit a driver.
func NewAddDriverCommand(driverID string) (AddDriverCommand, error) {
	addCommand := AddDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := addCommand.setDriverID(driverID); err != nil {
		return AddDriverCommand{}, err
	}

	return addCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddDriverCommand) Validate() error {
	return c.guard.Validate(ErrAddDriverCommandIsNotConstructed)
}

// DriverID returns the driver being admitted.
func (c AddDriverCommand) DriverID() string {
	return c.driverID
}

func (c *AddDriverCommand) setDriverID(driverID string) error {
	if driverID == "" {
		return ErrDriverIsRequired
	}

	c.driverID = driverID
	return nil
}
