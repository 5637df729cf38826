package commands

import (
	"errors"

	"taxidispatch/internal/pkg/guard"
)

var ErrRemoveDriverCommandIsNotConstructed = errors.New(
	"RemoveDriverCommand must be created via NewRemoveDriverCommand constructor",
)

// RemoveDriverCommand represents expelling a driver from the allow-set.
type RemoveDriverCommand struct { //nolint:recvcheck //using for validation
	driverID string

	guard guard.ConstructorGuard
}

// NewRemoveDriverCommand creates a command to expel a driver.
func NewRemoveDriverCommand(driverID string) (RemoveDriverCommand, error) {
	removeCommand := RemoveDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := removeCommand.setDriverID(driverID); err != nil {
		return RemoveDriverCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveDriverCommand) Validate() error {
	return c.guard.Validate(ErrRemoveDriverCommandIsNotConstructed)
}

// DriverID returns the driver being expelled.
func (c RemoveDriverCommand) DriverID() string {
	return c.driverID
}

func (c *RemoveDriverCommand) setDriverID(driverID string) error {
	if driverID == "" {
		return ErrDriverIsRequired
	}

	c.driverID = driverID
	return nil
}
