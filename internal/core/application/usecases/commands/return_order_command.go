package commands

import (
	"errors"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/guard"
)

var ErrReturnOrderCommandIsNotConstructed = errors.New(
	"ReturnOrderCommand must be created via NewReturnOrderCommand constructor",
)

// ReturnOrderCommand represents a driver giving an accepted order back to the
// pending pool.
type ReturnOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID string

	guard guard.ConstructorGuard
}

// NewReturnOrderCommand creates a command for a driver to return an order.
func NewReturnOrderCommand(orderID kernel.UUID, driverID string) (ReturnOrderCommand, error) {
	returnCommand := ReturnOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		returnCommand.setOrderID(orderID),
		returnCommand.setDriverID(driverID),
	); err != nil {
		return ReturnOrderCommand{}, err
	}

	return returnCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReturnOrderCommand) Validate() error {
	return c.guard.Validate(ErrReturnOrderCommandIsNotConstructed)
}

// OrderID returns the order being returned.
func (c ReturnOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the returning driver's external identifier.
func (c ReturnOrderCommand) DriverID() string {
	return c.driverID
}

func (c *ReturnOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReturnOrderCommand) setDriverID(driverID string) error {
	if driverID == "" {
		return ErrDriverIsRequired
	}

	c.driverID = driverID
	return nil
}
