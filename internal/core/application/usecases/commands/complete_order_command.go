package commands

import (
	"errors"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents a driver confirming the ride was carried out.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID string

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command for a driver to complete an order.
func NewCompleteOrderCommand(orderID kernel.UUID, driverID string) (CompleteOrderCommand, error) {
	completeCommand := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		completeCommand.setOrderID(orderID),
		completeCommand.setDriverID(driverID),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the order being completed.
func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the completing driver's external identifier.
func (c CompleteOrderCommand) DriverID() string {
	return c.driverID
}

func (c *CompleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteOrderCommand) setDriverID(driverID string) error {
	if driverID == "" {
		return ErrDriverIsRequired
	}

	c.driverID = driverID
	return nil
}
