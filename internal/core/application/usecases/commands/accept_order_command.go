package commands

import (
	"errors"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/guard"
)

var (
	ErrAcceptOrderCommandIsNotConstructed = errors.New(
		"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
	)
	ErrDriverIsRequired = errors.New("driver id is required")
)

// AcceptOrderCommand represents a driver's claim on a pending order.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	driverID    string
	driverLabel string

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command for a driver to accept an order.
func NewAcceptOrderCommand(orderID kernel.UUID, driverID, driverLabel string) (AcceptOrderCommand, error) {
	acceptCommand := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		acceptCommand.setOrderID(orderID),
		acceptCommand.setDriver(driverID, driverLabel),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return acceptCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the order being claimed.
func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the claiming driver's external identifier.
func (c AcceptOrderCommand) DriverID() string {
	return c.driverID
}

// DriverLabel returns the claiming driver's display label.
func (c AcceptOrderCommand) DriverLabel() string {
	return c.driverLabel
}

func (c *AcceptOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptOrderCommand) setDriver(driverID, driverLabel string) error {
	if driverID == "" {
		return ErrDriverIsRequired
	}

	c.driverID = driverID
	c.driverLabel = driverLabel
	return nil
}
