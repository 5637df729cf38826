package commands

import (
	"errors"

	"taxidispatch/internal/pkg/guard"
)

var (
	ErrExtendSubscriptionCommandIsNotConstructed = errors.New(
		"ExtendSubscriptionCommand must be created via NewExtendSubscriptionCommand constructor",
	)
	ErrDaysIsInvalid = errors.New("days must be greater than 0")
)

// ExtendSubscriptionCommand represents granting a driver additional
// subscription days.
type ExtendSubscriptionCommand struct { //nolint:recvcheck //using for validation
	driverID string
	days     int

	guard guard.ConstructorGuard
}

// NewExtendSubscriptionCommand creates a command to extend a subscription.
func NewExtendSubscriptionCommand(driverID string, days int) (ExtendSubscriptionCommand, error) {
	extendCommand := ExtendSubscriptionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		extendCommand.setDriverID(driverID),
		extendCommand.setDays(days),
	); err != nil {
		return ExtendSubscriptionCommand{}, err
	}

	return extendCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ExtendSubscriptionCommand) Validate() error {
	return c.guard.Validate(ErrExtendSubscriptionCommandIsNotConstructed)
}

// DriverID returns the driver gaining subscription time.
func (c ExtendSubscriptionCommand) DriverID() string {
	return c.driverID
}

// Days returns the number of days granted.
func (c ExtendSubscriptionCommand) Days() int {
	return c.days
}

func (c *ExtendSubscriptionCommand) setDriverID(driverID string) error {
	if driverID == "" {
		return ErrDriverIsRequired
	}

	c.driverID = driverID
	return nil
}

func (c *ExtendSubscriptionCommand) setDays(days int) error {
	if days <= 0 {
		return ErrDaysIsInvalid
	}

	c.days = days
	return nil
}
