package commands

import (
	"errors"

	"taxidispatch/internal/pkg/guard"
)

var (
	ErrAdjustBalanceCommandIsNotConstructed = errors.New(
		"AdjustBalanceCommand must be created via NewAdjustBalanceCommand constructor",
	)
	ErrDeltaIsZero = errors.New("balance delta must not be zero")
)

// AdjustBalanceCommand represents an administrative balance movement on a
// driver account: a top-up when positive, a correction when negative.
type AdjustBalanceCommand struct { //nolint:recvcheck //using for validation
	driverID string
	delta    int

	guard guard.ConstructorGuard
}

// NewAdjustBalanceCommand creates a command to adjust a driver's balance.
func NewAdjustBalanceCommand(driverID string, delta int) (AdjustBalanceCommand, error) {
	adjustCommand := AdjustBalanceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		adjustCommand.setDriverID(driverID),
		adjustCommand.setDelta(delta),
	); err != nil {
		return AdjustBalanceCommand{}, err
	}

	return adjustCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustBalanceCommand) Validate() error {
	return c.guard.Validate(ErrAdjustBalanceCommandIsNotConstructed)
}

// DriverID returns the driver whose balance moves.
func (c AdjustBalanceCommand) DriverID() string {
	return c.driverID
}

// Delta returns the signed balance movement.
func (c AdjustBalanceCommand) Delta() int {
	return c.delta
}

func (c *AdjustBalanceCommand) setDriverID(driverID string) error {
	if driverID == "" {
		return ErrDriverIsRequired
	}

	c.driverID = driverID
	return nil
}

func (c *AdjustBalanceCommand) setDelta(delta int) error {
	if delta == 0 {
		return ErrDeltaIsZero
	}

	c.delta = delta
	return nil
}
