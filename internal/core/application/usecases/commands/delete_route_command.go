package commands

import (
	"errors"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/guard"
)

var ErrDeleteRouteCommandIsNotConstructed = errors.New(
	"DeleteRouteCommand must be created via NewDeleteRouteCommand constructor",
)

// DeleteRouteCommand represents a request to remove a route with its channel
// attachments.
type DeleteRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteRouteCommand creates a command to delete a route.
func NewDeleteRouteCommand(routeID kernel.UUID) (DeleteRouteCommand, error) {
	deleteCommand := DeleteRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deleteCommand.setRouteID(routeID); err != nil {
		return DeleteRouteCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteRouteCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRouteCommandIsNotConstructed)
}

// RouteID returns the route to delete.
func (c DeleteRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c *DeleteRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}
