package commands

import (
	"errors"
	"strings"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/guard"
)

var ErrDetachChannelCommandIsNotConstructed = errors.New(
	"DetachChannelCommand must be created via NewDetachChannelCommand constructor",
)

// DetachChannelCommand represents a request to detach a dispatch channel from
// a route.
type DetachChannelCommand struct { //nolint:recvcheck //using for validation
	routeID   kernel.UUID
	channelID string

	guard guard.ConstructorGuard
}

// NewDetachChannelCommand creates a command to detach a channel from a route.
func NewDetachChannelCommand(routeID kernel.UUID, channelID string) (DetachChannelCommand, error) {
	detachCommand := DetachChannelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		detachCommand.setRouteID(routeID),
		detachCommand.setChannelID(channelID),
	); err != nil {
		return DetachChannelCommand{}, err
	}

	return detachCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DetachChannelCommand) Validate() error {
	return c.guard.Validate(ErrDetachChannelCommandIsNotConstructed)
}

// RouteID returns the route losing the channel.
func (c DetachChannelCommand) RouteID() kernel.UUID {
	return c.routeID
}

// ChannelID returns the external channel identifier.
func (c DetachChannelCommand) ChannelID() string {
	return c.channelID
}

func (c *DetachChannelCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}

func (c *DetachChannelCommand) setChannelID(channelID string) error {
	channelID = strings.TrimSpace(channelID)
	if channelID == "" {
		return ErrChannelIsRequired
	}

	c.channelID = channelID
	return nil
}
