package commands

import (
	"errors"
	"strings"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/guard"
)

var (
	ErrAttachChannelCommandIsNotConstructed = errors.New(
		"AttachChannelCommand must be created via NewAttachChannelCommand constructor",
	)
	ErrChannelIsRequired = errors.New("channel id is required")
)

// AttachChannelCommand represents a request to attach a dispatch channel to a
// route, making the channel receive orders matching that route.
type AttachChannelCommand struct { //nolint:recvcheck //using for validation
	routeID     kernel.UUID
	channelID   string
	channelName string

	guard guard.ConstructorGuard
}

// NewAttachChannelCommand creates a command to attach a channel to a route.
func NewAttachChannelCommand(routeID kernel.UUID, channelID, channelName string) (AttachChannelCommand, error) {
	attachCommand := AttachChannelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		attachCommand.setRouteID(routeID),
		attachCommand.setChannel(channelID, channelName),
	); err != nil {
		return AttachChannelCommand{}, err
	}

	return attachCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachChannelCommand) Validate() error {
	return c.guard.Validate(ErrAttachChannelCommandIsNotConstructed)
}

// RouteID returns the route gaining the channel.
func (c AttachChannelCommand) RouteID() kernel.UUID {
	return c.routeID
}

// ChannelID returns the external channel identifier.
func (c AttachChannelCommand) ChannelID() string {
	return c.channelID
}

// ChannelName returns the channel's display name.
func (c AttachChannelCommand) ChannelName() string {
	return c.channelName
}

func (c *AttachChannelCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}

func (c *AttachChannelCommand) setChannel(channelID, channelName string) error {
	channelID = strings.TrimSpace(channelID)
	if channelID == "" {
		return ErrChannelIsRequired
	}

	c.channelID = channelID
	c.channelName = channelName
	return nil
}
