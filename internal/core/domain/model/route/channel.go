package route

import (
	"strings"

	"taxidispatch/internal/pkg/errs"
)

// Channel is a value object describing an external dispatch destination
// (e.g. a messaging group) attached to a route. The id is the external
// system's identifier and is treated as opaque; the name is for display.
//
// Channel identity is the id alone: the matcher deduplicates matched
// channels by id, and a route refuses to attach the same id twice.
type Channel struct {
	id   string
	name string
}

// NewChannel creates a Channel from an external channel id and display name.
// An empty name is allowed; an empty id is not.
func NewChannel(id, name string) (Channel, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Channel{}, errs.NewValueIsRequiredError("channelId")
	}
	return Channel{id: id, name: strings.TrimSpace(name)}, nil
}

// ID returns the external channel identifier.
func (c Channel) ID() string {
	return c.id
}

// Name returns the channel display name, possibly empty.
func (c Channel) Name() string {
	return c.name
}

// IsEqual compares channels by id.
func (c Channel) IsEqual(other Channel) bool {
	return c.id == other.id
}

// Validate checks if the Channel carries an id.
func (c Channel) Validate() error {
	if c.id == "" {
		return errs.NewValueIsRequiredError("channelId")
	}
	return nil
}
