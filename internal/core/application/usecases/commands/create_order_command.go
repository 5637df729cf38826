package commands

import (
	"errors"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrRequesterIsRequired = errors.New("requester id is required")
)

// CreateOrderCommand represents a completed ride request ready for dispatch:
// origin and destination references into the geography store, the requester's
// identity and contact number, and an optional comment.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	requesterID    string
	requesterLabel string
	fromRegionID   kernel.UUID
	fromDistrictID *kernel.UUID
	toRegionID     kernel.UUID
	toDistrictID   *kernel.UUID
	phone          kernel.PhoneNumber
	comment        string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new ride order.
// District references are optional on either side; the phone number must
// already be a valid value object.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	requesterID, requesterLabel string,
	fromRegionID kernel.UUID, fromDistrictID *kernel.UUID,
	toRegionID kernel.UUID, toDistrictID *kernel.UUID,
	phone kernel.PhoneNumber,
	comment string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setRequester(requesterID, requesterLabel),
		orderCommand.setTrip(fromRegionID, fromDistrictID, toRegionID, toDistrictID),
		orderCommand.setPhone(phone),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.comment = comment
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequesterID returns the requester's external identifier.
func (c CreateOrderCommand) RequesterID() string {
	return c.requesterID
}

// RequesterLabel returns the requester's display label.
func (c CreateOrderCommand) RequesterLabel() string {
	return c.requesterLabel
}

// FromRegionID returns the origin region reference.
func (c CreateOrderCommand) FromRegionID() kernel.UUID {
	return c.fromRegionID
}

// FromDistrictID returns the optional origin district reference.
func (c CreateOrderCommand) FromDistrictID() *kernel.UUID {
	return c.fromDistrictID
}

// ToRegionID returns the destination region reference.
func (c CreateOrderCommand) ToRegionID() kernel.UUID {
	return c.toRegionID
}

// ToDistrictID returns the optional destination district reference.
func (c CreateOrderCommand) ToDistrictID() *kernel.UUID {
	return c.toDistrictID
}

// Phone returns the requester's contact number.
func (c CreateOrderCommand) Phone() kernel.PhoneNumber {
	return c.phone
}

// Comment returns the optional free-text comment.
func (c CreateOrderCommand) Comment() string {
	return c.comment
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setRequester(requesterID, requesterLabel string) error {
	if requesterID == "" {
		return ErrRequesterIsRequired
	}

	c.requesterID = requesterID
	c.requesterLabel = requesterLabel
	return nil
}

func (c *CreateOrderCommand) setTrip(fromRegionID kernel.UUID, fromDistrictID *kernel.UUID, toRegionID kernel.UUID, toDistrictID *kernel.UUID) error {
	if err := fromRegionID.Validate(); err != nil {
		return err
	}
	if err := toRegionID.Validate(); err != nil {
		return err
	}
	if fromDistrictID != nil {
		if err := fromDistrictID.Validate(); err != nil {
			return err
		}
	}
	if toDistrictID != nil {
		if err := toDistrictID.Validate(); err != nil {
			return err
		}
	}

	c.fromRegionID = fromRegionID
	c.fromDistrictID = fromDistrictID
	c.toRegionID = toRegionID
	c.toDistrictID = toDistrictID
	return nil
}

func (c *CreateOrderCommand) setPhone(phone kernel.PhoneNumber) error {
	if err := phone.Validate(); err != nil {
		return err
	}

	c.phone = phone
	return nil
}
