package order

import (
	"errors"
	"time"

	"taxidispatch/internal/core/domain/model/geo"
	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/errs"
)

// AcceptanceCost is the fixed amount debited from a driver's balance when
// accepting any order, and credited back on return or administrative
// cancellation. There is no per-route or per-distance pricing.
const AcceptanceCost = 100

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderNotOwned is returned when a driver attempts to return or complete
	// an order accepted by somebody else (or by nobody).
	ErrOrderNotOwned = errors.New("order can only be modified by the driver who accepted it")

	// ErrOrderAlreadyCompleted is returned when completing an order twice.
	ErrOrderAlreadyCompleted = errors.New("order is already completed")

	// ErrOrderAlreadyTerminal is returned when cancelling an order that is
	// already completed or cancelled.
	ErrOrderAlreadyTerminal = errors.New("order is already in a terminal status")
)

// Order is the aggregate root of the order ledger: a single ride request
// moving through the Pending/Accepted/Completed/Cancelled lifecycle.
//
// Order follows these invariants:
//   - Region/district names are snapshotted at creation and never change
//   - Status transitions follow the Status state machine only
//   - AcceptedBy is set exactly while the order is accepted or completed,
//     and is retained for audit when an accepted order is cancelled
//   - The phone number is re-validated here even though the front-end
//     already validated it
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// requesterID / requesterLabel identify the passenger in the external
	// messaging system; both are opaque to the core
	requesterID    string
	requesterLabel string

	// from / to are immutable geography snapshots
	from geo.Place
	to   geo.Place

	// phone is the requester's validated contact number
	phone kernel.PhoneNumber

	// comment is optional free text from the requester
	comment string

	// status is the current lifecycle state
	status Status

	createdAt time.Time

	// acceptedBy / acceptedLabel / acceptedAt describe the accepting driver
	acceptedBy    string
	acceptedLabel string
	acceptedAt    *time.Time

	// postedChannelID / postedMessageRef reference the one channel message
	// the system keeps editable. When an order is posted to several channels
	// only a single reference is retained; lifecycle updates reach only that
	// message. Known limitation, kept deliberately.
	postedChannelID  string
	postedMessageRef string

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a Pending order from a completed order intent.
// The geography snapshot and the phone number must already be valid value
// objects; creation timestamps the order with the supplied time.
func NewOrder(id kernel.UUID, requesterID, requesterLabel string, from, to geo.Place, phone kernel.PhoneNumber, comment string, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRequester(requesterID, requesterLabel),
		o.setTrip(from, to),
		o.setPhone(phone),
	); err != nil {
		return nil, err
	}

	o.comment = comment
	o.createdAt = createdAt.UTC()
	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state, re-checking the
// status/driver consistency invariant.
func RestoreOrder(
	id kernel.UUID,
	requesterID, requesterLabel string,
	from, to geo.Place,
	phone kernel.PhoneNumber,
	comment string,
	status Status,
	createdAt time.Time,
	acceptedBy, acceptedLabel string,
	acceptedAt *time.Time,
	postedChannelID, postedMessageRef string,
) (*Order, error) {
	o, err := NewOrder(id, requesterID, requesterLabel, from, to, phone, comment, createdAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if status != Cancelled {
		if err := status.ValidateCanHaveDriver(acceptedBy != ""); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.acceptedBy = acceptedBy
	o.acceptedLabel = acceptedLabel
	o.acceptedAt = acceptedAt
	o.postedChannelID = postedChannelID
	o.postedMessageRef = postedMessageRef
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// RequesterID returns the external identifier of the passenger.
func (o *Order) RequesterID() string {
	return o.requesterID
}

// RequesterLabel returns the passenger's display label.
func (o *Order) RequesterLabel() string {
	return o.requesterLabel
}

// From returns the origin snapshot.
func (o *Order) From() geo.Place {
	return o.from
}

// To returns the destination snapshot.
func (o *Order) To() geo.Place {
	return o.to
}

// Phone returns the requester's contact number.
func (o *Order) Phone() kernel.PhoneNumber {
	return o.phone
}

// Comment returns the optional requester comment, empty when absent.
func (o *Order) Comment() string {
	return o.comment
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp (UTC).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AcceptedBy returns the external id of the accepting driver, empty when none.
func (o *Order) AcceptedBy() string {
	return o.acceptedBy
}

// AcceptedLabel returns the accepting driver's display label.
func (o *Order) AcceptedLabel() string {
	return o.acceptedLabel
}

// AcceptedAt returns when the order was accepted, nil when it never was or
// was returned.
func (o *Order) AcceptedAt() *time.Time {
	return o.acceptedAt
}

// PostedChannelID returns the id of the single channel whose message the
// system keeps updated, empty if posting never succeeded.
func (o *Order) PostedChannelID() string {
	return o.postedChannelID
}

// PostedMessageRef returns the message reference within the posted channel.
func (o *Order) PostedMessageRef() string {
	return o.postedMessageRef
}

// Accept transitions the order to Accepted and records the driver.
//
// The caller is responsible for the driver's eligibility checks (allow-set
// membership, unexpired subscription, sufficient balance) and for debiting
// AcceptanceCost within the same transaction. If the order is not Pending the
// transition fails and nothing is recorded: first writer wins.
func (o *Order) Accept(driverID, driverLabel string, at time.Time) error {
	if driverID == "" {
		return errs.NewValueIsRequiredError("driverId")
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	at = at.UTC()
	o.status = newStatus
	o.acceptedBy = driverID
	o.acceptedLabel = driverLabel
	o.acceptedAt = &at
	return nil
}

// Return transitions the order back to Pending and clears the driver fields.
// Only the driver who accepted the order may return it. The caller credits
// AcceptanceCost back within the same transaction.
func (o *Order) Return(driverID string) error {
	if o.acceptedBy == "" || o.acceptedBy != driverID {
		return ErrOrderNotOwned
	}

	newStatus, err := o.status.Return()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.acceptedBy = ""
	o.acceptedLabel = ""
	o.acceptedAt = nil
	return nil
}

// Complete transitions the order to Completed.
// Only the accepting driver may complete; no balance movement happens here
// (the cost was captured at acceptance).
func (o *Order) Complete(driverID string) error {
	if o.status == Completed {
		return ErrOrderAlreadyCompleted
	}
	if o.acceptedBy == "" || o.acceptedBy != driverID {
		return ErrOrderNotOwned
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel transitions the order to Cancelled (administrative withdrawal).
// The driver fields are NOT cleared: when an accepted order is cancelled the
// audit trail keeps who held it, while the caller refunds AcceptanceCost.
func (o *Order) Cancel() error {
	if o.status.IsTerminal() {
		return ErrOrderAlreadyTerminal
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// SetPostedMessage records the single channel/message reference retained for
// this order. Posting to further channels overwrites the reference, so the
// last successful post wins.
func (o *Order) SetPostedMessage(channelID, messageRef string) {
	o.postedChannelID = channelID
	o.postedMessageRef = messageRef
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRequester(requesterID, requesterLabel string) error {
	if requesterID == "" {
		return errs.NewValueIsRequiredError("requesterId")
	}
	o.requesterID = requesterID
	o.requesterLabel = requesterLabel
	return nil
}

func (o *Order) setTrip(from, to geo.Place) error {
	if err := from.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("from", err)
	}
	if err := to.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("to", err)
	}
	o.from = from
	o.to = to
	return nil
}

func (o *Order) setPhone(phone kernel.PhoneNumber) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	o.phone = phone
	return nil
}
