package ports

import (
	"context"

	"taxidispatch/internal/core/domain/model/order"
	"taxidispatch/internal/core/domain/model/route"
)

// Notifier is the outbound messaging boundary: posting new orders to dispatch
// channels, editing the posted message on lifecycle changes, and direct status
// notifications to users.
//
// Delivery is fire-and-forget relative to the ledger: callers log notifier
// errors and never roll back an already-committed mutation because of them.
type Notifier interface {
	// PostOrder announces a new order in every given channel and returns the
	// channel id and message reference of one successfully posted message
	// (the reference the system keeps editable). Empty strings when no post
	// succeeded.
	PostOrder(ctx context.Context, aggregate *order.Order, channels []route.Channel) (channelID string, messageRef string, err error)

	// UpdateOrderMessage edits the order's posted channel message to reflect
	// its current state. No-op when the order has no posted reference.
	UpdateOrderMessage(ctx context.Context, aggregate *order.Order) error

	// NotifyUser sends a direct text notification to a user of the external
	// messaging system.
	NotifyUser(ctx context.Context, userID string, text string) error
}
