// Package notifier provides a structured-log implementation of the Notifier
// port. Channel posts, message edits and user notices are written to the log;
// swapping in a real messaging transport only touches this package.
package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"taxidispatch/internal/core/domain/model/order"
	"taxidispatch/internal/core/domain/model/route"
)

// SlogNotifier logs every outbound notification. Message references are
// generated from a process-local counter so lifecycle updates can name the
// message they would edit.
type SlogNotifier struct {
	logger *slog.Logger
	seq    atomic.Uint64
}

// NewSlogNotifier creates a notifier writing to the given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{
		logger: logger.With("component", "notifier"),
	}
}

// PostOrder announces the order in every channel and returns the reference of
// the first post. Only one reference is retained even when several channels
// receive the announcement.
func (n *SlogNotifier) PostOrder(
	ctx context.Context, aggregate *order.Order, channels []route.Channel,
) (string, string, error) {
	if len(channels) == 0 {
		return "", "", nil
	}

	messageRef := fmt.Sprintf("msg-%d", n.seq.Add(1))
	for _, channel := range channels {
		n.logger.InfoContext(ctx, "order posted to channel",
			"orderId", aggregate.ID().String(),
			"channelId", channel.ID(),
			"channelName", channel.Name(),
			"from", aggregate.From().String(),
			"to", aggregate.To().String(),
		)
	}

	return channels[0].ID(), messageRef, nil
}

// UpdateOrderMessage logs the edit of the order's posted channel message.
// No-op when the order was never posted.
func (n *SlogNotifier) UpdateOrderMessage(ctx context.Context, aggregate *order.Order) error {
	if aggregate.PostedChannelID() == "" {
		return nil
	}

	n.logger.InfoContext(ctx, "order message updated",
		"orderId", aggregate.ID().String(),
		"channelId", aggregate.PostedChannelID(),
		"messageRef", aggregate.PostedMessageRef(),
		"status", aggregate.Status().String(),
	)
	return nil
}

// NotifyUser logs a direct notification to the user.
func (n *SlogNotifier) NotifyUser(ctx context.Context, userID, text string) error {
	n.logger.InfoContext(ctx, "user notified",
		"userId", userID,
		"text", text,
	)
	return nil
}
