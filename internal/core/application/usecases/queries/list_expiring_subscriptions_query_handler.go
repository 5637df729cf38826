package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ListExpiringSubscriptionsQueryHandler reads soon-to-expire subscriptions
// from the database.
type ListExpiringSubscriptionsQueryHandler struct {
	db *gorm.DB
}

// NewListExpiringSubscriptionsQueryHandler creates a handler for expiring
// subscription lookups.
func NewListExpiringSubscriptionsQueryHandler(db *gorm.DB) ListExpiringSubscriptionsQueryHandler {
	return ListExpiringSubscriptionsQueryHandler{db: db}
}

// Handle executes the query. Already-expired subscriptions are excluded:
// the window covers (now, now+window].
func (h ListExpiringSubscriptionsQueryHandler) Handle(
	ctx context.Context, query ListExpiringSubscriptionsQuery,
) ([]ExpiringSubscriptionResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	until := now.Add(query.Window())

	expiring := make([]ExpiringSubscriptionResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			driver_id,
			subscription_end
		FROM driver_accounts
		WHERE subscription_end > ?
		  AND subscription_end <= ?
		ORDER BY subscription_end
	`, now, until).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var driverID string
		var subscriptionEnd time.Time

		if err = rows.Scan(&driverID, &subscriptionEnd); err != nil {
			return nil, err
		}

		expiring = append(expiring, ExpiringSubscriptionResponse{
			DriverID:        driverID,
			SubscriptionEnd: subscriptionEnd,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return expiring, nil
}
