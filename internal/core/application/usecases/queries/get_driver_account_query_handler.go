package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

// GetDriverAccountQueryHandler resolves a driver's balance, subscription and
// allow-set membership in a single read.
type GetDriverAccountQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverAccountQueryHandler creates a handler over the read database.
func NewGetDriverAccountQueryHandler(db *gorm.DB) GetDriverAccountQueryHandler {
	return GetDriverAccountQueryHandler{db: db}
}

// Handle returns the driver's account state. Drivers without a stored account
// are reported with a zero balance rather than an error.
func (h GetDriverAccountQueryHandler) Handle(
	ctx context.Context, query GetDriverAccountQuery,
) (DriverAccountResponse, error) {
	if err := query.Validate(); err != nil {
		return DriverAccountResponse{}, err
	}

	response := DriverAccountResponse{
		DriverID: query.DriverID(),
	}

	var (
		balance         sql.NullInt64
		subscriptionEnd sql.NullTime
		allowed         bool
	)

	row := h.db.WithContext(ctx).Raw(
		`SELECT a.balance, a.subscription_end,
		        EXISTS(SELECT 1 FROM allowed_drivers d WHERE d.driver_id = ?) AS allowed
		 FROM driver_accounts a
		 WHERE a.driver_id = ?`,
		query.DriverID(), query.DriverID(),
	).Row()

	err := row.Scan(&balance, &subscriptionEnd, &allowed)
	if errors.Is(err, sql.ErrNoRows) {
		// No account row yet. Allow-set membership is tracked separately,
		// so it still has to be checked.
		err = h.db.WithContext(ctx).Raw(
			`SELECT EXISTS(SELECT 1 FROM allowed_drivers d WHERE d.driver_id = ?)`,
			query.DriverID(),
		).Row().Scan(&allowed)
		if err != nil {
			return DriverAccountResponse{}, err
		}

		response.Allowed = allowed
		return response, nil
	}
	if err != nil {
		return DriverAccountResponse{}, err
	}

	response.Balance = int(balance.Int64)
	response.Allowed = allowed
	if subscriptionEnd.Valid {
		end := subscriptionEnd.Time
		response.SubscriptionEnd = &end
	}

	return response, nil
}
