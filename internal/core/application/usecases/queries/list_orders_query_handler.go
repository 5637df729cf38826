package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/core/domain/model/order"
)

// ListOrdersQueryHandler reads orders from the database with optional filters.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query. Results come back newest first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			requester_id,
			requester_label,
			from_region_name,
			from_district_name,
			to_region_name,
			to_district_name,
			phone,
			comment,
			status,
			created_at,
			accepted_by,
			accepted_label,
			accepted_at
		FROM orders
		WHERE 1=1
	`
	args := make([]any, 0, 2)

	if query.Status() != nil {
		sqlQuery += " AND status = ?"
		args = append(args, *query.Status())
	}
	if query.AcceptedBy() != "" {
		sqlQuery += " AND accepted_by = ?"
		args = append(args, query.AcceptedBy())
	}
	sqlQuery += " ORDER BY created_at DESC"

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id         uuid.UUID
			resp       OrderResponse
			status     int
			createdAt  time.Time
			acceptedAt sql.NullTime
		)

		if err = rows.Scan(
			&id,
			&resp.RequesterID,
			&resp.RequesterLabel,
			&resp.FromRegionName,
			&resp.FromDistrictName,
			&resp.ToRegionName,
			&resp.ToDistrictName,
			&resp.Phone,
			&resp.Comment,
			&status,
			&createdAt,
			&resp.AcceptedBy,
			&resp.AcceptedLabel,
			&acceptedAt,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		resp.ID = orderID
		resp.Status = order.Status(status)
		resp.CreatedAt = createdAt
		if acceptedAt.Valid {
			t := acceptedAt.Time
			resp.AcceptedAt = &t
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
