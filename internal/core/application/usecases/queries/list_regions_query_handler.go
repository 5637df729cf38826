package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taxidispatch/internal/core/domain/model/kernel"
)

// ListRegionsQueryHandler reads the region list from the database.
type ListRegionsQueryHandler struct {
	db *gorm.DB
}

// NewListRegionsQueryHandler creates a handler for region listing.
func NewListRegionsQueryHandler(db *gorm.DB) ListRegionsQueryHandler {
	return ListRegionsQueryHandler{db: db}
}

// Handle executes the query. Regions come back sorted case-insensitively by
// name for stable menu rendering.
func (h ListRegionsQueryHandler) Handle(ctx context.Context, query ListRegionsQuery) ([]RegionResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	regions := make([]RegionResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name
		FROM regions
		ORDER BY LOWER(name)
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var name string

		if err = rows.Scan(&id, &name); err != nil {
			return nil, err
		}

		regionID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		regions = append(regions, RegionResponse{ID: regionID, Name: name})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return regions, nil
}
