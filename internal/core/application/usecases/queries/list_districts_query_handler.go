package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taxidispatch/internal/core/domain/model/kernel"
)

// ListDistrictsQueryHandler reads a region's districts from the database.
type ListDistrictsQueryHandler struct {
	db *gorm.DB
}

// NewListDistrictsQueryHandler creates a handler for district listing.
func NewListDistrictsQueryHandler(db *gorm.DB) ListDistrictsQueryHandler {
	return ListDistrictsQueryHandler{db: db}
}

// Handle executes the query, sorted case-insensitively by name.
func (h ListDistrictsQueryHandler) Handle(ctx context.Context, query ListDistrictsQuery) ([]DistrictResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	districts := make([]DistrictResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			region_id,
			name
		FROM districts
		WHERE region_id = ?
		ORDER BY LOWER(name)
	`, query.RegionID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, regionID uuid.UUID
		var name string

		if err = rows.Scan(&id, &regionID, &name); err != nil {
			return nil, err
		}

		districtID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		parentID, idErr := kernel.UUIDFromBytes(regionID[:])
		if idErr != nil {
			return nil, idErr
		}

		districts = append(districts, DistrictResponse{ID: districtID, RegionID: parentID, Name: name})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return districts, nil
}
