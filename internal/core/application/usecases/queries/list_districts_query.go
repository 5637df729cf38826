package queries

import (
	"errors"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/guard"
)

var ErrListDistrictsQueryIsNotConstructed = errors.New(
	"ListDistrictsQuery must be created via NewListDistrictsQuery constructor",
)

// ListDistrictsQuery retrieves the districts of one region, sorted by name.
type ListDistrictsQuery struct { //nolint:recvcheck //using for validation
	regionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListDistrictsQuery creates a query to list a region's districts.
func NewListDistrictsQuery(regionID kernel.UUID) (ListDistrictsQuery, error) {
	query := ListDistrictsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setRegionID(regionID); err != nil {
		return ListDistrictsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListDistrictsQuery) Validate() error {
	return q.guard.Validate(ErrListDistrictsQueryIsNotConstructed)
}

// RegionID returns the region whose districts are listed.
func (q ListDistrictsQuery) RegionID() kernel.UUID {
	return q.regionID
}

func (q *ListDistrictsQuery) setRegionID(regionID kernel.UUID) error {
	if err := regionID.Validate(); err != nil {
		return err
	}

	q.regionID = regionID
	return nil
}

// DistrictResponse represents one district row.
type DistrictResponse struct {
	ID       kernel.UUID
	RegionID kernel.UUID
	Name     string
}
