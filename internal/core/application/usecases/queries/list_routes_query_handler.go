package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taxidispatch/internal/core/domain/model/kernel"
)

// ListRoutesQueryHandler reads the route index with channel attachments.
type ListRoutesQueryHandler struct {
	db *gorm.DB
}

// NewListRoutesQueryHandler creates a handler for route listing.
func NewListRoutesQueryHandler(db *gorm.DB) ListRoutesQueryHandler {
	return ListRoutesQueryHandler{db: db}
}

// Handle executes the query. Routes come back sorted by id with their channel
// rows folded in; a route with no channels has an empty Channels slice.
func (h ListRoutesQueryHandler) Handle(ctx context.Context, query ListRoutesQuery) ([]RouteResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	routes := make([]RouteResponse, 0)
	index := map[string]int{}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.from_region_id,
			r.from_district_id,
			r.to_region_id,
			r.to_district_id,
			c.channel_id,
			c.name
		FROM routes r
		LEFT JOIN route_channels c ON c.route_id = r.id
		ORDER BY r.id, c.channel_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, fromRegion, toRegion uuid.UUID
		var fromDistrict, toDistrict uuid.NullUUID
		var channelID, channelName sql.NullString

		if err = rows.Scan(&id, &fromRegion, &fromDistrict, &toRegion, &toDistrict, &channelID, &channelName); err != nil {
			return nil, err
		}

		pos, seen := index[id.String()]
		if !seen {
			resp, convErr := buildRouteResponse(id, fromRegion, fromDistrict, toRegion, toDistrict)
			if convErr != nil {
				return nil, convErr
			}
			routes = append(routes, resp)
			pos = len(routes) - 1
			index[id.String()] = pos
		}

		if channelID.Valid {
			routes[pos].Channels = append(routes[pos].Channels, ChannelResponse{
				ID:   channelID.String,
				Name: channelName.String,
			})
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return routes, nil
}

func buildRouteResponse(id, fromRegion uuid.UUID, fromDistrict uuid.NullUUID, toRegion uuid.UUID, toDistrict uuid.NullUUID) (RouteResponse, error) {
	routeID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return RouteResponse{}, err
	}
	fromRegionID, err := kernel.UUIDFromBytes(fromRegion[:])
	if err != nil {
		return RouteResponse{}, err
	}
	toRegionID, err := kernel.UUIDFromBytes(toRegion[:])
	if err != nil {
		return RouteResponse{}, err
	}

	resp := RouteResponse{
		ID:           routeID,
		FromRegionID: fromRegionID,
		ToRegionID:   toRegionID,
		Channels:     make([]ChannelResponse, 0),
	}

	if fromDistrict.Valid {
		districtID, convErr := kernel.UUIDFromBytes(fromDistrict.UUID[:])
		if convErr != nil {
			return RouteResponse{}, convErr
		}
		resp.FromDistrictID = &districtID
	}
	if toDistrict.Valid {
		districtID, convErr := kernel.UUIDFromBytes(toDistrict.UUID[:])
		if convErr != nil {
			return RouteResponse{}, convErr
		}
		resp.ToDistrictID = &districtID
	}

	return resp, nil
}
