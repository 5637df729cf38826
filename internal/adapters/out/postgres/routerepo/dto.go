// Package routerepo provides data transfer objects and mapping functions for
// route persistence, including the dispatch channels attached to each route.
package routerepo

import (
	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO represents the database structure for persisting route aggregates.
// NULL district columns denote region-wide endpoints.
type RouteDTO struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey"`
	FromRegionID   uuid.UUID    `gorm:"type:uuid;not null;index"`
	FromDistrictID *uuid.UUID   `gorm:"type:uuid;index"`
	ToRegionID     uuid.UUID    `gorm:"type:uuid;not null;index"`
	ToDistrictID   *uuid.UUID   `gorm:"type:uuid;index"`
	Channels       []ChannelDTO `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "routes".
func (RouteDTO) TableName() string {
	return "routes"
}

// ChannelDTO represents one dispatch channel attached to a route.
// A channel may be attached to multiple routes; the pair is the identity.
type ChannelDTO struct {
	RouteID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChannelID string    `gorm:"type:varchar(255);primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
}

// TableName overrides GORM's default naming convention to use "route_channels".
func (ChannelDTO) TableName() string {
	return "route_channels"
}

func fromDomain(aggregate *route.Route) RouteDTO {
	routeID := aggregate.ID().Bytes()

	channels := make([]ChannelDTO, 0, len(aggregate.Channels()))
	for _, channel := range aggregate.Channels() {
		channels = append(channels, ChannelDTO{
			RouteID:   routeID,
			ChannelID: channel.ID(),
			Name:      channel.Name(),
		})
	}

	return RouteDTO{
		ID:             routeID,
		FromRegionID:   aggregate.FromRegionID().Bytes(),
		FromDistrictID: optionalBytes(aggregate.FromDistrictID()),
		ToRegionID:     aggregate.ToRegionID().Bytes(),
		ToDistrictID:   optionalBytes(aggregate.ToDistrictID()),
		Channels:       channels,
	}
}

func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	fromRegionID, err := kernel.UUIDFromBytes(dto.FromRegionID[:])
	if err != nil {
		return nil, err
	}

	toRegionID, err := kernel.UUIDFromBytes(dto.ToRegionID[:])
	if err != nil {
		return nil, err
	}

	fromDistrictID, err := optionalUUID(dto.FromDistrictID)
	if err != nil {
		return nil, err
	}

	toDistrictID, err := optionalUUID(dto.ToDistrictID)
	if err != nil {
		return nil, err
	}

	channels := make([]route.Channel, 0, len(dto.Channels))
	for _, channelDto := range dto.Channels {
		channel, channelErr := route.NewChannel(channelDto.ChannelID, channelDto.Name)
		if channelErr != nil {
			return nil, channelErr
		}
		channels = append(channels, channel)
	}

	return route.RestoreRoute(id, fromRegionID, fromDistrictID, toRegionID, toDistrictID, channels)
}

func optionalBytes(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}

	raw := id.Bytes()
	return &raw
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}

	return &id, nil
}
