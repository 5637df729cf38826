// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Place names are denormalized onto the order row so an
// order keeps rendering after its region or district is deleted.
package orderrepo

import (
	"time"

	"taxidispatch/internal/core/domain/model/geo"
	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by status and accepted driver for queue and per-driver listings.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequesterID      string    `gorm:"type:varchar(255);not null;index"`
	RequesterLabel   string    `gorm:"type:varchar(255)"`
	From             PlaceDTO  `gorm:"embedded;embeddedPrefix:from_"`
	To               PlaceDTO  `gorm:"embedded;embeddedPrefix:to_"`
	Phone            string    `gorm:"type:varchar(13);not null"`
	Comment          string    `gorm:"type:text"`
	Status           int       `gorm:"type:int;not null;index"`
	CreatedAt        time.Time `gorm:"not null"`
	AcceptedBy       string    `gorm:"type:varchar(255);index"`
	AcceptedLabel    string    `gorm:"type:varchar(255)"`
	AcceptedAt       *time.Time
	PostedChannelID  string `gorm:"type:varchar(255)"`
	PostedMessageRef string `gorm:"type:varchar(255)"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// PlaceDTO represents an embedded trip endpoint within the order table:
// the region/district references plus the name snapshot taken at creation.
type PlaceDTO struct {
	RegionID     uuid.UUID `gorm:"type:uuid;not null"`
	RegionName   string    `gorm:"type:varchar(255);not null"`
	DistrictID   *uuid.UUID
	DistrictName string `gorm:"type:varchar(255)"`
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		RequesterID:      aggregate.RequesterID(),
		RequesterLabel:   aggregate.RequesterLabel(),
		From:             placeFromDomain(aggregate.From()),
		To:               placeFromDomain(aggregate.To()),
		Phone:            aggregate.Phone().String(),
		Comment:          aggregate.Comment(),
		Status:           int(aggregate.Status()),
		CreatedAt:        aggregate.CreatedAt(),
		AcceptedBy:       aggregate.AcceptedBy(),
		AcceptedLabel:    aggregate.AcceptedLabel(),
		AcceptedAt:       aggregate.AcceptedAt(),
		PostedChannelID:  aggregate.PostedChannelID(),
		PostedMessageRef: aggregate.PostedMessageRef(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	from, err := placeToDomain(dto.From)
	if err != nil {
		return nil, err
	}

	to, err := placeToDomain(dto.To)
	if err != nil {
		return nil, err
	}

	phone, err := kernel.NewPhoneNumber(dto.Phone)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.RequesterID, dto.RequesterLabel,
		from, to,
		phone,
		dto.Comment,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.AcceptedBy, dto.AcceptedLabel,
		dto.AcceptedAt,
		dto.PostedChannelID, dto.PostedMessageRef,
	)
}

func placeFromDomain(place geo.Place) PlaceDTO {
	var districtID *uuid.UUID
	if id := place.DistrictID(); id != nil {
		raw := id.Bytes()
		districtID = &raw
	}

	return PlaceDTO{
		RegionID:     place.RegionID().Bytes(),
		RegionName:   place.RegionName(),
		DistrictID:   districtID,
		DistrictName: place.DistrictName(),
	}
}

func placeToDomain(dto PlaceDTO) (geo.Place, error) {
	regionID, err := kernel.UUIDFromBytes(dto.RegionID[:])
	if err != nil {
		return geo.Place{}, err
	}

	var districtID *kernel.UUID
	if dto.DistrictID != nil {
		dID, districtErr := kernel.UUIDFromBytes((*dto.DistrictID)[:])
		if districtErr != nil {
			return geo.Place{}, districtErr
		}
		districtID = &dID
	}

	return geo.NewPlace(regionID, dto.RegionName, districtID, dto.DistrictName)
}
