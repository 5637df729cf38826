// Package georepo provides data transfer objects and mapping functions for
// persisting the geographic hierarchy: regions and their nested districts.
package georepo

import (
	"taxidispatch/internal/core/domain/model/geo"
	"taxidispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RegionDTO represents the database structure for persisting regions.
type RegionDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
}

// TableName overrides GORM's default naming convention to use "regions".
func (RegionDTO) TableName() string {
	return "regions"
}

// DistrictDTO represents the database structure for persisting districts.
// Each district belongs to exactly one region.
type DistrictDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	RegionID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name     string    `gorm:"type:varchar(255);not null"`
}

// TableName overrides GORM's default naming convention to use "districts".
func (DistrictDTO) TableName() string {
	return "districts"
}

func regionFromDomain(region *geo.Region) RegionDTO {
	return RegionDTO{
		ID:   region.ID().Bytes(),
		Name: region.Name(),
	}
}

func regionToDomain(dto RegionDTO) (*geo.Region, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return geo.RestoreRegion(id, dto.Name)
}

func districtFromDomain(district *geo.District) DistrictDTO {
	return DistrictDTO{
		ID:       district.ID().Bytes(),
		RegionID: district.RegionID().Bytes(),
		Name:     district.Name(),
	}
}

func districtToDomain(dto DistrictDTO) (*geo.District, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	regionID, err := kernel.UUIDFromBytes(dto.RegionID[:])
	if err != nil {
		return nil, err
	}

	return geo.RestoreDistrict(id, regionID, dto.Name)
}
