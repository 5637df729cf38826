package georepo

import (
	"context"
	"errors"

	"taxidispatch/internal/core/domain/model/geo"
	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormGeoRepository implements GeoRepository using GORM.
type GormGeoRepository struct {
	db *gorm.DB
}

// NewGormGeoRepository creates a new GORM geography repository.
func NewGormGeoRepository(db *gorm.DB) *GormGeoRepository {
	return &GormGeoRepository{db: db}
}

// AddRegion saves a new region to the database.
func (r *GormGeoRepository) AddRegion(ctx context.Context, region *geo.Region) error {
	if err := region.Validate(); err != nil {
		return err
	}

	dto := regionFromDomain(region)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetRegion retrieves a region by ID.
func (r *GormGeoRepository) GetRegion(ctx context.Context, id kernel.UUID) (*geo.Region, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RegionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("region", id.String())
		}
		return nil, err
	}

	return regionToDomain(dto)
}

// GetRegionByName retrieves a region by case-insensitive name.
func (r *GormGeoRepository) GetRegionByName(ctx context.Context, name string) (*geo.Region, error) {
	var dto RegionDTO
	if err := r.db.WithContext(ctx).First(&dto, "LOWER(name) = LOWER(?)", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("region", name)
		}
		return nil, err
	}

	return regionToDomain(dto)
}

// GetAllRegions retrieves every region ordered by name.
func (r *GormGeoRepository) GetAllRegions(ctx context.Context) ([]*geo.Region, error) {
	var dtos []RegionDTO
	if err := r.db.WithContext(ctx).Order("LOWER(name)").Find(&dtos).Error; err != nil {
		return nil, err
	}

	regions := make([]*geo.Region, 0, len(dtos))
	for _, dto := range dtos {
		region, err := regionToDomain(dto)
		if err != nil {
			return nil, err
		}
		regions = append(regions, region)
	}

	return regions, nil
}

// DeleteRegion removes a region together with all of its districts.
func (r *GormGeoRepository) DeleteRegion(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Delete(&DistrictDTO{}, "region_id = ?", id.Bytes()).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&RegionDTO{}, "id = ?", id.Bytes()).Error
}

// AddDistrict saves a new district to the database.
func (r *GormGeoRepository) AddDistrict(ctx context.Context, district *geo.District) error {
	if err := district.Validate(); err != nil {
		return err
	}

	dto := districtFromDomain(district)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetDistrict retrieves a district by ID.
func (r *GormGeoRepository) GetDistrict(ctx context.Context, id kernel.UUID) (*geo.District, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DistrictDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("district", id.String())
		}
		return nil, err
	}

	return districtToDomain(dto)
}

// GetDistrictByName retrieves a district within a region by case-insensitive name.
func (r *GormGeoRepository) GetDistrictByName(
	ctx context.Context, regionID kernel.UUID, name string,
) (*geo.District, error) {
	if err := regionID.Validate(); err != nil {
		return nil, err
	}

	var dto DistrictDTO
	err := r.db.WithContext(ctx).
		First(&dto, "region_id = ? AND LOWER(name) = LOWER(?)", regionID.Bytes(), name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("district", name)
		}
		return nil, err
	}

	return districtToDomain(dto)
}

// GetDistrictsByRegion retrieves all districts of a region ordered by name.
func (r *GormGeoRepository) GetDistrictsByRegion(
	ctx context.Context, regionID kernel.UUID,
) ([]*geo.District, error) {
	if err := regionID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DistrictDTO
	err := r.db.WithContext(ctx).
		Order("LOWER(name)").
		Find(&dtos, "region_id = ?", regionID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	districts := make([]*geo.District, 0, len(dtos))
	for _, dto := range dtos {
		district, err := districtToDomain(dto)
		if err != nil {
			return nil, err
		}
		districts = append(districts, district)
	}

	return districts, nil
}

// DeleteDistrict removes a single district.
func (r *GormGeoRepository) DeleteDistrict(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&DistrictDTO{}, "id = ?", id.Bytes()).Error
}
