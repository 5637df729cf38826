package routerepo

import (
	"context"
	"errors"

	"taxidispatch/internal/core/domain/model/kernel"
	"taxidispatch/internal/core/domain/model/route"
	"taxidispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRouteRepository implements RouteRepository using GORM.
type GormRouteRepository struct {
	db *gorm.DB
}

// NewGormRouteRepository creates a new GORM route repository.
func NewGormRouteRepository(db *gorm.DB) *GormRouteRepository {
	return &GormRouteRepository{db: db}
}

// Add saves a new route together with its channel attachments.
func (r *GormRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing route. Channel attachments are replaced wholesale:
// detached channels must disappear, which association saves do not guarantee.
func (r *GormRouteRepository) Update(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Omit("Channels").
		Model(&RouteDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"from_region_id":   dto.FromRegionID,
			"from_district_id": dto.FromDistrictID,
			"to_region_id":     dto.ToRegionID,
			"to_district_id":   dto.ToDistrictID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).Delete(&ChannelDTO{}, "route_id = ?", dto.ID).Error; err != nil {
		return err
	}

	if len(dto.Channels) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&dto.Channels).Error
}

// Get retrieves a route with its channels by ID.
func (r *GormRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDTO
	if err := r.db.WithContext(ctx).Preload("Channels").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every route with its channels.
func (r *GormRouteRepository) GetAll(ctx context.Context) ([]*route.Route, error) {
	var dtos []RouteDTO
	if err := r.db.WithContext(ctx).Preload("Channels").Find(&dtos).Error; err != nil {
		return nil, err
	}

	routes := make([]*route.Route, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		routes = append(routes, aggregate)
	}

	return routes, nil
}

// Delete removes a single route and its channel attachments.
func (r *GormRouteRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Delete(&ChannelDTO{}, "route_id = ?", id.Bytes()).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&RouteDTO{}, "id = ?", id.Bytes()).Error
}

// DeleteByRegion removes every route referencing the region as origin or
// destination.
func (r *GormRouteRepository) DeleteByRegion(ctx context.Context, regionID kernel.UUID) error {
	if err := regionID.Validate(); err != nil {
		return err
	}

	return r.deleteWhere(ctx, "from_region_id = ? OR to_region_id = ?", regionID.Bytes(), regionID.Bytes())
}

// DeleteByDistrict removes every route referencing the district as origin or
// destination.
func (r *GormRouteRepository) DeleteByDistrict(ctx context.Context, districtID kernel.UUID) error {
	if err := districtID.Validate(); err != nil {
		return err
	}

	return r.deleteWhere(ctx, "from_district_id = ? OR to_district_id = ?", districtID.Bytes(), districtID.Bytes())
}

func (r *GormRouteRepository) deleteWhere(ctx context.Context, condition string, args ...any) error {
	var ids []uuid.UUID

	err := r.db.WithContext(ctx).
		Model(&RouteDTO{}).
		Where(condition, args...).
		Pluck("id", &ids).Error
	if err != nil {
		return err
	}

	if len(ids) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).Delete(&ChannelDTO{}, "route_id IN ?", ids).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&RouteDTO{}, "id IN ?", ids).Error
}
