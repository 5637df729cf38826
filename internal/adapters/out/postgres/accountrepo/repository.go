package accountrepo

import (
	"context"
	"errors"

	"taxidispatch/internal/core/domain/model/account"
	"taxidispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GORM driver account repository.
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// Add saves a new driver account to the database.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.DriverAccount) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing driver account. All columns are written so a
// balance back at zero still persists.
func (r *GormAccountRepository) Update(ctx context.Context, aggregate *account.DriverAccount) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DriverAccountDTO{}).
		Where("driver_id = ?", dto.DriverID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves a driver account by the driver's external identifier.
func (r *GormAccountRepository) Get(ctx context.Context, driverID string) (*account.DriverAccount, error) {
	var dto DriverAccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "driver_id = ?", driverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver account", driverID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// AddDriver inserts the driver into the allow-set. Idempotent.
func (r *GormAccountRepository) AddDriver(ctx context.Context, driverID string) error {
	dto := AllowedDriverDTO{DriverID: driverID}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&dto).Error
}

// RemoveDriver removes the driver from the allow-set, leaving any account
// record untouched.
func (r *GormAccountRepository) RemoveDriver(ctx context.Context, driverID string) error {
	return r.db.WithContext(ctx).Delete(&AllowedDriverDTO{}, "driver_id = ?", driverID).Error
}

// IsDriverAllowed reports allow-set membership.
func (r *GormAccountRepository) IsDriverAllowed(ctx context.Context, driverID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&AllowedDriverDTO{}).
		Where("driver_id = ?", driverID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetAllowedDrivers retrieves the full allow-set.
func (r *GormAccountRepository) GetAllowedDrivers(ctx context.Context) ([]string, error) {
	var driverIDs []string
	err := r.db.WithContext(ctx).
		Model(&AllowedDriverDTO{}).
		Order("driver_id").
		Pluck("driver_id", &driverIDs).Error
	if err != nil {
		return nil, err
	}

	return driverIDs, nil
}
