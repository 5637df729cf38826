// Package accountrepo provides data transfer objects and mapping functions for
// driver account persistence and the allow-set of drivers permitted to take
// orders. The two are separate tables: allow-set membership can be revoked and
// re-granted without touching the balance.
package accountrepo

import (
	"time"

	"taxidispatch/internal/core/domain/model/account"
)

// DriverAccountDTO represents the database structure for persisting driver
// accounts. Driver identifiers come from the messaging platform and are
// opaque strings, not UUIDs.
type DriverAccountDTO struct {
	DriverID        string `gorm:"type:varchar(255);primaryKey"`
	Balance         int    `gorm:"type:int;not null"`
	SubscriptionEnd *time.Time
}

// TableName overrides GORM's default naming convention to use "driver_accounts".
func (DriverAccountDTO) TableName() string {
	return "driver_accounts"
}

// AllowedDriverDTO represents one allow-set row.
type AllowedDriverDTO struct {
	DriverID string `gorm:"type:varchar(255);primaryKey"`
}

// TableName overrides GORM's default naming convention to use "allowed_drivers".
func (AllowedDriverDTO) TableName() string {
	return "allowed_drivers"
}

func fromDomain(aggregate *account.DriverAccount) DriverAccountDTO {
	return DriverAccountDTO{
		DriverID:        aggregate.DriverID(),
		Balance:         aggregate.Balance(),
		SubscriptionEnd: aggregate.SubscriptionEnd(),
	}
}

func toDomain(dto DriverAccountDTO) (*account.DriverAccount, error) {
	return account.RestoreDriverAccount(dto.DriverID, dto.Balance, dto.SubscriptionEnd)
}
