// Package accountrepo implements account aggregate persistence. All roles
// share one table; the role-specific profile columns are simply unused for
// the other roles.
package accountrepo

import (
	"github.com/google/uuid"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
)

// AccountDTO represents the database structure for persisting accounts.
type AccountDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Phone        string
	Role         int `gorm:"index"`
	Status       int `gorm:"index"`

	// customer / restaurant profile
	Address  string
	City     string
	District string

	// restaurant profile
	Approved bool
	Open     bool

	// courier profile
	Available              bool
	AffiliatedRestaurantID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName overrides GORM's default naming to use "accounts".
func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(aggregate *account.Account) AccountDTO {
	dto := AccountDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Phone:        aggregate.Phone(),
		Role:         int(aggregate.Role()),
		Status:       int(aggregate.Status()),
	}

	if profile, err := aggregate.Customer(); err == nil {
		dto.Address = profile.Address
		dto.City = profile.City
		dto.District = profile.District
	}
	if profile, err := aggregate.Restaurant(); err == nil {
		dto.Address = profile.Address
		dto.City = profile.City
		dto.District = profile.District
		dto.Approved = profile.Approved
		dto.Open = profile.Open
	}
	if profile, err := aggregate.Courier(); err == nil {
		dto.Available = profile.Available
		if profile.AffiliatedRestaurantID != nil {
			raw := profile.AffiliatedRestaurantID.Bytes()
			dto.AffiliatedRestaurantID = &raw
		}
	}

	return dto
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role := account.Role(dto.Role)

	var customer *account.CustomerProfile
	var restaurant *account.RestaurantProfile
	var courier *account.CourierProfile

	switch role {
	case account.Customer:
		customer = &account.CustomerProfile{
			Address:  dto.Address,
			City:     dto.City,
			District: dto.District,
		}
	case account.RestaurantOwner:
		restaurant = &account.RestaurantProfile{
			Address:  dto.Address,
			City:     dto.City,
			District: dto.District,
			Approved: dto.Approved,
			Open:     dto.Open,
		}
	case account.Courier:
		courier = &account.CourierProfile{Available: dto.Available}
		if dto.AffiliatedRestaurantID != nil {
			restaurantID, idErr := kernel.UUIDFromBytes((*dto.AffiliatedRestaurantID)[:])
			if idErr != nil {
				return nil, idErr
			}
			courier.AffiliatedRestaurantID = &restaurantID
		}
	}

	return account.RestoreAccount(
		id,
		dto.Name, dto.Email, dto.PasswordHash, dto.Phone,
		role,
		account.Status(dto.Status),
		customer,
		restaurant,
		courier,
	)
}
