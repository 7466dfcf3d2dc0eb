// Package affiliationrepo implements affiliation request persistence.
package affiliationrepo

import (
	"time"

	"github.com/google/uuid"

	"fooddelivery/internal/core/domain/model/affiliation"
	"fooddelivery/internal/core/domain/model/kernel"
)

// RequestDTO represents the database structure for persisting affiliation
// requests.
type RequestDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierID    uuid.UUID `gorm:"type:uuid;index"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Status       int       `gorm:"index"`
	CreatedAt    time.Time
}

// TableName overrides GORM's default naming to use "affiliation_requests".
func (RequestDTO) TableName() string {
	return "affiliation_requests"
}

func fromDomain(request *affiliation.Request) RequestDTO {
	return RequestDTO{
		ID:           request.ID().Bytes(),
		CourierID:    request.Courier().Bytes(),
		RestaurantID: request.Restaurant().Bytes(),
		Status:       int(request.Status()),
		CreatedAt:    request.CreatedAt(),
	}
}

func toDomain(dto RequestDTO) (*affiliation.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	return affiliation.RestoreRequest(
		id,
		courierID,
		restaurantID,
		affiliation.RequestStatus(dto.Status),
		dto.CreatedAt,
	)
}
