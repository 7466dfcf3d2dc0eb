// Package cartrepo implements cart persistence. A cart row holds the owner
// and current restaurant; the lines live in their own table and are replaced
// wholesale on every update, which keeps the mapping trivial for the small
// line counts carts carry.
package cartrepo

import (
	"github.com/google/uuid"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/kernel"
)

// CartDTO represents the database structure for persisting carts.
type CartDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	RestaurantID *uuid.UUID `gorm:"type:uuid;index"`

	Lines []CartLineDTO `gorm:"foreignKey:CartID;references:ID"`
}

// TableName overrides GORM's default naming to use "carts".
func (CartDTO) TableName() string {
	return "carts"
}

// CartLineDTO represents one cart line. Position preserves insertion order.
type CartLineDTO struct {
	CartID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	MenuItemID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity   int
	Position   int
}

// TableName overrides GORM's default naming to use "cart_lines".
func (CartLineDTO) TableName() string {
	return "cart_lines"
}

func fromDomain(aggregate *cart.Cart) CartDTO {
	dto := CartDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.Customer().Bytes(),
	}
	if restaurantID := aggregate.Restaurant(); restaurantID != nil {
		raw := restaurantID.Bytes()
		dto.RestaurantID = &raw
	}

	for i, line := range aggregate.Lines() {
		dto.Lines = append(dto.Lines, CartLineDTO{
			CartID:     dto.ID,
			MenuItemID: line.MenuItemID.Bytes(),
			Quantity:   line.Quantity,
			Position:   i,
		})
	}
	return dto
}

func toDomain(dto CartDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var restaurantID *kernel.UUID
	if dto.RestaurantID != nil {
		rID, idErr := kernel.UUIDFromBytes((*dto.RestaurantID)[:])
		if idErr != nil {
			return nil, idErr
		}
		restaurantID = &rID
	}

	lines := make([]cart.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		menuItemID, idErr := kernel.UUIDFromBytes(lineDTO.MenuItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		lines = append(lines, cart.Line{
			MenuItemID: menuItemID,
			Quantity:   lineDTO.Quantity,
		})
	}

	return cart.RestoreCart(id, customerID, restaurantID, lines)
}
