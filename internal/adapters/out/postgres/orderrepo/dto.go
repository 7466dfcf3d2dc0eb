// Package orderrepo implements order aggregate persistence: the order row,
// its immutable line-item snapshot, and the payment satellite. The claim path
// and the version column carry the concurrency guarantees of the fulfillment
// core, so both live here as conditional updates rather than read-modify-write.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID      *uuid.UUID `gorm:"type:uuid;index"`
	RestaurantID    *uuid.UUID `gorm:"type:uuid;index"`
	CourierID       *uuid.UUID `gorm:"type:uuid;index"`
	DeliveryAddress string
	PaymentMethod   int
	DeliveryType    int
	TipAmount       float64
	TotalAmount     float64
	Status          int `gorm:"index"`
	CreatedAt       time.Time
	Version         int

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one snapshotted line of an order. The snapshot is
// written once at checkout and never updated.
type OrderItemDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	MenuItemID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Name       string
	UnitPrice  float64
	Quantity   int
	Position   int
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// PaymentDTO represents the payment record created with an order.
type PaymentDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	Method      int
	MaskedCard  string
	CardExpiry  string
	Status      string
	PaymentDate time.Time
}

// TableName overrides GORM's default naming to use "payments".
func (PaymentDTO) TableName() string {
	return "payments"
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalDomainID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      optionalID(aggregate.Customer()),
		RestaurantID:    optionalID(aggregate.Restaurant()),
		CourierID:       optionalID(aggregate.Courier()),
		DeliveryAddress: aggregate.DeliveryAddress(),
		PaymentMethod:   int(aggregate.PaymentMethod()),
		DeliveryType:    int(aggregate.DeliveryType()),
		TipAmount:       aggregate.TipAmount(),
		TotalAmount:     aggregate.TotalAmount(),
		Status:          int(aggregate.Status()),
		CreatedAt:       aggregate.CreatedAt(),
		Version:         aggregate.Version(),
	}

	for i, item := range aggregate.Items() {
		dto.Items = append(dto.Items, OrderItemDTO{
			OrderID:    dto.ID,
			MenuItemID: item.MenuItemID.Bytes(),
			Name:       item.Name,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
			Position:   i,
		})
	}
	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := optionalDomainID(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	restaurantID, err := optionalDomainID(dto.RestaurantID)
	if err != nil {
		return nil, err
	}
	courierID, err := optionalDomainID(dto.CourierID)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuItemID, idErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		items = append(items, order.LineItem{
			MenuItemID: menuItemID,
			Name:       itemDTO.Name,
			UnitPrice:  itemDTO.UnitPrice,
			Quantity:   itemDTO.Quantity,
		})
	}

	return order.RestoreOrder(
		id,
		customerID,
		restaurantID,
		courierID,
		items,
		dto.DeliveryAddress,
		order.PaymentMethod(dto.PaymentMethod),
		order.DeliveryType(dto.DeliveryType),
		dto.TipAmount,
		dto.TotalAmount,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.Version,
	)
}

func paymentFromDomain(payment *order.Payment) PaymentDTO {
	return PaymentDTO{
		ID:          payment.ID().Bytes(),
		OrderID:     payment.OrderID().Bytes(),
		Method:      int(payment.Method()),
		MaskedCard:  payment.MaskedCard(),
		CardExpiry:  payment.CardExpiry(),
		Status:      payment.Status(),
		PaymentDate: payment.PaymentDate(),
	}
}
