package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its line items and payment for
// display.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// OrderItemResponse is one snapshotted line as recorded at checkout.
type OrderItemResponse struct {
	MenuItemID kernel.UUID
	Name       string
	UnitPrice  float64
	Quantity   int
}

// GetOrderQueryResponse is the full order view. Customer, restaurant, and
// courier IDs are nil when the referenced account has been retired or, for
// the courier, while the order is unclaimed.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	CustomerID      *kernel.UUID
	RestaurantID    *kernel.UUID
	CourierID       *kernel.UUID
	Items           []OrderItemResponse
	DeliveryAddress string
	PaymentMethod   order.PaymentMethod
	DeliveryType    order.DeliveryType
	TipAmount       float64
	TotalAmount     float64
	Status          order.Status
	CreatedAt       time.Time
	MaskedCard      string
}
