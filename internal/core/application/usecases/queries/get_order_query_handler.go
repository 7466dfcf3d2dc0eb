package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// GetOrderQueryHandler reads one order, its items, and its payment mask
// straight from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when the order
// does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var (
		customerID, restaurantID, courierID *uuid.UUID
		deliveryAddress                     string
		paymentMethod, deliveryType, status int
		tipAmount, totalAmount              float64
		createdAt                           time.Time
	)

	row := db.Raw(`
		SELECT
			customer_id, restaurant_id, courier_id,
			delivery_address, payment_method, delivery_type,
			tip_amount, total_amount, status, created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&customerID, &restaurantID, &courierID,
		&deliveryAddress, &paymentMethod, &deliveryType,
		&tipAmount, &totalAmount, &status, &createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	response := GetOrderQueryResponse{
		ID:              query.OrderID(),
		DeliveryAddress: deliveryAddress,
		PaymentMethod:   order.PaymentMethod(paymentMethod),
		DeliveryType:    order.DeliveryType(deliveryType),
		TipAmount:       tipAmount,
		TotalAmount:     totalAmount,
		Status:          order.Status(status),
		CreatedAt:       createdAt,
	}
	if response.CustomerID, err = optionalKernelID(customerID); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.RestaurantID, err = optionalKernelID(restaurantID); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.CourierID, err = optionalKernelID(courierID); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.Items, err = h.loadItems(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	// payment is optional in the read model; a missing row leaves the mask empty
	var maskedCard *string
	db.Raw(`SELECT masked_card FROM payments WHERE order_id = ?`, query.OrderID().Bytes()).Scan(&maskedCard)
	if maskedCard != nil {
		response.MaskedCard = *maskedCard
	}

	return response, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT menu_item_id, name, unit_price, quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var menuItemID uuid.UUID
		var item OrderItemResponse

		if err = rows.Scan(&menuItemID, &item.Name, &item.UnitPrice, &item.Quantity); err != nil {
			return nil, err
		}
		if item.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:]); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func optionalKernelID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
