package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fooddelivery/internal/core/domain/model/affiliation"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// GetClaimableOrdersQueryHandler lists claimable orders straight from the
// database. The affiliation scoping happens in the query itself: a courier
// with no accepted affiliation simply gets an empty list.
type GetClaimableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetClaimableOrdersQueryHandler creates a handler for claimable order
// queries.
func NewGetClaimableOrdersQueryHandler(db *gorm.DB) GetClaimableOrdersQueryHandler {
	return GetClaimableOrdersQueryHandler{db: db}
}

// Handle executes the query. Oldest orders come first so the longest-waiting
// order is picked up next.
func (h GetClaimableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetClaimableOrdersQuery,
) ([]GetClaimableOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetClaimableOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.restaurant_id,
			o.delivery_address,
			o.total_amount,
			o.created_at
		FROM orders o
		JOIN affiliation_requests ar ON ar.restaurant_id = o.restaurant_id
		WHERE ar.courier_id = ?
		  AND ar.status = ?
		  AND o.status = ?
		  AND o.courier_id IS NULL
		ORDER BY o.created_at
	`, query.CourierID().Bytes(), int(affiliation.Accepted), int(order.Ready)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, restaurantID uuid.UUID
		var deliveryAddress string
		var totalAmount float64
		var createdAt time.Time

		if err = rows.Scan(&id, &restaurantID, &deliveryAddress, &totalAmount, &createdAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		rID, idErr := kernel.UUIDFromBytes(restaurantID[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, GetClaimableOrdersQueryResponse{
			ID:              orderID,
			RestaurantID:    rID,
			DeliveryAddress: deliveryAddress,
			TotalAmount:     totalAmount,
			CreatedAt:       createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
