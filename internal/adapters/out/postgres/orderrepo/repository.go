package orderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its line-item snapshot to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// AddPayment saves the payment record created with an order.
func (r *GormOrderRepository) AddPayment(ctx context.Context, payment *order.Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}

	dto := paymentFromDomain(payment)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing order under optimistic locking. The write only
// lands if the stored version still matches the version the aggregate was
// loaded with; the version is bumped in the same statement. Zero rows
// affected means a concurrent writer got there first.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"customer_id":   dto.CustomerID,
			"restaurant_id": dto.RestaurantID,
			"courier_id":    dto.CourierID,
			"status":        dto.Status,
			"version":       dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError("order")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, including its line items.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByRestaurantInStatuses retrieves a restaurant's orders currently in
// any of the given statuses.
func (r *GormOrderRepository) GetAllByRestaurantInStatuses(
	ctx context.Context,
	restaurantID kernel.UUID,
	statuses []order.Status,
) ([]*order.Order, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	raw := make([]int, 0, len(statuses))
	for _, s := range statuses {
		raw = append(raw, int(s))
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Find(&dtos, "restaurant_id = ? AND status IN ?", restaurantID.Bytes(), raw).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// Claim atomically assigns the courier to the order. The precondition and
// the mutation are one conditional update: the courier slot must be empty
// and the order Ready. Exactly one of any set of racing claims can match the
// WHERE clause, so at most one courier wins. On zero rows affected the order
// is re-read to report the precise reason; a repeat claim by the courier who
// already holds the order succeeds without changing anything.
func (r *GormOrderRepository) Claim(ctx context.Context, orderID kernel.UUID, courierID kernel.UUID) error {
	if err := errors.Join(orderID.Validate(), courierID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND courier_id IS NULL AND status = ?", orderID.Bytes(), int(order.Ready)).
		Updates(map[string]any{
			"courier_id": courierID.Bytes(),
			"version":    gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("order", orderID.String())
		}
		return err
	}
	if dto.CourierID != nil {
		if *dto.CourierID == courierID.Bytes() {
			return nil
		}
		return order.ErrAlreadyClaimed
	}
	return order.ErrNotClaimable
}

// CountActiveByMenuItem counts non-final orders whose snapshot references the
// given menu item.
func (r *GormOrderRepository) CountActiveByMenuItem(ctx context.Context, menuItemID kernel.UUID) (int64, error) {
	if err := menuItemID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderItemDTO{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("order_items.menu_item_id = ? AND orders.status NOT IN ?", menuItemID.Bytes(), []int{
			int(order.Delivered),
			int(order.Cancelled),
			int(order.CancelledByCustomer),
		}).
		Count(&count).Error
	return count, err
}

// DetachCustomer nullifies the customer reference on all of the customer's
// orders.
func (r *GormOrderRepository) DetachCustomer(ctx context.Context, customerID kernel.UUID) (int64, error) {
	if err := customerID.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("customer_id = ?", customerID.Bytes()).
		Updates(map[string]any{
			"customer_id": nil,
			"version":     gorm.Expr("version + 1"),
		})
	return result.RowsAffected, result.Error
}

// DetachRestaurant nullifies the restaurant reference on all of the
// restaurant's orders.
func (r *GormOrderRepository) DetachRestaurant(ctx context.Context, restaurantID kernel.UUID) (int64, error) {
	if err := restaurantID.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("restaurant_id = ?", restaurantID.Bytes()).
		Updates(map[string]any{
			"restaurant_id": nil,
			"version":       gorm.Expr("version + 1"),
		})
	return result.RowsAffected, result.Error
}

// DetachCourier clears the courier slot on the courier's non-terminal
// orders, releasing them for other couriers; completed orders keep the
// courier reference for history.
func (r *GormOrderRepository) DetachCourier(ctx context.Context, courierID kernel.UUID) (int64, error) {
	if err := courierID.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("courier_id = ? AND status NOT IN ?", courierID.Bytes(), []int{
			int(order.Delivered),
			int(order.Cancelled),
			int(order.CancelledByCustomer),
		}).
		Updates(map[string]any{
			"courier_id": nil,
			"version":    gorm.Expr("version + 1"),
		})
	return result.RowsAffected, result.Error
}
