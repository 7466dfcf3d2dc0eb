package cartrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new cart and its lines to the database.
func (r *GormCartRepository) Add(ctx context.Context, aggregate *cart.Cart) error {
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

// Update persists the cart's current state. Lines are replaced wholesale:
// deleted and re-inserted under the cart row's update.
func (r *GormCartRepository) Update(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&CartDTO{}).
		Where("id = ?", dto.ID).
		Select("restaurant_id").
		Updates(map[string]any{"restaurant_id": dto.RestaurantID})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cart", aggregate.ID().String())
	}

	if err := db.Delete(&CartLineDTO{}, "cart_id = ?", dto.ID).Error; err != nil {
		return err
	}
	if len(dto.Lines) > 0 {
		if err := db.Create(&dto.Lines).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByCustomer retrieves the customer's cart with its lines.
func (r *GormCartRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dto CartDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&dto, "customer_id = ?", customerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart", customerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByRestaurants retrieves all non-empty carts holding items of the
// given restaurants.
func (r *GormCartRepository) GetAllByRestaurants(
	ctx context.Context,
	restaurantIDs []kernel.UUID,
) ([]*cart.Cart, error) {
	if len(restaurantIDs) == 0 {
		return nil, nil
	}

	raw := make([]uuid.UUID, 0, len(restaurantIDs))
	for _, id := range restaurantIDs {
		raw = append(raw, id.Bytes())
	}

	var dtos []CartDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Find(&dtos, "restaurant_id IN ?", raw).Error
	if err != nil {
		return nil, err
	}

	carts := make([]*cart.Cart, 0, len(dtos))
	for _, dto := range dtos {
		c, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		carts = append(carts, c)
	}
	return carts, nil
}

// DeleteByCustomer removes the customer's cart and its lines.
func (r *GormCartRepository) DeleteByCustomer(ctx context.Context, customerID kernel.UUID) (int64, error) {
	if err := customerID.Validate(); err != nil {
		return 0, err
	}

	db := r.db.WithContext(ctx)

	var dto CartDTO
	err := db.First(&dto, "customer_id = ?", customerID.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	if err = db.Delete(&CartLineDTO{}, "cart_id = ?", dto.ID).Error; err != nil {
		return 0, err
	}

	result := db.Delete(&CartDTO{}, "id = ?", dto.ID)
	return result.RowsAffected, result.Error
}
