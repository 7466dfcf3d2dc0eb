package affiliationrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fooddelivery/internal/core/domain/model/affiliation"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// GormAffiliationRepository implements AffiliationRepository using GORM.
type GormAffiliationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAffiliationRepository creates a new GORM affiliation repository.
func NewGormAffiliationRepository(db *gorm.DB, tracker aggregateTracker) *GormAffiliationRepository {
	return &GormAffiliationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new affiliation request to the database.
func (r *GormAffiliationRepository) Add(ctx context.Context, aggregate *affiliation.Request) error {
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

// Update saves a status change on an existing request.
func (r *GormAffiliationRepository) Update(ctx context.Context, aggregate *affiliation.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RequestDTO{}).
		Where("id = ?", dto.ID).
		Update("status", dto.Status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("affiliationRequest", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a request by ID.
func (r *GormAffiliationRepository) Get(ctx context.Context, id kernel.UUID) (*affiliation.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("affiliationRequest", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAcceptedByCourier retrieves the courier's currently accepted request.
// At most one exists per courier; prior ones are superseded on re-affiliation.
func (r *GormAffiliationRepository) GetAcceptedByCourier(
	ctx context.Context,
	courierID kernel.UUID,
) (*affiliation.Request, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	err := r.db.WithContext(ctx).
		First(&dto, "courier_id = ? AND status = ?", courierID.Bytes(), int(affiliation.Accepted)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("affiliationRequest", courierID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetPendingByCourierAndRestaurant retrieves the courier's pending request to
// the given restaurant.
func (r *GormAffiliationRepository) GetPendingByCourierAndRestaurant(
	ctx context.Context,
	courierID kernel.UUID,
	restaurantID kernel.UUID,
) (*affiliation.Request, error) {
	if err := errors.Join(courierID.Validate(), restaurantID.Validate()); err != nil {
		return nil, err
	}

	var dto RequestDTO
	err := r.db.WithContext(ctx).
		First(&dto, "courier_id = ? AND restaurant_id = ? AND status = ?",
			courierID.Bytes(), restaurantID.Bytes(), int(affiliation.Pending)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("affiliationRequest", courierID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a request.
func (r *GormAffiliationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RequestDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("affiliationRequest", id.String())
	}
	return nil
}

// GetAllByRestaurant retrieves every request addressed to a restaurant,
// newest first.
func (r *GormAffiliationRepository) GetAllByRestaurant(
	ctx context.Context,
	restaurantID kernel.UUID,
) ([]*affiliation.Request, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RequestDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "restaurant_id = ?", restaurantID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	requests := make([]*affiliation.Request, 0, len(dtos))
	for _, dto := range dtos {
		request, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		requests = append(requests, request)
	}
	return requests, nil
}

// DeleteByCourier removes all of a courier's requests.
func (r *GormAffiliationRepository) DeleteByCourier(ctx context.Context, courierID kernel.UUID) (int64, error) {
	if err := courierID.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Delete(&RequestDTO{}, "courier_id = ?", courierID.Bytes())
	return result.RowsAffected, result.Error
}

// DeleteByRestaurant removes all requests addressed to a restaurant.
func (r *GormAffiliationRepository) DeleteByRestaurant(
	ctx context.Context,
	restaurantID kernel.UUID,
) (int64, error) {
	if err := restaurantID.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Delete(&RequestDTO{}, "restaurant_id = ?", restaurantID.Bytes())
	return result.RowsAffected, result.Error
}
