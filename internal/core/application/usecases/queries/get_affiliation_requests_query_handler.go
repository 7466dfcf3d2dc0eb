package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fooddelivery/internal/core/domain/model/affiliation"
	"fooddelivery/internal/core/domain/model/kernel"
)

// GetAffiliationRequestsQueryHandler lists a restaurant's affiliation
// requests from the database.
type GetAffiliationRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetAffiliationRequestsQueryHandler creates a handler for affiliation
// request listings.
func NewGetAffiliationRequestsQueryHandler(db *gorm.DB) GetAffiliationRequestsQueryHandler {
	return GetAffiliationRequestsQueryHandler{db: db}
}

// Handle executes the query, newest requests first.
func (h GetAffiliationRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetAffiliationRequestsQuery,
) ([]AffiliationRequestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, courier_id, status, created_at
		FROM affiliation_requests
		WHERE restaurant_id = ?
		ORDER BY created_at DESC
	`, query.RestaurantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]AffiliationRequestResponse, 0)
	for rows.Next() {
		var id, courierID uuid.UUID
		var status int
		var createdAt time.Time

		if err = rows.Scan(&id, &courierID, &status, &createdAt); err != nil {
			return nil, err
		}

		requestID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		cID, idErr := kernel.UUIDFromBytes(courierID[:])
		if idErr != nil {
			return nil, idErr
		}

		requests = append(requests, AffiliationRequestResponse{
			ID:        requestID,
			CourierID: cID,
			Status:    affiliation.RequestStatus(status),
			CreatedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
