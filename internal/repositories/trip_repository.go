package repositories

import (
	"context"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"tripwise/internal/models/db_models"
)

type TripRepository interface {
	Insert(ctx context.Context, trip *db_models.TripPlan) (uuid.UUID, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.TripPlan, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Insert(ctx context.Context, trip *db_models.TripPlan) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(trip).Error; err != nil {
		return uuid.Nil, err
	}
	return trip.ID, nil
}

func (r *tripRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.TripPlan, error) {
	var trips []db_models.TripPlan
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}
