package repositories

import (
	"context"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"tripwise/internal/models/db_models"
)

type HistoryRepository interface {
	Insert(ctx context.Context, entry *db_models.QueryHistory) error
	ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.QueryHistory, error)
}

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Insert(ctx context.Context, entry *db_models.QueryHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *historyRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.QueryHistory, error) {
	var entries []db_models.QueryHistory
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
