package repositories

import (
	"context"
	"errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"tripwise/internal/models/db_models"
)

type PreferenceRepository interface {
	GetByUser(ctx context.Context, userID uuid.UUID) (*db_models.UserPreference, error)
	Upsert(ctx context.Context, pref *db_models.UserPreference) error
}

type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*db_models.UserPreference, error) {
	var pref db_models.UserPreference
	err := r.db.WithContext(ctx).First(&pref, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pref, nil
}

func (r *preferenceRepository) Upsert(ctx context.Context, pref *db_models.UserPreference) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing db_models.UserPreference
		err := tx.First(&existing, "user_id = ?", pref.UserID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(pref).Error
		}
		if err != nil {
			return err
		}

		existing.DestinationTypes = pref.DestinationTypes
		existing.Activities = pref.Activities
		existing.BudgetCeiling = pref.BudgetCeiling
		return tx.Save(&existing).Error
	})
}
