package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type UserPreference struct {
	BaseModel
	UserID           uuid.UUID `gorm:"uniqueIndex"`
	DestinationTypes pq.StringArray `gorm:"type:text[]"`
	Activities       pq.StringArray `gorm:"type:text[]"`
	BudgetCeiling    int
}
