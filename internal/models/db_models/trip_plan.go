package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type TripPlan struct {
	BaseModel
	UserID      uuid.UUID `gorm:"index"`
	Destination string
	Country     string
	Days        int
	Itinerary   string         `gorm:"type:text"`
	Activities  pq.StringArray `gorm:"type:text[]"`
}
