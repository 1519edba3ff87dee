package db_models

import "github.com/google/uuid"

// QueryHistory is the persisted interaction log. Appends are fire-and-forget:
// a failed insert is logged and never fails the response.
type QueryHistory struct {
	BaseModel
	UserID   uuid.UUID `gorm:"index"`
	Query    string
	Response string `gorm:"type:text"`
	Intent   string
}
