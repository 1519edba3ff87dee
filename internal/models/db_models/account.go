package db_models

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string

	QueryHistory []QueryHistory `gorm:"foreignKey:UserID"`
	TripPlans    []TripPlan     `gorm:"foreignKey:UserID"`
}
