package trips_fx

import (
	"tripwise/internal/repositories"
	"tripwise/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideTripRepo,
	providePreferenceRepo,
	provideHistoryRepo,
	provideTripsService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func providePreferenceRepo(db *gorm.DB) repositories.PreferenceRepository {
	return repositories.NewPreferenceRepository(db)
}

func provideHistoryRepo(db *gorm.DB) repositories.HistoryRepository {
	return repositories.NewHistoryRepository(db)
}

func provideTripsService(
	tripRepo repositories.TripRepository,
	preferenceRepo repositories.PreferenceRepository,
	historyRepo repositories.HistoryRepository,
) services.TripsServiceInterface {
	return services.NewTripsService(tripRepo, preferenceRepo, historyRepo)
}
