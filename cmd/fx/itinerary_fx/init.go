package itinerary_fx

import (
	"tripwise/internal/services"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideBudgetService,
	provideItineraryService)

func provideBudgetService() services.BudgetServiceInterface {
	return services.NewBudgetService()
}

func provideItineraryService(
	geoService services.GeoServiceInterface,
	routeService services.RouteServiceInterface,
	weatherService services.WeatherServiceInterface,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(geoService, routeService, weatherService)
}
