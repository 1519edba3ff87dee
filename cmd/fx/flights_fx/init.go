package flights_fx

import (
	"os"
	"tripwise/internal/services"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideFlightService)

func provideFlightService() services.FlightServiceInterface {
	return services.NewFlightService(os.Getenv("FLIGHTSTATS_APP_ID"), os.Getenv("FLIGHTSTATS_APP_KEY"))
}
