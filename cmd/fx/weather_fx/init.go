package weather_fx

import (
	"os"
	"tripwise/internal/services"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideWeatherService)

func provideWeatherService() services.WeatherServiceInterface {
	return services.NewWeatherService(os.Getenv("WEATHER_API_KEY"))
}
