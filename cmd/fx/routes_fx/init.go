package routes_fx

import (
	"os"
	"tripwise/internal/services"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideRouteService)

func provideRouteService() services.RouteServiceInterface {
	return services.NewRouteService(os.Getenv("OPENROUTE_API_KEY"))
}
