package geo_fx

import (
	"os"
	"tripwise/internal/services"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideGeoService)

func provideGeoService() services.GeoServiceInterface {
	return services.NewGeoService(os.Getenv("GEONAMES_USERNAME"), "")
}
