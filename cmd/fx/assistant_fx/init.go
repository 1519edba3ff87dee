package assistant_fx

import (
	"math/rand"
	"time"
	"tripwise/internal/repositories"
	"tripwise/internal/services"
	mem "tripwise/pkg/memcache"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideContextService,
	provideRenderer,
	provideAssistantService)

func provideContextService(store *mem.ConversationStore) services.ContextServiceInterface {
	return services.NewContextService(store)
}

func provideRenderer() *services.Renderer {
	return services.NewRenderer(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func provideAssistantService(
	contextService services.ContextServiceInterface,
	retrieverService services.RetrieverServiceInterface,
	itineraryService services.ItineraryServiceInterface,
	geoService services.GeoServiceInterface,
	flightService services.FlightServiceInterface,
	weatherService services.WeatherServiceInterface,
	budgetService services.BudgetServiceInterface,
	renderer *services.Renderer,
	historyRepo repositories.HistoryRepository,
) services.AssistantServiceInterface {
	return services.NewAssistantService(
		contextService,
		retrieverService,
		itineraryService,
		geoService,
		flightService,
		weatherService,
		budgetService,
		renderer,
		historyRepo,
	)
}
