package search_fx

import (
	"context"
	"log"
	"os"
	"tripwise/internal/repositories"
	"tripwise/internal/search"
	"tripwise/internal/services"
	"tripwise/pkg/utils"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Options(
	fx.Provide(
		provideIndex,
		provideEmbeddingClient,
		provideEmbeddingRepo,
		provideDenseSearcher,
		provideIndexSeeder,
		provideRetrieverService,
	),
	fx.Invoke(refreshIndexOnStart),
)

func provideIndex() *search.Index {
	return search.NewIndex()
}

// provideEmbeddingClient returns nil when no key is configured; the dense
// retrieval stage is simply skipped in that case.
func provideEmbeddingClient() utils.EmbeddingClientInterface {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil
	}
	return utils.NewOpenAIEmbeddingClient(apiKey, "")
}

func provideEmbeddingRepo(db *gorm.DB) repositories.DestinationEmbeddingRepository {
	return repositories.NewDestinationEmbeddingRepository(db)
}

func provideDenseSearcher(client utils.EmbeddingClientInterface, repo repositories.DestinationEmbeddingRepository) services.DenseSearcherInterface {
	return services.NewDenseSearcher(client, repo)
}

func provideIndexSeeder(geoService services.GeoServiceInterface, index *search.Index) services.IndexSeederInterface {
	return services.NewIndexSeeder(geoService, index)
}

func provideRetrieverService(
	geoService services.GeoServiceInterface,
	budgetService services.BudgetServiceInterface,
	index *search.Index,
	denseSearcher services.DenseSearcherInterface,
) services.RetrieverServiceInterface {
	return services.NewRetrieverService(geoService, budgetService, index, denseSearcher)
}

func refreshIndexOnStart(lc fx.Lifecycle, seeder services.IndexSeederInterface) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := seeder.Refresh(context.Background()); err != nil {
					log.Printf("Initial index refresh failed: %v", err)
				}
			}()
			return nil
		},
	})
}
