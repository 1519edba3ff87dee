package services

import (
	"context"
	"log"
	"tripwise/internal/models/response_models"
	"tripwise/internal/repositories"
	"tripwise/pkg/utils"
)

// DenseSearcherInterface is the optional semantic stage of retrieval. A nil
// searcher is valid and simply contributes nothing.
type DenseSearcherInterface interface {
	Search(ctx context.Context, query string, topK int) []response_models.Destination
}

type DenseSearcher struct {
	embeddingClient utils.EmbeddingClientInterface
	embeddingRepo   repositories.DestinationEmbeddingRepository
}

func NewDenseSearcher(embeddingClient utils.EmbeddingClientInterface, embeddingRepo repositories.DestinationEmbeddingRepository) DenseSearcherInterface {
	if embeddingClient == nil || embeddingRepo == nil {
		return nil
	}
	return &DenseSearcher{
		embeddingClient: embeddingClient,
		embeddingRepo:   embeddingRepo,
	}
}

func (s *DenseSearcher) Search(ctx context.Context, query string, topK int) []response_models.Destination {
	vector, err := s.embeddingClient.GetEmbedding(ctx, query)
	if err != nil {
		log.Printf("Error embedding query: %v", err)
		return nil
	}

	rows, err := s.embeddingRepo.ListNearestByVector(vector, topK)
	if err != nil {
		log.Printf("Error searching destination embeddings: %v", err)
		return nil
	}

	destinations := make([]response_models.Destination, 0, len(rows))
	for _, row := range rows {
		destinations = append(destinations, response_models.Destination{
			Name:    row.Name,
			Country: row.Country,
		})
	}
	return destinations
}
