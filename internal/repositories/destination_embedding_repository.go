package repositories

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"tripwise/internal/models/db_models"
)

type DestinationEmbeddingRepository interface {
	ListNearestByVector(vector pgvector.Vector, limit int) ([]db_models.DestinationEmbedding, error)
	Insert(embedding db_models.DestinationEmbedding) error
}

type destinationEmbeddingRepository struct {
	db *gorm.DB
}

func NewDestinationEmbeddingRepository(db *gorm.DB) DestinationEmbeddingRepository {
	return &destinationEmbeddingRepository{db: db}
}

func (r *destinationEmbeddingRepository) ListNearestByVector(vector pgvector.Vector, limit int) ([]db_models.DestinationEmbedding, error) {
	if limit <= 0 {
		limit = 15
	}

	var results []db_models.DestinationEmbedding
	vecStr := vector.String()

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM destination_embeddings
        WHERE (1 - (embedding <=> $1)) > 0.7
        ORDER BY embedding <=> $1
        LIMIT $2
    `

	err := r.db.Raw(query, vecStr, limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *destinationEmbeddingRepository) Insert(embedding db_models.DestinationEmbedding) error {
	return r.db.Create(&embedding).Error
}
