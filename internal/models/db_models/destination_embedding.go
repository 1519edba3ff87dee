package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// DestinationEmbedding backs the optional dense retrieval path. Rows are
// written by an offline loader; the retriever only reads them.
type DestinationEmbedding struct {
	DestinationID string `gorm:"primaryKey;column:destination_id"`
	Name          string
	Country       string
	Content       string
	Tags          pq.StringArray  `gorm:"type:text[]"`
	Embedding     pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt     time.Time       `gorm:"autoCreateTime"`
}
