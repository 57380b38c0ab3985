package knowledge

import (
	"context"

	"customer-support-agent/internal/model"
)

// Scorer rates every document against a query. Scores are in [0,1] and
// aligned with docs.
type Scorer interface {
	Name() string
	Score(ctx context.Context, query string, docs []model.KnowledgeItem) ([]float64, error)
}

// Corpus is the on-disk layout of a knowledge file.
type Corpus struct {
	Items []model.KnowledgeItem `yaml:"items"`
}

// Strategy names accepted in configuration.
const (
	StrategyKeyword   = "keyword"
	StrategyTFIDF     = "tfidf"
	StrategyEmbedding = "embedding"
)

const (
	CategoryProducts = "products"

	DefaultTopK = 3
)

const (
	LogPrefixSearch = "internal.knowledge.Search"
	LogPrefixWarm   = "internal.knowledge.Warm"
)
