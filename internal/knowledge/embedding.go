package knowledge

import (
	"context"
	"fmt"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	"customer-support-agent/internal/model"
	"customer-support-agent/pkg/embedding"
)

const (
	warmBatchSize   = 32
	warmConcurrency = 4
)

// EmbeddingScorer ranks by cosine similarity of embedding vectors, clamped to [0,1].
// Document vectors are computed once per item id and reused.
type EmbeddingScorer struct {
	embedder embedding.Embedder

	mu   sync.RWMutex
	docs map[string][]float32
}

// NewEmbeddingScorer wraps an embedder.
func NewEmbeddingScorer(e embedding.Embedder) *EmbeddingScorer {
	return &EmbeddingScorer{embedder: e, docs: make(map[string][]float32)}
}

func (s *EmbeddingScorer) Name() string { return StrategyEmbedding }

// Warm embeds every document not seen yet, in concurrent batches.
func (s *EmbeddingScorer) Warm(ctx context.Context, docs []model.KnowledgeItem) error {
	var missing []model.KnowledgeItem
	s.mu.RLock()
	for _, d := range docs {
		if _, ok := s.docs[d.ID]; !ok {
			missing = append(missing, d)
		}
	}
	s.mu.RUnlock()
	if len(missing) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(warmConcurrency)
	for start := 0; start < len(missing); start += warmBatchSize {
		batch := missing[start:min(start+warmBatchSize, len(missing))]
		g.Go(func() error {
			texts := make([]string, len(batch))
			for i, d := range batch {
				texts[i] = documentText(d)
			}
			vecs, err := s.embedder.Embed(gctx, texts, embedding.KindDocument)
			if err != nil {
				return fmt.Errorf("embed documents: %w", err)
			}
			if len(vecs) != len(batch) {
				return fmt.Errorf("embed documents: expected %d vectors, got %d", len(batch), len(vecs))
			}
			s.mu.Lock()
			for i, d := range batch {
				s.docs[d.ID] = vecs[i]
			}
			s.mu.Unlock()
			return nil
		})
	}
	return g.Wait()
}

func (s *EmbeddingScorer) Score(ctx context.Context, query string, docs []model.KnowledgeItem) ([]float64, error) {
	if err := s.Warm(ctx, docs); err != nil {
		return nil, err
	}
	qv, err := s.embedder.Embed(ctx, []string{query}, embedding.KindQuery)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(qv) != 1 {
		return nil, fmt.Errorf("embed query: expected 1 vector, got %d", len(qv))
	}

	scores := make([]float64, len(docs))
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i, d := range docs {
		scores[i] = model.ClampUnit(cosine32(qv[0], s.docs[d.ID]))
	}
	return scores, nil
}

func cosine32(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
