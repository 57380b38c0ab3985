package embedding

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

type cached struct {
	next  Embedder
	cache *lru.Cache[string, []float32]
}

// NewCached memoizes query vectors. Document embeddings pass straight through
// since the corpus is embedded once at startup.
func NewCached(next Embedder, size int) (Embedder, error) {
	cache, err := lru.New[string, []float32](size)
	if err != nil {
		return nil, fmt.Errorf("embedding cache: %w", err)
	}
	return &cached{next: next, cache: cache}, nil
}

func (c *cached) Embed(ctx context.Context, texts []string, kind Kind) ([][]float32, error) {
	if kind != KindQuery {
		return c.next.Embed(ctx, texts, kind)
	}

	out := make([][]float32, len(texts))
	var missing []string
	var missingIdx []int
	for i, t := range texts {
		if v, ok := c.cache.Get(t); ok {
			out[i] = v
			continue
		}
		missing = append(missing, t)
		missingIdx = append(missingIdx, i)
	}
	if len(missing) == 0 {
		return out, nil
	}

	vecs, err := c.next.Embed(ctx, missing, kind)
	if err != nil {
		return nil, err
	}
	for j, v := range vecs {
		out[missingIdx[j]] = v
		c.cache.Add(missing[j], v)
	}
	return out, nil
}

func (c *cached) Name() string {
	return c.next.Name()
}
