package knowledge

import (
	"context"
	"sort"
	"strings"
	"sync"

	"customer-support-agent/internal/model"
	"customer-support-agent/pkg/log"
)

// Retriever ranks corpus passages for a query. The corpus is owned by the
// retriever and only grows through AddItems.
type Retriever struct {
	l        log.Logger
	scorer   Scorer
	fallback Scorer

	mu    sync.RWMutex
	items []model.KnowledgeItem
}

// New creates a retriever. When the primary scorer fails, TF-IDF is used instead.
func New(l log.Logger, scorer Scorer, items []model.KnowledgeItem) *Retriever {
	if scorer == nil {
		scorer = TFIDFScorer{}
	}
	cp := make([]model.KnowledgeItem, len(items))
	copy(cp, items)
	return &Retriever{l: l, scorer: scorer, fallback: TFIDFScorer{}, items: cp}
}

// AddItems appends passages, e.g. the product catalog.
func (r *Retriever) AddItems(items ...model.KnowledgeItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, items...)
}

// Len returns the corpus size.
func (r *Retriever) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Strategy returns the primary scorer name.
func (r *Retriever) Strategy() string {
	return r.scorer.Name()
}

// Search returns up to topK passages ordered by score, ties kept in corpus order.
// Passages scoring zero are dropped. An empty query or corpus gives an empty slice.
func (r *Retriever) Search(ctx context.Context, query string, topK int) ([]model.KnowledgeItem, error) {
	return r.SearchCategory(ctx, query, "", topK)
}

// SearchCategory is Search restricted to one category. An empty category means all.
func (r *Retriever) SearchCategory(ctx context.Context, query, category string, topK int) ([]model.KnowledgeItem, error) {
	if strings.TrimSpace(query) == "" || topK <= 0 {
		return []model.KnowledgeItem{}, nil
	}

	docs := r.snapshot(category)
	if len(docs) == 0 {
		return []model.KnowledgeItem{}, nil
	}

	scores, err := r.scorer.Score(ctx, query, docs)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		r.l.Warnf(ctx, "%s: %s scorer failed, using %s: %v", LogPrefixSearch, r.scorer.Name(), r.fallback.Name(), err)
		if scores, err = r.fallback.Score(ctx, query, docs); err != nil {
			return nil, err
		}
	}

	ranked := make([]model.KnowledgeItem, 0, len(docs))
	for i, d := range docs {
		if scores[i] <= 0 {
			continue
		}
		d.Score = model.ClampUnit(scores[i])
		ranked = append(ranked, d)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked, nil
}

func (r *Retriever) snapshot(category string) []model.KnowledgeItem {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.KnowledgeItem, 0, len(r.items))
	for _, it := range r.items {
		if category != "" && !strings.EqualFold(it.Category, category) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// NewScorer resolves a configured strategy name. The embedding strategy needs a
// non-nil scorer built by the caller, so it is passed in.
func NewScorer(strategy string, emb *EmbeddingScorer) Scorer {
	switch strategy {
	case StrategyKeyword:
		return KeywordScorer{}
	case StrategyEmbedding:
		if emb != nil {
			return emb
		}
	}
	return TFIDFScorer{}
}
