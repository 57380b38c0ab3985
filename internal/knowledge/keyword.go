package knowledge

import (
	"context"

	"customer-support-agent/internal/model"
)

// KeywordScorer scores the fraction of distinct query words found in a passage.
type KeywordScorer struct{}

func (KeywordScorer) Name() string { return StrategyKeyword }

func (KeywordScorer) Score(_ context.Context, query string, docs []model.KnowledgeItem) ([]float64, error) {
	q := uniq(tokenize(query))
	scores := make([]float64, len(docs))
	if len(q) == 0 {
		return scores, nil
	}
	for i, d := range docs {
		words := make(map[string]struct{})
		for _, w := range tokenize(documentText(d)) {
			words[w] = struct{}{}
		}
		hits := 0
		for _, w := range q {
			if _, ok := words[w]; ok {
				hits++
			}
		}
		scores[i] = float64(hits) / float64(len(q))
	}
	return scores, nil
}

func uniq(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
