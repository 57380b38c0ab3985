package knowledge

import (
	"context"
	"math"
	"sort"

	"customer-support-agent/internal/model"
)

// TFIDFScorer computes cosine similarity of smoothed-idf TF-IDF vectors.
// idf(t) = ln((1+N)/(1+df(t))) + 1, with the query counted as part of the collection.
type TFIDFScorer struct{}

func (TFIDFScorer) Name() string { return StrategyTFIDF }

func (TFIDFScorer) Score(_ context.Context, query string, docs []model.KnowledgeItem) ([]float64, error) {
	scores := make([]float64, len(docs))
	q := tokenize(query)
	if len(q) == 0 || len(docs) == 0 {
		return scores, nil
	}

	termDocs := make([]map[string]float64, len(docs)+1)
	termDocs[0] = termFreq(q)
	for i, d := range docs {
		termDocs[i+1] = termFreq(tokenize(documentText(d)))
	}

	df := make(map[string]int)
	for _, tf := range termDocs {
		for t := range tf {
			df[t]++
		}
	}
	n := float64(len(termDocs))
	idf := func(t string) float64 {
		return math.Log((1+n)/(1+float64(df[t]))) + 1
	}

	qv := weigh(termDocs[0], idf)
	for i := range docs {
		scores[i] = model.ClampUnit(cosine(qv, weigh(termDocs[i+1], idf)))
	}
	return scores, nil
}

func termFreq(tokens []string) map[string]float64 {
	tf := make(map[string]float64, len(tokens))
	for _, t := range tokens {
		tf[t]++
	}
	return tf
}

func weigh(tf map[string]float64, idf func(string) float64) map[string]float64 {
	v := make(map[string]float64, len(tf))
	for t, f := range tf {
		v[t] = f * idf(t)
	}
	return v
}

// cosine sums in key order so equal inputs give bit-identical scores.
func cosine(a, b map[string]float64) float64 {
	var dot, na, nb float64
	for _, t := range sortedKeys(a) {
		x := a[t]
		na += x * x
		if y, ok := b[t]; ok {
			dot += x * y
		}
	}
	for _, t := range sortedKeys(b) {
		nb += b[t] * b[t]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
