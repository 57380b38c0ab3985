package tools

import (
	"context"

	"customer-support-agent/internal/model"
)

const (
	defaultSearchTopK = 3
	maxSearchTopK     = 10
)

// KnowledgeSearcher ranks corpus passages, optionally within one category.
type KnowledgeSearcher interface {
	SearchCategory(ctx context.Context, query, category string, topK int) ([]model.KnowledgeItem, error)
}

// SearchKnowledgeTool queries the support knowledge base.
type SearchKnowledgeTool struct {
	knowledge KnowledgeSearcher
}

func NewSearchKnowledgeTool(k KnowledgeSearcher) *SearchKnowledgeTool {
	return &SearchKnowledgeTool{knowledge: k}
}

func (t *SearchKnowledgeTool) Name() string {
	return "search_knowledge"
}

func (t *SearchKnowledgeTool) Description() string {
	return "Search the support knowledge base for passages about policies, shipping, returns, billing and products."
}

func (t *SearchKnowledgeTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "What to search for",
			},
			"category": map[string]interface{}{
				"type":        "string",
				"description": "Optional category filter such as returns or shipping",
			},
			"top_k": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum number of passages (default 3, max 10)",
			},
		},
		"required": []string{"query"},
	}
}

type SearchKnowledgeResult struct {
	Query   string                `json:"query"`
	Count   int                   `json:"count"`
	Results []model.KnowledgeItem `json:"results"`
}

func (t *SearchKnowledgeTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	query, err := requiredString(params, "query")
	if err != nil {
		return nil, err
	}

	topK := optionalInt(params, "top_k", defaultSearchTopK)
	if topK <= 0 {
		topK = defaultSearchTopK
	}
	if topK > maxSearchTopK {
		topK = maxSearchTopK
	}

	items, err := t.knowledge.SearchCategory(ctx, query, optionalString(params, "category"), topK)
	if err != nil {
		return nil, err
	}
	return SearchKnowledgeResult{
		Query:   query,
		Count:   len(items),
		Results: items,
	}, nil
}
