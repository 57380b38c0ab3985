package knowledge

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"customer-support-agent/internal/model"
)

//go:embed corpus.yaml
var defaultCorpus []byte

// DefaultItems returns the built-in corpus.
func DefaultItems() ([]model.KnowledgeItem, error) {
	return ParseCorpus(defaultCorpus)
}

// LoadFile reads a YAML corpus from disk. An empty path yields the built-in corpus.
func LoadFile(path string) ([]model.KnowledgeItem, error) {
	if path == "" {
		return DefaultItems()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}
	return ParseCorpus(data)
}

// ParseCorpus decodes YAML and rejects items without id or passage or with a duplicate id.
func ParseCorpus(data []byte) ([]model.KnowledgeItem, error) {
	var c Corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}
	seen := make(map[string]struct{}, len(c.Items))
	for i, it := range c.Items {
		if strings.TrimSpace(it.ID) == "" || strings.TrimSpace(it.Passage) == "" {
			return nil, fmt.Errorf("parse corpus: item %d needs id and passage", i)
		}
		if _, dup := seen[it.ID]; dup {
			return nil, fmt.Errorf("parse corpus: duplicate id %q", it.ID)
		}
		seen[it.ID] = struct{}{}
	}
	return c.Items, nil
}

// ProductItems turns catalog entries into searchable passages.
func ProductItems(products []model.Product) []model.KnowledgeItem {
	items := make([]model.KnowledgeItem, 0, len(products))
	for _, p := range products {
		stock := "in stock"
		if !p.InStock {
			stock = "currently out of stock"
		}
		items = append(items, model.KnowledgeItem{
			ID:       "product-" + p.ProductID,
			Category: CategoryProducts,
			Title:    p.Name,
			Passage: fmt.Sprintf("%s (%s): %s. Price %.2f, rated %.1f, %s.",
				p.Name, p.Category, p.Description, p.Price, p.Rating, stock),
		})
	}
	return items
}
