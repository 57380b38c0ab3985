package model

// KnowledgeItem is one ranked passage from the knowledge corpus.
type KnowledgeItem struct {
	ID       string  `json:"id" yaml:"id"`
	Category string  `json:"category" yaml:"category"`
	Title    string  `json:"title" yaml:"title"`
	Passage  string  `json:"passage" yaml:"passage"`
	Score    float64 `json:"score" yaml:"-"`
}
