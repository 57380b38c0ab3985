package embedding

import "context"

// Kind tells the backend whether texts are search queries or corpus passages.
type Kind int

const (
	KindQuery Kind = iota
	KindDocument
)

// Embedder turns texts into vectors, one per text, in input order.
// Implementations are safe for concurrent use.
type Embedder interface {
	Embed(ctx context.Context, texts []string, kind Kind) ([][]float32, error)
	Name() string
}
