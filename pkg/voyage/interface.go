package voyage

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// IVoyage defines the interface for Voyage AI embeddings.
// Implementations are safe for concurrent use.
type IVoyage interface {
	// Embed returns one vector per text, in input order.
	Embed(ctx context.Context, texts []string, inputType string) ([][]float32, error)
	Model() string
}

// New creates a new Voyage AI client.
func New(cfg Config) (IVoyage, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("voyage: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &client{cfg: cfg}, nil
}
