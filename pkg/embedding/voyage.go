package embedding

import (
	"context"

	"customer-support-agent/pkg/voyage"
)

type voyageEmbedder struct {
	client voyage.IVoyage
}

// NewVoyage wraps a Voyage AI client.
func NewVoyage(client voyage.IVoyage) Embedder {
	return &voyageEmbedder{client: client}
}

func (v *voyageEmbedder) Embed(ctx context.Context, texts []string, kind Kind) ([][]float32, error) {
	inputType := voyage.InputTypeQuery
	if kind == KindDocument {
		inputType = voyage.InputTypeDocument
	}
	return v.client.Embed(ctx, texts, inputType)
}

func (v *voyageEmbedder) Name() string {
	return "voyage/" + v.client.Model()
}
