package embedding

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const DefaultGenAIModel = "text-embedding-004"

type genaiEmbedder struct {
	client *genai.Client
	model  string
}

// NewGenAI creates an embedder backed by the Gemini embedding models.
func NewGenAI(ctx context.Context, apiKey, model string) (Embedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("genai embedder: API key is required")
	}
	if model == "" {
		model = DefaultGenAIModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genai embedder: %w", err)
	}
	return &genaiEmbedder{client: client, model: model}, nil
}

func (g *genaiEmbedder) Embed(ctx context.Context, texts []string, kind Kind) ([][]float32, error) {
	contents := make([]*genai.Content, len(texts))
	for i, t := range texts {
		contents[i] = genai.NewContentFromText(t, genai.RoleUser)
	}

	taskType := "RETRIEVAL_QUERY"
	if kind == KindDocument {
		taskType = "RETRIEVAL_DOCUMENT"
	}

	result, err := g.client.Models.EmbedContent(ctx, g.model, contents, &genai.EmbedContentConfig{TaskType: taskType})
	if err != nil {
		return nil, fmt.Errorf("genai embed: %w", err)
	}
	if len(result.Embeddings) != len(texts) {
		return nil, fmt.Errorf("genai embed: expected %d embeddings, got %d", len(texts), len(result.Embeddings))
	}

	out := make([][]float32, len(texts))
	for i, e := range result.Embeddings {
		out[i] = e.Values
	}
	return out, nil
}

func (g *genaiEmbedder) Name() string {
	return "genai/" + g.model
}
