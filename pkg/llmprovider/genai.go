package llmprovider

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GenAIAdapter calls Gemini through the official google.golang.org/genai SDK.
type GenAIAdapter struct {
	client *genai.Client
	model  string
}

// NewGenAIAdapter creates a GenAI SDK client for the Gemini API backend.
func NewGenAIAdapter(ctx context.Context, apiKey, model string) (*GenAIAdapter, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GenAIAdapter{client: client, model: model}, nil
}

// GenerateContent implements Provider interface
func (a *GenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, msg := range req.Messages {
		contents = append(contents, genai.NewContentFromText(joinText(msg.Parts), genaiRole(msg.Role)))
	}

	cfg := &genai.GenerateContentConfig{}
	if req.SystemInstruction != nil {
		cfg.SystemInstruction = genai.NewContentFromText(joinText(req.SystemInstruction.Parts), genai.RoleUser)
	}
	if req.Temperature > 0 {
		cfg.Temperature = genai.Ptr(float32(req.Temperature))
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.JSONOutput {
		cfg.ResponseMIMEType = jsonMIMEType
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("genai: %w", err)
	}

	usage := &Usage{}
	if resp.UsageMetadata != nil {
		usage.InputTokens = int(resp.UsageMetadata.PromptTokenCount)
		usage.OutputTokens = int(resp.UsageMetadata.CandidatesTokenCount)
		usage.TotalTokens = int(resp.UsageMetadata.TotalTokenCount)
	}

	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{{Text: resp.Text()}}},
		ProviderName: ProviderGenAI,
		ModelName:    a.model,
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *GenAIAdapter) Name() string {
	return ProviderGenAI
}

// Model returns model name
func (a *GenAIAdapter) Model() string {
	return a.model
}

func genaiRole(role string) genai.Role {
	if role == RoleAssistant {
		return genai.RoleModel
	}
	return genai.RoleUser
}

func joinText(parts []Part) string {
	var out string
	for _, p := range parts {
		out += p.Text
	}
	return out
}
