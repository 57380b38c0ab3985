package llmprovider

import (
	"context"
	"fmt"

	"customer-support-agent/pkg/openaicompat"
)

// Completer is the OpenAI-compatible chat completions client.
type Completer interface {
	Complete(ctx context.Context, req openaicompat.Request) (*openaicompat.Response, error)
	Model() string
}

// CompletionAdapter serves any OpenAI-compatible service (DeepSeek, Qwen) as a Provider.
type CompletionAdapter struct {
	name   string
	client Completer
}

// NewCompletionAdapter names the adapter after the service it talks to.
func NewCompletionAdapter(name string, client Completer) *CompletionAdapter {
	return &CompletionAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *CompletionAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	creq := openaicompat.Request{
		Messages:    make([]openaicompat.Message, 0, len(req.Messages)+1),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		creq.Messages = append(creq.Messages, openaicompat.Message{Role: RoleSystem, Content: joinText(req.SystemInstruction.Parts)})
	}
	for _, m := range req.Messages {
		creq.Messages = append(creq.Messages, openaicompat.Message{Role: m.Role, Content: joinText(m.Parts)})
	}
	if req.JSONOutput {
		creq.ResponseFormat = openaicompat.JSONOutput()
	}

	resp, err := a.client.Complete(ctx, creq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.name, classify(err))
	}

	model := resp.Model
	if model == "" {
		model = a.client.Model()
	}
	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{{Text: resp.Text()}}},
		ProviderName: a.name,
		ModelName:    model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *CompletionAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *CompletionAdapter) Model() string {
	return a.client.Model()
}
