package tools

import (
	"context"
	"time"

	"customer-support-agent/internal/model"
)

// Processor runs the full support pipeline for one message.
type Processor interface {
	Process(ctx context.Context, req model.Request) (*model.PipelineContext, error)
}

// ProcessMessageTool answers a customer message end to end.
type ProcessMessageTool struct {
	pipeline Processor
}

func NewProcessMessageTool(p Processor) *ProcessMessageTool {
	return &ProcessMessageTool{pipeline: p}
}

func (t *ProcessMessageTool) Name() string {
	return "process_message"
}

func (t *ProcessMessageTool) Description() string {
	return "Answer a customer support message. Returns the reply shown to the customer along with the detected intent, sentiment and escalation decision."
}

func (t *ProcessMessageTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"message": map[string]interface{}{
				"type":        "string",
				"description": "The customer's message",
			},
			"user_id": map[string]interface{}{
				"type":        "string",
				"description": "Optional customer identifier",
			},
		},
		"required": []string{"message"},
	}
}

// ProcessMessageResult is the JSON shape returned to the caller.
type ProcessMessageResult struct {
	Reply       string                   `json:"reply"`
	Intent      model.Intent             `json:"intent"`
	Category    model.Intent             `json:"category"`
	Sentiment   model.Mood               `json:"sentiment"`
	Escalation  model.EscalationDecision `json:"escalation"`
	SafetyFlags []model.SafetyFlag       `json:"safety_flags"`
	Degraded    bool                     `json:"degraded"`
	DurationMS  int64                    `json:"duration_ms"`
}

func (t *ProcessMessageTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	msg, err := requiredString(params, "message")
	if err != nil {
		return nil, err
	}

	req := model.Request{
		Text:     msg,
		UserID:   optionalString(params, "user_id"),
		Metadata: map[string]string{"channel": "mcp"},
	}

	start := time.Now()
	pc, err := t.pipeline.Process(ctx, req)
	if err != nil {
		return nil, err
	}

	flags := pc.Verdict.Value.SafetyFlags
	if flags == nil {
		flags = []model.SafetyFlag{}
	}
	return ProcessMessageResult{
		Reply:       pc.Reply(),
		Intent:      pc.Intent.Value,
		Category:    pc.Category.Value,
		Sentiment:   pc.Sentiment.Value,
		Escalation:  pc.Escalation.Value,
		SafetyFlags: flags,
		Degraded:    pc.Degraded(),
		DurationMS:  time.Since(start).Milliseconds(),
	}, nil
}
