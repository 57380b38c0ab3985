package tools

import (
	"context"

	"customer-support-agent/internal/classifier"
	"customer-support-agent/internal/model"
	"customer-support-agent/internal/sentiment"
)

// Categorizer applies the deterministic category rules.
type Categorizer interface {
	Categorize(text string) model.StageResult[model.Intent]
}

// ClassifyMessageTool labels a message without composing a reply.
type ClassifyMessageTool struct {
	classifier  classifier.Classifier
	categorizer Categorizer
}

func NewClassifyMessageTool(c classifier.Classifier, cat Categorizer) *ClassifyMessageTool {
	return &ClassifyMessageTool{classifier: c, categorizer: cat}
}

func (t *ClassifyMessageTool) Name() string {
	return "classify_message"
}

func (t *ClassifyMessageTool) Description() string {
	return "Classify a customer message into an intent and category and measure its sentiment and urgency."
}

func (t *ClassifyMessageTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"message": map[string]interface{}{
				"type":        "string",
				"description": "The customer's message",
			},
		},
		"required": []string{"message"},
	}
}

type ClassifyMessageResult struct {
	Intent    model.StageResult[model.Intent] `json:"intent"`
	Category  model.StageResult[model.Intent] `json:"category"`
	Sentiment model.StageResult[model.Mood]   `json:"sentiment"`
}

func (t *ClassifyMessageTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	msg, err := requiredString(params, "message")
	if err != nil {
		return nil, err
	}

	intent, err := t.classifier.Classify(ctx, msg)
	if err != nil {
		return nil, err
	}
	return ClassifyMessageResult{
		Intent:    intent,
		Category:  t.categorizer.Categorize(msg),
		Sentiment: sentiment.Analyze(msg),
	}, nil
}
