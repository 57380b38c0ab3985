package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"customer-support-agent/internal/model"
	"customer-support-agent/pkg/llmprovider"
	"customer-support-agent/pkg/log"
)

// Generator is the slice of the generation service the classifier needs.
// *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// LLMClassifier delegates labelling to the generation service and treats the answer as
// untrusted: labels outside the enumeration become GENERAL, unusable answers fall back
// to the rule table.
type LLMClassifier struct {
	gen      Generator
	fallback *RuleClassifier
	l        log.Logger
}

var _ Classifier = (*LLMClassifier)(nil)

// NewLLM creates an LLM-backed classifier with the rule table as fallback.
func NewLLM(gen Generator, fallback *RuleClassifier, l log.Logger) *LLMClassifier {
	if fallback == nil {
		fallback = NewRules(nil)
	}
	return &LLMClassifier{gen: gen, fallback: fallback, l: l}
}

// Classify asks the service for a label.
func (c *LLMClassifier) Classify(ctx context.Context, text string) (model.StageResult[model.Intent], error) {
	req := llmprovider.NewTextRequest(PromptClassifySystem, fmt.Sprintf(PromptClassifyUser, text))
	req.Temperature = LLMTemperature
	req.MaxTokens = LLMMaxTokens
	req.JSONOutput = true

	resp, err := c.gen.GenerateContent(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return model.StageResult[model.Intent]{}, ctx.Err()
		}
		c.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ExplainLLMFailed, err)
		return c.fallbackResult(ctx, text, ExplainLLMFailed)
	}

	raw := stripCodeFence(resp.Text())
	if raw == "" {
		c.l.Warnf(ctx, "%s: %s", LogPrefixClassify, ExplainEmptyResponse)
		return c.fallbackResult(ctx, text, ExplainEmptyResponse)
	}

	var out llmOutput
	if err := json.Unmarshal([]byte(raw), &out); err != nil || strings.TrimSpace(out.Intent) == "" {
		c.l.Warnf(ctx, "%s: %s: %q", LogPrefixClassify, ExplainUnparseable, raw)
		return c.fallbackResult(ctx, text, ExplainUnparseable)
	}

	intent, ok := model.ParseIntent(out.Intent)
	if !ok {
		c.l.Warnf(ctx, "%s: unknown label %q", LogPrefixClassify, out.Intent)
		return model.NewStageResult(model.StageIntent, model.IntentGeneral, ConfidenceGeneral,
			fmt.Sprintf(ExplainRemappedFormat, out.Intent)), nil
	}

	c.l.Infof(ctx, "%s: classified as %s (confidence: %.0f%%)", LogPrefixClassify, intent, out.Confidence)
	return model.NewStageResult(model.StageIntent, intent, out.Confidence/100, out.Reasoning), nil
}

func (c *LLMClassifier) fallbackResult(ctx context.Context, text, reason string) (model.StageResult[model.Intent], error) {
	res, err := c.fallback.Classify(ctx, text)
	res.Explain = reason + ": " + res.Explain
	return res, err
}

// stripCodeFence removes a surrounding ```json ... ``` block if present.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 && !strings.Contains(s[:nl], "{") {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
