package classifier

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-support-agent/internal/model"
	"customer-support-agent/pkg/llmprovider"
	"customer-support-agent/pkg/log"
)

func TestRuleClassifier(t *testing.T) {
	c := NewRules(nil)

	tests := []struct {
		name string
		text string
		want model.Intent
	}{
		{"order lookup", "Where's my order ORD12345?", model.IntentOrderTracking},
		{"router", "My router has no internet", model.IntentTechnical},
		{"double charge", "I was charged twice, this is infuriating!!!", model.IntentBilling},
		{"refund beats charge", "I was charged for an item and want a refund", model.IntentReturns},
		{"charge beats technical", "the app charged my card twice", model.IntentBilling},
		{"technical beats shipping", "the tracking page shows an error", model.IntentTechnical},
		{"product", "Is the blue one in stock?", model.IntentProductInfo},
		{"faq", "What is your holiday policy?", model.IntentFAQ},
		{"whole words only", "I ordered nothing, just saying hi", model.IntentGeneral},
		{"unmatched", "hello there", model.IntentGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := c.Classify(context.Background(), tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Value)
			assert.Equal(t, model.StageIntent, res.Stage)
			assert.True(t, res.Value.Valid())
		})
	}
}

func TestRuleClassifierConfidence(t *testing.T) {
	c := NewRules(nil)

	matched := c.Categorize("please refund me")
	assert.Equal(t, model.StageCategory, matched.Stage)
	assert.Equal(t, ConfidenceMatch, matched.Confidence)
	assert.Contains(t, matched.Explain, "refund")

	general := c.Categorize("good morning")
	assert.Equal(t, ConfidenceGeneral, general.Confidence)
}

func TestRuleClassifierPrecedenceIsExplained(t *testing.T) {
	res := NewRules(nil).Categorize("refund the charge on my order")
	assert.Equal(t, model.IntentReturns, res.Value)
	assert.Contains(t, res.Explain, "precedence over billing, shipping")
}

func TestNewRulesSortsByPriority(t *testing.T) {
	c := NewRules([]Rule{
		{Tag: "low", Keywords: []string{"help"}, Intent: model.IntentFAQ, Priority: 9},
		{Tag: "high", Keywords: []string{"help"}, Intent: model.IntentTechnical, Priority: 1},
	})
	assert.Equal(t, model.IntentTechnical, c.Categorize("help").Value)
}

func TestSortedByPriorityIsStable(t *testing.T) {
	rules := []Rule{
		{Tag: "c", Priority: 3},
		{Tag: "a1", Priority: 1},
		{Tag: "b", Priority: 2},
		{Tag: "a2", Priority: 1},
	}
	got := sortedByPriority(rules)

	tags := make([]string, len(got))
	for i, r := range got {
		tags[i] = r.Tag
	}
	assert.Equal(t, []string{"a1", "a2", "b", "c"}, tags)
	assert.Equal(t, "c", rules[0].Tag, "input order untouched")
}

type fakeGenerator struct {
	text string
	err  error
	req  *llmprovider.Request
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{Content: llmprovider.Message{Parts: []llmprovider.Part{{Text: f.text}}}}, nil
}

func TestLLMClassifier(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		err            error
		want           model.Intent
		wantConfidence float64
		wantExplain    string
	}{
		{
			name:           "valid label",
			text:           `{"intent":"BILLING","confidence":87,"reasoning":"double charge"}`,
			want:           model.IntentBilling,
			wantConfidence: 0.87,
			wantExplain:    "double charge",
		},
		{
			name:           "code fence and lower case",
			text:           "```json\n{\"intent\":\"order tracking\",\"confidence\":140}\n```",
			want:           model.IntentOrderTracking,
			wantConfidence: 1,
		},
		{
			name:           "unknown label remapped",
			text:           `{"intent":"COMPLAINT","confidence":90}`,
			want:           model.IntentGeneral,
			wantConfidence: ConfidenceGeneral,
			wantExplain:    `service returned unknown label "COMPLAINT", remapped to GENERAL`,
		},
		{
			name:           "unparseable falls back to rules",
			text:           "It is probably a refund request.",
			want:           model.IntentReturns,
			wantConfidence: ConfidenceMatch,
			wantExplain:    ExplainUnparseable,
		},
		{
			name:           "empty falls back to rules",
			text:           "   ",
			want:           model.IntentReturns,
			wantConfidence: ConfidenceMatch,
			wantExplain:    ExplainEmptyResponse,
		},
		{
			name:           "service error falls back to rules",
			err:            errors.New("all providers failed"),
			want:           model.IntentReturns,
			wantConfidence: ConfidenceMatch,
			wantExplain:    ExplainLLMFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{text: tt.text, err: tt.err}
			c := NewLLM(gen, nil, log.NewNop())

			res, err := c.Classify(context.Background(), "I want a refund for my order")
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Value)
			assert.InDelta(t, tt.wantConfidence, res.Confidence, 1e-9)
			assert.Contains(t, res.Explain, tt.wantExplain)
			assert.Equal(t, model.StageIntent, res.Stage)
			assert.True(t, gen.req.JSONOutput)
		})
	}
}

func TestLLMClassifierHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewLLM(&fakeGenerator{err: context.Canceled}, nil, log.NewNop())
	_, err := c.Classify(ctx, "refund")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json{\"a\":1}```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence(`  {"a":1} `))
}
