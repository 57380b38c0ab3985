package profile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-support-agent/internal/model"
	"customer-support-agent/pkg/log"
)

func run(uid, text string, category model.Intent) *model.PipelineContext {
	pc := &model.PipelineContext{Request: model.Request{UserID: uid, Text: text, ReceivedAt: time.Now()}}
	pc.Intent.Value = category
	pc.Category.Value = category
	pc.Sentiment.Value = model.Mood{Sentiment: model.SentimentNeutral, Urgency: model.UrgencyLow}
	return pc
}

func TestObserve(t *testing.T) {
	s := NewStore(log.NewNop(), 0, 0)
	ctx := context.Background()

	s.Observe(ctx, run("u1", "I was charged twice", model.IntentBilling))
	s.Observe(ctx, run("u1", "hello again", model.IntentGeneral))
	s.Observe(ctx, run("", "anonymous", model.IntentGeneral))

	p, ok := s.Get("u1")
	require.True(t, ok)
	assert.Equal(t, 2, p.Interactions)
	assert.Equal(t, model.IntentGeneral, p.LastIntent)
	assert.Equal(t, IssueBilling, p.LastIssue, "issue survives unrelated messages")
	assert.Equal(t, 1, s.Len())

	s.Observe(ctx, run("u1", "my router is broken", model.IntentTechnical))
	p, _ = s.Get("u1")
	assert.Equal(t, IssueTechnical, p.LastIssue)
}

func TestProfilesExpire(t *testing.T) {
	s := NewStore(log.NewNop(), 10, 20*time.Millisecond)
	s.Observe(context.Background(), run("u2", "hi", model.IntentGeneral))

	assert.Eventually(t, func() bool {
		_, ok := s.Get("u2")
		return !ok
	}, time.Second, 10*time.Millisecond)
}
