package app

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"customer-support-agent/config"
	"customer-support-agent/internal/chat"
	"customer-support-agent/internal/model"
	"customer-support-agent/pkg/embedding"
	"customer-support-agent/pkg/log"
)

func testConfig() *config.Config {
	return &config.Config{
		Classifier: config.ClassifierConfig{Mode: config.ClassifierModeRules},
		Knowledge:  config.KnowledgeConfig{Strategy: "tfidf", TopK: 3},
		OrderStore: config.OrderStoreConfig{DSN: ":memory:", Seed: true},
		Pipeline:   config.PipelineConfig{StageTimeout: 5 * time.Second},
		Escalation: config.EscalationConfig{Timeout: 3 * time.Minute},
		Session:    config.SessionConfig{TTL: time.Minute, MaxSessions: 10},
	}
}

func newApp(t *testing.T) (*App, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	a, err := New(context.Background(), testConfig(), log.NewNop(), reg)
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a, reg
}

func TestConversation(t *testing.T) {
	a, reg := newApp(t)
	ctx := context.Background()

	require.NoError(t, a.Ready(ctx))
	assert.Greater(t, a.Knowledge.Len(), 0)

	start, err := a.Chat.Start(ctx, chat.StartInput{UserID: "priya"})
	require.NoError(t, err)

	out, err := a.Chat.SendMessage(ctx, chat.MessageInput{
		SessionID: start.SessionID,
		UserID:    "priya",
		Message:   "Where's my order ORD12345?",
	})
	require.NoError(t, err)
	assert.Contains(t, out.AgentResponse, "ORD12345")
	assert.Contains(t, out.AgentResponse, "Shipped")
	assert.Equal(t, model.IntentOrderTracking, out.Metadata.Intent)
	assert.Len(t, out.Metadata.Trace, 9)

	a.Pipeline.Close()
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "support_pipeline_requests_total"))
	p, ok := a.Profiles.Get("priya")
	require.True(t, ok)
	assert.Equal(t, 1, p.Interactions)
}

func TestEscalationReply(t *testing.T) {
	a, _ := newApp(t)
	ctx := context.Background()

	start, err := a.Chat.Start(ctx, chat.StartInput{UserID: "sam"})
	require.NoError(t, err)
	in := chat.MessageInput{SessionID: start.SessionID, UserID: "sam"}

	in.Message = "I was charged twice, this is infuriating!!!"
	out, err := a.Chat.SendMessage(ctx, in)
	require.NoError(t, err)
	require.Equal(t, model.EscalationStatusAwaitingAgent, out.Metadata.EscalationStatus)

	in.Message = "yes"
	out, err = a.Chat.SendMessage(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, chat.MessageAwaitingAgent, out.AgentResponse)
	assert.Equal(t, model.EscalationStatusAwaitingAgent, out.Metadata.EscalationStatus)

	in.Message = "no"
	out, err = a.Chat.SendMessage(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, chat.MessageCustomerDeclined, out.AgentResponse)
	assert.Equal(t, model.EscalationStatusDeclined, out.Metadata.EscalationStatus)
}

func TestExpiredSessionReleasesTicket(t *testing.T) {
	cfg := testConfig()
	cfg.Session.TTL = 300 * time.Millisecond
	a, err := New(context.Background(), cfg, log.NewNop(), prometheus.NewRegistry())
	require.NoError(t, err)
	t.Cleanup(a.Close)
	ctx := context.Background()

	start, err := a.Chat.Start(ctx, chat.StartInput{UserID: "sam"})
	require.NoError(t, err)
	out, err := a.Chat.SendMessage(ctx, chat.MessageInput{
		SessionID: start.SessionID,
		UserID:    "sam",
		Message:   "I was charged twice, this is infuriating!!!",
	})
	require.NoError(t, err)
	require.Equal(t, model.EscalationStatusAwaitingAgent, out.Metadata.EscalationStatus)

	assert.Eventually(t, func() bool {
		_, ok := a.Handoff.Status(start.SessionID)
		return !ok
	}, 3*time.Second, 20*time.Millisecond, "the ticket goes with the expired session")
}

func TestWithEmbeddingCache(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	a := &App{l: log.FromZap(zap.New(core))}
	ctx := context.Background()
	base := fakeEmbedder{}

	assert.NotEqual(t, embedding.Embedder(base), a.withEmbeddingCache(ctx, base, 8))
	assert.Zero(t, logs.Len())

	assert.Equal(t, embedding.Embedder(base), a.withEmbeddingCache(ctx, base, 0), "falls back to the bare embedder")
	require.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].Message, "fake embeddings uncached")
}

type fakeEmbedder struct{}

func (fakeEmbedder) Embed(_ context.Context, texts []string, _ embedding.Kind) ([][]float32, error) {
	return make([][]float32, len(texts)), nil
}

func (fakeEmbedder) Name() string { return "fake" }

func TestDataDir(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"file:data/ecommerce.db?_pragma=busy_timeout(5000)", "data"},
		{"/var/lib/support/orders.db", "/var/lib/support"},
		{"orders.db", ""},
		{":memory:", ""},
		{"file:test?mode=memory&cache=shared", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, dataDir(tt.dsn), tt.dsn)
	}
}

func TestTools(t *testing.T) {
	a, _ := newApp(t)
	ctx := context.Background()

	registry := a.Tools()
	assert.Len(t, registry.List(), 4)

	tool, ok := registry.Get("order_status")
	require.True(t, ok)
	out, err := tool.Execute(ctx, map[string]interface{}{"order_id": "ORD12345"})
	require.NoError(t, err)
	assert.Equal(t, "Shipped", out.(model.OrderRecord).Status)

	tool, ok = registry.Get("search_knowledge")
	require.True(t, ok)
	_, err = tool.Execute(ctx, map[string]interface{}{"query": "how do I return an item"})
	require.NoError(t, err)
}
