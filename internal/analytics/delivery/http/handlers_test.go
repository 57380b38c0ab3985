package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-support-agent/internal/analytics"
	"customer-support-agent/internal/model"
	"customer-support-agent/pkg/log"
)

func observe(a *analytics.Analytics, intent model.Intent, mood model.Sentiment, d model.EscalationDecision) {
	pc := &model.PipelineContext{}
	pc.Intent.Value = intent
	pc.Sentiment.Value = model.Mood{Sentiment: mood}
	pc.Escalation.Value = d
	a.Observe(context.Background(), pc)
}

func TestSummary(t *testing.T) {
	a := analytics.New(prometheus.NewRegistry())
	escalated := model.EscalationDecision{ShouldEscalate: true, Level: model.EscalationTier2}
	observe(a, model.IntentBilling, model.SentimentAngry, escalated)
	observe(a, model.IntentBilling, model.SentimentNeutral, model.NoEscalation())
	observe(a, model.IntentTechnical, model.SentimentNeutral, model.NoEscalation())
	observe(a, model.IntentFAQ, model.SentimentPositive, model.NoEscalation())

	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api"), New(log.NewNop(), a))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/analytics", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Data snapshotResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 4, body.Data.Requests)
	assert.Equal(t, 1, body.Data.Escalated)
	assert.InDelta(t, 0.25, body.Data.EscalationRate, 1e-9)
	assert.Equal(t, 2, body.Data.Intents[string(model.IntentBilling)])
	assert.Equal(t, 2, body.Data.Sentiments[string(model.SentimentNeutral)])
	assert.Equal(t, map[string]int{string(model.EscalationTier2): 1}, body.Data.Escalations)
}

func TestSummaryEmpty(t *testing.T) {
	out := newSnapshotResp(analytics.New(prometheus.NewRegistry()).Snapshot())
	assert.Zero(t, out.EscalationRate)
	assert.NotNil(t, out.Intents)
}
