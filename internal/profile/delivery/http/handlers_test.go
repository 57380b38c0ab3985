package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-support-agent/internal/model"
	"customer-support-agent/internal/profile"
	"customer-support-agent/pkg/log"
)

func TestDetail(t *testing.T) {
	store := profile.NewStore(log.NewNop(), 10, time.Hour)
	seen := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	pc := &model.PipelineContext{Request: model.Request{UserID: "priya", Text: "I was charged twice", ReceivedAt: seen}}
	pc.Intent.Value = model.IntentBilling
	pc.Sentiment.Value = model.Mood{Sentiment: model.SentimentAngry}
	pc.Escalation.Value = model.EscalationDecision{ShouldEscalate: true, Level: model.EscalationTier2}
	store.Observe(context.Background(), pc)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api"), New(log.NewNop(), store))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/priya/profile", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Data profileResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, profileResp{
		UserID:        "priya",
		Interactions:  1,
		LastIntent:    string(model.IntentBilling),
		LastSentiment: string(model.SentimentAngry),
		LastIssue:     profile.IssueBilling,
		LastEscalated: string(model.EscalationTier2),
		LastSeen:      seen,
	}, body.Data)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/nobody/profile", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
