package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-support-agent/internal/chat"
	"customer-support-agent/internal/model"
	"customer-support-agent/pkg/log"
)

type mockUseCase struct {
	lastStart   chat.StartInput
	lastMessage chat.MessageInput
	lastConfirm chat.ConfirmInput
	err         error
}

func (m *mockUseCase) Start(_ context.Context, in chat.StartInput) (chat.StartOutput, error) {
	m.lastStart = in
	if m.err != nil {
		return chat.StartOutput{}, m.err
	}
	user := in.UserID
	if user == "" {
		user = "generated"
	}
	return chat.StartOutput{SessionID: "s1", UserID: user}, nil
}

func (m *mockUseCase) SendMessage(_ context.Context, in chat.MessageInput) (chat.MessageOutput, error) {
	m.lastMessage = in
	if m.err != nil {
		return chat.MessageOutput{}, m.err
	}
	return chat.MessageOutput{
		SessionID:     in.SessionID,
		AgentResponse: "Your order ORD12345 is Shipped.",
		MessageCount:  1,
		Metadata: model.MessageMetadata{
			Intent:           model.IntentOrderTracking,
			Category:         model.IntentOrderTracking,
			Sentiment:        model.SentimentNeutral,
			Urgency:          model.UrgencyLow,
			EscalationStatus: model.EscalationStatusNone,
			EscalationLevel:  model.EscalationNone,
			SafetyFlags:      []model.SafetyFlag{},
			Trace:            []model.StageTrace{{Stage: model.StageIntent, Duration: 2 * time.Millisecond}},
		},
	}, nil
}

func (m *mockUseCase) History(_ context.Context, id string) (chat.HistoryOutput, error) {
	if m.err != nil {
		return chat.HistoryOutput{}, m.err
	}
	meta := model.MessageMetadata{Intent: model.IntentGeneral}
	return chat.HistoryOutput{
		SessionID: id,
		History: []model.HistoryEntry{
			{Role: model.RoleUser, Content: "hi"},
			{Role: model.RoleAgent, Content: "hello", Metadata: &meta},
		},
		MessageCount:     1,
		EscalationStatus: model.EscalationStatusNone,
	}, nil
}

func (m *mockUseCase) End(_ context.Context, id string) (chat.EndOutput, error) {
	if m.err != nil {
		return chat.EndOutput{}, m.err
	}
	return chat.EndOutput{SessionID: id, TotalMessages: 3, Duration: 90 * time.Second}, nil
}

func (m *mockUseCase) ActiveSessions(_ context.Context) (chat.ActiveOutput, error) {
	if m.err != nil {
		return chat.ActiveOutput{}, m.err
	}
	return chat.ActiveOutput{Sessions: []chat.SessionSummary{{SessionID: "s1"}, {SessionID: "s2"}}}, nil
}

func (m *mockUseCase) ConfirmEscalation(_ context.Context, in chat.ConfirmInput) (chat.ConfirmOutput, error) {
	m.lastConfirm = in
	out := chat.ConfirmOutput{SessionID: in.SessionID, EscalationStatus: model.EscalationStatusEscalated, Message: chat.MessageEscalated}
	return out, m.err
}

func newRouter(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api"), New(log.NewNop(), uc))
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	var body struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NoError(t, json.Unmarshal(body.Data, v))
}

func TestStart(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(uc)

	w := do(r, http.MethodPost, "/api/chat/start", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp startResp
	decodeData(t, w, &resp)
	assert.Equal(t, "s1", resp.SessionID)
	assert.Equal(t, "generated", resp.UserID)

	w = do(r, http.MethodPost, "/api/chat/start", `{"user_id":"u1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", uc.lastStart.UserID)

	w = do(r, http.MethodPost, "/api/chat/start", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMessage(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(uc)

	w := do(r, http.MethodPost, "/api/chat/message", `{"session_id":"s1","user_id":"u1","message":"Where is ORD12345?"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Where is ORD12345?", uc.lastMessage.Message)

	var resp messageResp
	decodeData(t, w, &resp)
	assert.Equal(t, "Your order ORD12345 is Shipped.", resp.AgentResponse)
	assert.Equal(t, "ORDER_TRACKING", resp.Metadata.Intent)
	assert.Equal(t, "none", resp.Metadata.EscalationStatus)
	require.Len(t, resp.Metadata.Trace, 1)
	assert.Equal(t, "intent", resp.Metadata.Trace[0].Stage)
	assert.InDelta(t, 2.0, resp.Metadata.Trace[0].DurationMs, 0.001)
}

func TestMessageErrors(t *testing.T) {
	valid := `{"session_id":"s1","user_id":"u1","message":"hi"}`
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
	}{
		{name: "missing session", body: `{"user_id":"u1","message":"hi"}`, wantStatus: http.StatusBadRequest},
		{name: "blank message", body: `{"session_id":"s1","user_id":"u1","message":"   "}`, wantStatus: http.StatusBadRequest},
		{name: "unknown session", body: valid, ucErr: chat.ErrSessionNotFound, wantStatus: http.StatusNotFound},
		{name: "foreign session", body: valid, ucErr: chat.ErrUserMismatch, wantStatus: http.StatusForbidden},
		{name: "invalid message", body: valid, ucErr: chat.ErrInvalidMessage, wantStatus: http.StatusBadRequest},
		{name: "rate limited", body: valid, ucErr: chat.ErrRateLimited, wantStatus: http.StatusTooManyRequests},
		{name: "unexpected", body: valid, ucErr: assert.AnError, wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(&mockUseCase{err: tt.ucErr})
			w := do(r, http.MethodPost, "/api/chat/message", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

func TestUnexpectedErrorIsNotEchoed(t *testing.T) {
	r := newRouter(&mockUseCase{err: assert.AnError})
	w := do(r, http.MethodGet, "/api/chat/history/s1", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestHistoryEndActive(t *testing.T) {
	r := newRouter(&mockUseCase{})

	w := do(r, http.MethodGet, "/api/chat/history/s1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var hist historyResp
	decodeData(t, w, &hist)
	require.Len(t, hist.History, 2)
	assert.Nil(t, hist.History[0].Metadata)
	require.NotNil(t, hist.History[1].Metadata)
	assert.Equal(t, "GENERAL", hist.History[1].Metadata.Intent)

	w = do(r, http.MethodPost, "/api/chat/end/s1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var end endResp
	decodeData(t, w, &end)
	assert.Equal(t, 3, end.TotalMessages)
	assert.InDelta(t, 1.5, end.DurationMinutes, 0.001)

	w = do(r, http.MethodGet, "/api/sessions/active", "")
	require.Equal(t, http.StatusOK, w.Code)
	var active activeResp
	decodeData(t, w, &active)
	assert.Equal(t, 2, active.ActiveSessions)

	r = newRouter(&mockUseCase{err: chat.ErrSessionNotFound})
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPost, "/api/chat/end/s1", "").Code)
}

func TestConfirmEscalation(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(uc)

	w := do(r, http.MethodPost, "/api/escalation/confirm", `{"session_id":"s1","confirmed":true,"agent_id":"a1"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, uc.lastConfirm.Confirmed)
	assert.Equal(t, "a1", uc.lastConfirm.AgentID)
	var resp confirmResp
	decodeData(t, w, &resp)
	assert.Equal(t, "escalated", resp.EscalationStatus)

	w = do(r, http.MethodPost, "/api/escalation/confirm", `{"session_id":"s1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "confirmed is required")

	r = newRouter(&mockUseCase{err: chat.ErrNoPendingEscalation})
	w = do(r, http.MethodPost, "/api/escalation/confirm", `{"session_id":"s1","confirmed":false}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	r = newRouter(&mockUseCase{err: chat.ErrEscalationResolved})
	w = do(r, http.MethodPost, "/api/escalation/confirm", `{"session_id":"s1","confirmed":false}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	var body struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "escalated", body.Data["escalation_status"])
}
