package escalation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"customer-support-agent/internal/model"
	"customer-support-agent/pkg/log"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var actionablePlan = model.Plan{Name: "router", Steps: []model.Step{{Action: "Unplug router"}}}

func TestTransition(t *testing.T) {
	states := []model.EscalationState{
		model.EscalationStateNone, model.EscalationStatePending,
		model.EscalationStateConfirmed, model.EscalationStateDeclined,
	}
	events := []Event{EventEscalate, EventConfirm, EventDecline, EventTimeout}
	allowed := map[model.EscalationState]map[Event]model.EscalationState{
		model.EscalationStateNone:    {EventEscalate: model.EscalationStatePending},
		model.EscalationStatePending: {EventConfirm: model.EscalationStateConfirmed, EventDecline: model.EscalationStateDeclined, EventTimeout: model.EscalationStateDeclined},
	}

	for _, from := range states {
		for _, ev := range events {
			next, err := Transition(from, ev)
			if want, ok := allowed[from][ev]; ok {
				assert.NoError(t, err, "%s on %s", from, ev)
				assert.Equal(t, want, next)
				continue
			}
			assert.ErrorIs(t, err, ErrInvalidTransition, "%s on %s", from, ev)
			assert.Equal(t, from, next)
		}
	}
}

func TestDecideEscalatesOnNegativeMoodOrHighUrgency(t *testing.T) {
	sentiments := []model.Sentiment{model.SentimentPositive, model.SentimentNeutral, model.SentimentNegative, model.SentimentAngry}
	urgencies := []model.Urgency{model.UrgencyLow, model.UrgencyMedium, model.UrgencyHigh}

	for _, s := range sentiments {
		for _, u := range urgencies {
			mood := model.Mood{Sentiment: s, Urgency: u}
			decision, state := Decide(mood, model.IntentGeneral, "hello", actionablePlan)

			want := mood.IsNegative() || u == model.UrgencyHigh
			assert.Equal(t, want, decision.ShouldEscalate, "%s/%s", s, u)
			if want {
				assert.Equal(t, model.EscalationStatePending, state)
				assert.NotEqual(t, model.EscalationNone, decision.Level)
			} else {
				assert.Equal(t, model.EscalationStateNone, state)
				assert.Equal(t, model.EscalationNone, decision.Level)
				assert.Empty(t, decision.Reason)
			}
			if mood.IsNegative() {
				assert.Contains(t, decision.Reason, ReasonNegativeSentiment)
			}
		}
	}
}

func TestDecideScenarios(t *testing.T) {
	tests := []struct {
		name     string
		mood     model.Mood
		category model.Intent
		text     string
		plan     model.Plan
		want     model.EscalationDecision
	}{
		{
			name:     "angry double charge",
			mood:     model.Mood{Sentiment: model.SentimentAngry, Urgency: model.UrgencyHigh},
			category: model.IntentBilling,
			text:     "I was charged twice, this is infuriating!!!",
			plan:     actionablePlan,
			want: model.EscalationDecision{
				ShouldEscalate: true,
				Reason:         "negative sentiment; high urgency; monetary loss (charged twice)",
				Level:          model.EscalationTier2,
				State:          model.EscalationStatePending,
			},
		},
		{
			name:     "calm fraud report",
			mood:     model.Mood{Sentiment: model.SentimentNeutral, Urgency: model.UrgencyLow},
			category: model.IntentBilling,
			text:     "There is an unauthorized payment on my card",
			plan:     actionablePlan,
			want: model.EscalationDecision{
				ShouldEscalate: true,
				Reason:         "monetary loss (unauthorized)",
				Level:          model.EscalationTier2,
				State:          model.EscalationStatePending,
			},
		},
		{
			name:     "loss words outside billing are ignored",
			mood:     model.Mood{Sentiment: model.SentimentNeutral, Urgency: model.UrgencyLow},
			category: model.IntentOrderTracking,
			text:     "my package was lost",
			plan:     actionablePlan,
			want:     model.NoEscalation(),
		},
		{
			name:     "router stays calm",
			mood:     model.Mood{Sentiment: model.SentimentNeutral, Urgency: model.UrgencyLow},
			category: model.IntentTechnical,
			text:     "My router has no internet",
			plan:     actionablePlan,
			want:     model.NoEscalation(),
		},
		{
			name:     "frustrated without a plan",
			mood:     model.Mood{Sentiment: model.SentimentNegative, Urgency: model.UrgencyMedium},
			category: model.IntentGeneral,
			text:     "I'm frustrated",
			plan:     model.Plan{Name: "generic", Steps: []model.Step{{Action: "Gather more information"}}, Generic: true},
			want: model.EscalationDecision{
				ShouldEscalate: true,
				Reason:         "negative sentiment; no self-service plan",
				Level:          model.EscalationTier1,
				State:          model.EscalationStatePending,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, state := Decide(tt.mood, tt.category, tt.text, tt.plan)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("decision mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.want.State, state)
		})
	}
}

func escalating() model.EscalationDecision {
	d, _ := Decide(model.Mood{Sentiment: model.SentimentAngry, Urgency: model.UrgencyHigh},
		model.IntentBilling, "charged twice", actionablePlan)
	return d
}

func TestHandoffConfirm(t *testing.T) {
	h := NewHandoff(log.NewNop(), time.Minute)
	defer h.Close()
	ctx := context.Background()

	ticket, err := h.Open(ctx, "s1", escalating())
	require.NoError(t, err)
	assert.NotEmpty(t, ticket.ID)
	assert.Equal(t, time.Minute, ticket.Deadline.Sub(ticket.OpenedAt))

	again, err := h.Open(ctx, "s1", escalating())
	require.NoError(t, err)
	assert.Equal(t, ticket.ID, again.ID, "pending ticket is reused")

	status, ok := h.Status("s1")
	require.True(t, ok)
	assert.Equal(t, model.EscalationStatePending, status.State)

	out, err := h.Confirm(ctx, "s1", true)
	require.NoError(t, err)
	assert.Equal(t, model.EscalationStateConfirmed, out.State)
	assert.False(t, out.TimedOut)

	awaited, err := h.Await(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, model.EscalationStateConfirmed, awaited.State)

	_, err = h.Confirm(ctx, "s1", false)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestHandoffDecline(t *testing.T) {
	h := NewHandoff(log.NewNop(), time.Minute)
	defer h.Close()
	ctx := context.Background()

	_, err := h.Open(ctx, "s2", escalating())
	require.NoError(t, err)

	out, err := h.Confirm(ctx, "s2", false)
	require.NoError(t, err)
	assert.Equal(t, model.EscalationStateDeclined, out.State)
	assert.Equal(t, ReasonDeclined, out.Reason)
}

func TestHandoffTimeout(t *testing.T) {
	h := NewHandoff(log.NewNop(), 20*time.Millisecond)
	defer h.Close()
	ctx := context.Background()

	_, err := h.Open(ctx, "s3", escalating())
	require.NoError(t, err)

	out, err := h.Await(ctx, "s3")
	assert.ErrorIs(t, err, ErrEscalationTimeout)
	assert.Equal(t, model.EscalationStateDeclined, out.State)
	assert.Equal(t, ReasonNoAgent, out.Reason)
	assert.True(t, out.TimedOut)

	_, err = h.Confirm(ctx, "s3", true)
	assert.ErrorIs(t, err, ErrEscalationTimeout)
}

func TestHandoffAwaitHonoursContext(t *testing.T) {
	h := NewHandoff(log.NewNop(), time.Minute)
	defer h.Close()

	_, err := h.Open(context.Background(), "s4", escalating())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	out, err := h.Await(ctx, "s4")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, model.EscalationStatePending, out.State)
}

func TestHandoffErrors(t *testing.T) {
	h := NewHandoff(log.NewNop(), 0)
	assert.Equal(t, DefaultTimeout, h.Timeout())
	ctx := context.Background()

	_, err := h.Open(ctx, "s5", model.NoEscalation())
	assert.ErrorIs(t, err, ErrNotEscalating)

	_, err = h.Confirm(ctx, "unknown", true)
	assert.ErrorIs(t, err, ErrNoPendingEscalation)

	_, err = h.Await(ctx, "unknown")
	assert.ErrorIs(t, err, ErrNoPendingEscalation)

	h.Close()
	_, err = h.Open(ctx, "s5", escalating())
	assert.ErrorIs(t, err, ErrHandoffClosed)
}

func TestHandoffForgetAndClose(t *testing.T) {
	h := NewHandoff(log.NewNop(), time.Minute)
	ctx := context.Background()

	_, err := h.Open(ctx, "s6", escalating())
	require.NoError(t, err)
	h.Forget("s6")
	_, ok := h.Status("s6")
	assert.False(t, ok)

	_, err = h.Open(ctx, "s7", escalating())
	require.NoError(t, err)
	h.Close()

	out, ok := h.Status("s7")
	require.True(t, ok)
	assert.Equal(t, model.EscalationStateDeclined, out.State)
	assert.Equal(t, ReasonClosed, out.Reason)
}

func TestHandoffOpenRacingClose(t *testing.T) {
	h := NewHandoff(log.NewNop(), time.Minute)
	ctx := context.Background()

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, err := h.Open(ctx, fmt.Sprintf("race-%d", i), escalating())
			if err != nil && !errors.Is(err, ErrHandoffClosed) {
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	close(start)
	h.Close()
	wg.Wait()

	// every ticket opened before Close resolved, nothing opens after it
	for i := 0; i < 16; i++ {
		if out, ok := h.Status(fmt.Sprintf("race-%d", i)); ok {
			assert.Equal(t, model.EscalationStateDeclined, out.State)
			assert.Equal(t, ReasonClosed, out.Reason)
		}
	}
	_, err := h.Open(ctx, "late", escalating())
	assert.ErrorIs(t, err, ErrHandoffClosed)
}

func TestHandoffConcurrentConfirm(t *testing.T) {
	h := NewHandoff(log.NewNop(), time.Minute)
	defer h.Close()
	ctx := context.Background()

	_, err := h.Open(ctx, "s8", escalating())
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]model.EscalationState, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := h.Confirm(ctx, "s8", true)
			if err != nil && !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("unexpected error: %v", err)
			}
			results[i] = out.State
		}(i)
	}
	wg.Wait()

	for _, s := range results {
		assert.Equal(t, model.EscalationStateConfirmed, s)
	}
}

func TestReasonMentionsEveryTrigger(t *testing.T) {
	d, _ := Decide(model.Mood{Sentiment: model.SentimentNegative, Urgency: model.UrgencyHigh},
		model.IntentBilling, "overcharged and my card was stolen", actionablePlan)
	for _, want := range []string{ReasonNegativeSentiment, ReasonHighUrgency, "overcharged", "stolen"} {
		assert.True(t, strings.Contains(d.Reason, want), "reason %q misses %q", d.Reason, want)
	}
}
