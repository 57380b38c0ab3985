package escalation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"customer-support-agent/internal/model"
	"customer-support-agent/pkg/log"
)

const (
	DefaultTimeout = 3 * time.Minute

	ReasonNoAgent     = "no agent available"
	ReasonAgentJoined = "agent confirmed"
	ReasonDeclined    = "escalation declined"
	ReasonClosed      = "handoff closed"

	LogPrefixHandoff = "internal.escalation.Handoff"
)

// Ticket is an open request for a human agent.
type Ticket struct {
	ID        string                   `json:"id"`
	SessionID string                   `json:"session_id"`
	Decision  model.EscalationDecision `json:"decision"`
	OpenedAt  time.Time                `json:"opened_at"`
	Deadline  time.Time                `json:"deadline"`
}

// Outcome is the resolved (or still pending) state of a ticket.
type Outcome struct {
	Ticket   Ticket                `json:"ticket"`
	State    model.EscalationState `json:"state"`
	Reason   string                `json:"reason,omitempty"`
	TimedOut bool                  `json:"timed_out"`
}

type pending struct {
	ticket  Ticket
	confirm chan bool
	done    chan struct{}

	mu      sync.Mutex
	outcome Outcome
}

func (p *pending) current() Outcome {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.outcome
}

// Handoff carries out escalations. Each ticket waits on its own goroutine for a
// confirmation and resolves to DECLINED when the timeout passes first.
type Handoff struct {
	l       log.Logger
	timeout time.Duration

	mu      sync.Mutex
	tickets map[string]*pending

	closed    chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewHandoff creates a manager. A non-positive timeout means DefaultTimeout.
func NewHandoff(l log.Logger, timeout time.Duration) *Handoff {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Handoff{
		l:       l,
		timeout: timeout,
		tickets: make(map[string]*pending),
		closed:  make(chan struct{}),
	}
}

// Timeout returns the per-ticket confirmation window.
func (h *Handoff) Timeout() time.Duration {
	return h.timeout
}

// Open starts waiting for an agent. Opening again while a ticket for the session is
// still pending returns that ticket.
func (h *Handoff) Open(ctx context.Context, sessionID string, decision model.EscalationDecision) (Ticket, error) {
	if !decision.ShouldEscalate {
		return Ticket{}, ErrNotEscalating
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	// checked under h.mu so no watcher is added once Close has started waiting
	select {
	case <-h.closed:
		return Ticket{}, ErrHandoffClosed
	default:
	}

	if p, ok := h.tickets[sessionID]; ok && p.current().State == model.EscalationStatePending {
		return p.ticket, nil
	}

	state, err := Transition(model.EscalationStateNone, EventEscalate)
	if err != nil {
		return Ticket{}, err
	}

	now := time.Now()
	p := &pending{
		ticket: Ticket{
			ID:        uuid.NewString(),
			SessionID: sessionID,
			Decision:  decision,
			OpenedAt:  now,
			Deadline:  now.Add(h.timeout),
		},
		confirm: make(chan bool, 1),
		done:    make(chan struct{}),
	}
	p.outcome = Outcome{Ticket: p.ticket, State: state, Reason: decision.Reason}
	h.tickets[sessionID] = p

	h.wg.Add(1)
	go h.watch(p)

	h.l.Infof(ctx, "%s.Open: session=%s ticket=%s level=%s reason=%q",
		LogPrefixHandoff, sessionID, p.ticket.ID, decision.Level, decision.Reason)
	return p.ticket, nil
}

func (h *Handoff) watch(p *pending) {
	defer h.wg.Done()

	timer := time.NewTimer(h.timeout)
	defer timer.Stop()

	var event Event
	var reason string
	select {
	case ok := <-p.confirm:
		event, reason = EventDecline, ReasonDeclined
		if ok {
			event, reason = EventConfirm, ReasonAgentJoined
		}
	case <-timer.C:
		event, reason = EventTimeout, ReasonNoAgent
	case <-h.closed:
		event, reason = EventTimeout, ReasonClosed
	}

	p.mu.Lock()
	next, err := Transition(p.outcome.State, event)
	if err == nil {
		p.outcome.State = next
		p.outcome.Reason = reason
		p.outcome.TimedOut = event == EventTimeout
	}
	p.mu.Unlock()
	close(p.done)

	ctx := context.Background()
	if event == EventTimeout {
		h.l.Warnf(ctx, "%s.watch: session=%s ticket=%s resolved %s: %s",
			LogPrefixHandoff, p.ticket.SessionID, p.ticket.ID, next, reason)
		return
	}
	h.l.Infof(ctx, "%s.watch: session=%s ticket=%s resolved %s",
		LogPrefixHandoff, p.ticket.SessionID, p.ticket.ID, next)
}

// Confirm delivers the human decision and returns the resolved outcome. A ticket that
// already timed out returns ErrEscalationTimeout; one resolved the other way returns
// ErrInvalidTransition.
func (h *Handoff) Confirm(ctx context.Context, sessionID string, confirmed bool) (Outcome, error) {
	p, ok := h.get(sessionID)
	if !ok {
		return Outcome{}, ErrNoPendingEscalation
	}

	select {
	case p.confirm <- confirmed:
	default:
		// a confirmation is already queued
	}

	select {
	case <-p.done:
	case <-ctx.Done():
		return p.current(), ctx.Err()
	}

	out := p.current()
	switch {
	case out.TimedOut:
		return out, ErrEscalationTimeout
	case confirmed != (out.State == model.EscalationStateConfirmed):
		return out, ErrInvalidTransition
	}
	return out, nil
}

// Await blocks until the ticket resolves or ctx ends. A timed-out ticket returns
// its DECLINED outcome together with ErrEscalationTimeout.
func (h *Handoff) Await(ctx context.Context, sessionID string) (Outcome, error) {
	p, ok := h.get(sessionID)
	if !ok {
		return Outcome{}, ErrNoPendingEscalation
	}
	select {
	case <-p.done:
	case <-ctx.Done():
		return p.current(), ctx.Err()
	}
	out := p.current()
	if out.TimedOut {
		return out, ErrEscalationTimeout
	}
	return out, nil
}

// Status returns the latest outcome for a session.
func (h *Handoff) Status(sessionID string) (Outcome, bool) {
	p, ok := h.get(sessionID)
	if !ok {
		return Outcome{}, false
	}
	return p.current(), true
}

// Forget drops the session's ticket. A pending ticket is declined first.
func (h *Handoff) Forget(sessionID string) {
	p, ok := h.get(sessionID)
	if !ok {
		return
	}
	select {
	case p.confirm <- false:
	default:
	}
	<-p.done

	h.mu.Lock()
	if h.tickets[sessionID] == p {
		delete(h.tickets, sessionID)
	}
	h.mu.Unlock()
}

// Close resolves every pending ticket and waits for the watchers to exit.
func (h *Handoff) Close() {
	h.mu.Lock()
	h.closeOnce.Do(func() { close(h.closed) })
	h.mu.Unlock()
	h.wg.Wait()
}

func (h *Handoff) get(sessionID string) (*pending, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	p, ok := h.tickets[sessionID]
	return p, ok
}
