package pipeline

import (
	"context"
	"fmt"
	"maps"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"customer-support-agent/internal/compose"
	"customer-support-agent/internal/escalation"
	"customer-support-agent/internal/model"
	"customer-support-agent/internal/sentiment"
	"customer-support-agent/internal/verify"
)

// Process runs every stage for one request and always produces a reply for a
// well-formed request. Only an *InputError is returned.
func (p *Pipeline) Process(ctx context.Context, req model.Request) (*model.PipelineContext, error) {
	if err := validate(req); err != nil {
		p.metrics.observeRequest(OutcomeRejected)
		p.l.Warnf(ctx, "%s: %v", LogPrefixProcess, err)
		return nil, err
	}

	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.ReceivedAt.IsZero() {
		req.ReceivedAt = time.Now()
	}
	req.Metadata = maps.Clone(req.Metadata)

	ctx, span := p.tracer.Start(ctx, "pipeline.Process", trace.WithAttributes(
		attribute.String("request.id", req.ID),
		attribute.String("request.channel", req.Channel()),
	))
	defer span.End()

	pc := &model.PipelineContext{Request: req}
	text := req.Trimmed()

	// Stages 1 to 4 share no data. Each goroutine writes only its own slot.
	var (
		g        errgroup.Group
		fanOut   [5]model.StageTrace
		intent   model.StageResult[model.Intent]
		category model.StageResult[model.Intent]
		mood     model.StageResult[model.Mood]
		passages model.StageResult[[]model.KnowledgeItem]
		lookup   model.StageResult[model.OrderLookup]
	)
	g.Go(func() error {
		intent, fanOut[0] = runStage(ctx, p, model.StageIntent, defaultIntent(), func(ctx context.Context) (model.StageResult[model.Intent], error) {
			return p.deps.Classifier.Classify(ctx, text)
		})
		return nil
	})
	g.Go(func() error {
		category, fanOut[1] = runStage(ctx, p, model.StageCategory, defaultCategory(), func(context.Context) (model.StageResult[model.Intent], error) {
			return p.deps.Categorizer.Categorize(text), nil
		})
		return nil
	})
	g.Go(func() error {
		mood, fanOut[2] = runStage(ctx, p, model.StageSentiment, defaultMood(), func(context.Context) (model.StageResult[model.Mood], error) {
			return sentiment.Analyze(text), nil
		})
		return nil
	})
	g.Go(func() error {
		passages, fanOut[3] = runStage(ctx, p, model.StageKnowledge, defaultKnowledge(), p.searchKnowledge(text))
		return nil
	})
	g.Go(func() error {
		lookup, fanOut[4] = runStage(ctx, p, model.StageOrder, defaultOrder(), p.lookupOrder(text))
		return nil
	})
	_ = g.Wait()

	pc.Intent, pc.Category, pc.Sentiment, pc.Knowledge, pc.Order = intent, category, mood, passages, lookup
	pc.Trace = append(pc.Trace, fanOut[:]...)

	var tr model.StageTrace

	pc.Troubleshoot, tr = runStage(ctx, p, model.StageTroubleshoot, defaultPlan(), func(context.Context) (model.StageResult[model.Plan], error) {
		return planResult(p.deps.Planner.Plan(pc.Category.Value, text)), nil
	})
	pc.Trace = append(pc.Trace, tr)

	pc.Escalation, tr = runStage(ctx, p, model.StageEscalation, defaultEscalation(), func(context.Context) (model.StageResult[model.EscalationDecision], error) {
		decision, _ := escalation.Decide(pc.Sentiment.Value, pc.Category.Value, text, pc.Troubleshoot.Value)
		return escalationResult(decision), nil
	})
	pc.Trace = append(pc.Trace, tr)

	in := compose.Input{
		Intent:     pc.Intent.Value,
		Category:   pc.Category.Value,
		Knowledge:  pc.Knowledge.Value,
		Plan:       pc.Troubleshoot.Value,
		Order:      pc.Order.Value,
		Escalation: pc.Escalation.Value,
	}
	pc.Response, tr = runStage(ctx, p, model.StageCompose, defaultResponse(), func(context.Context) (model.StageResult[string], error) {
		return compose.Run(in), nil
	})
	pc.Trace = append(pc.Trace, tr)

	response := pc.Response.Value
	pc.Verdict, tr = runStage(ctx, p, model.StageVerify, defaultVerdict(response), func(context.Context) (model.StageResult[model.Verdict], error) {
		return verify.Run(response), nil
	})
	pc.Trace = append(pc.Trace, tr)

	outcome := OutcomeOK
	if pc.Degraded() {
		outcome = OutcomeDegraded
	}
	p.metrics.observeRequest(outcome)
	span.SetAttributes(
		attribute.String("intent", string(pc.Intent.Value)),
		attribute.String("escalation.level", string(pc.Escalation.Value.Level)),
		attribute.Bool("degraded", pc.Degraded()),
	)

	p.l.Infof(ctx, "%s: request=%s intent=%s category=%s sentiment=%s escalation=%s outcome=%s",
		LogPrefixProcess, req.ID, pc.Intent.Value, pc.Category.Value, pc.Sentiment.Value.Sentiment,
		pc.Escalation.Value.Level, outcome)

	p.notify(ctx, pc)
	return pc, nil
}

func validate(req model.Request) error {
	text := req.Trimmed()
	if text == "" {
		return &InputError{Field: "text", Err: ErrEmptyMessage}
	}
	if n := utf8.RuneCountInString(text); n > MaxMessageRunes {
		return &InputError{Field: "text", Err: fmt.Errorf("%w: %d runes, limit %d", ErrMessageTooLong, n, MaxMessageRunes)}
	}
	return nil
}

func (p *Pipeline) searchKnowledge(text string) func(context.Context) (model.StageResult[[]model.KnowledgeItem], error) {
	return func(ctx context.Context) (model.StageResult[[]model.KnowledgeItem], error) {
		items, err := p.deps.Knowledge.Search(ctx, text, p.cfg.TopK)
		if err != nil {
			return model.StageResult[[]model.KnowledgeItem]{}, err
		}
		if items == nil {
			items = []model.KnowledgeItem{}
		}
		var top float64
		if len(items) > 0 {
			top = items[0].Score
		}
		return model.NewStageResult(model.StageKnowledge, items, top, fmt.Sprintf("%d passages", len(items))), nil
	}
}

func (p *Pipeline) lookupOrder(text string) func(context.Context) (model.StageResult[model.OrderLookup], error) {
	return func(ctx context.Context) (model.StageResult[model.OrderLookup], error) {
		lookup, err := p.deps.Orders.Lookup(ctx, text)
		if err != nil {
			return model.StageResult[model.OrderLookup]{}, err
		}
		switch {
		case lookup.Found():
			return model.NewStageResult(model.StageOrder, lookup, ConfidenceDecision, "order "+lookup.Identifier+" found"), nil
		case lookup.NotFound:
			return model.NewStageResult(model.StageOrder, lookup, ConfidenceDecision, "order "+lookup.Identifier+" not found"), nil
		default:
			return model.NewStageResult(model.StageOrder, lookup, ConfidenceDefault, "no order identifier"), nil
		}
	}
}

func planResult(plan model.Plan) model.StageResult[model.Plan] {
	if plan.Actionable() {
		return model.NewStageResult(model.StageTroubleshoot, plan, ConfidencePlan, "plan "+plan.Name)
	}
	return model.NewStageResult(model.StageTroubleshoot, plan, ConfidenceGenericPlan, "generic plan")
}

func escalationResult(d model.EscalationDecision) model.StageResult[model.EscalationDecision] {
	explain := "no escalation triggers"
	if d.ShouldEscalate {
		explain = string(d.Level) + ": " + d.Reason
	}
	return model.NewStageResult(model.StageEscalation, d, ConfidenceDecision, explain)
}
