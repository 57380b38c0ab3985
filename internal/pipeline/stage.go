package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"customer-support-agent/internal/model"
)

type stageOutcome[T any] struct {
	res model.StageResult[T]
	err error
}

// runStage calls fn under the stage timeout. A failure, timeout or panic yields
// fallback marked Degraded; a result arriving after the timeout is discarded.
func runStage[T any](
	ctx context.Context,
	p *Pipeline,
	stage model.StageName,
	fallback model.StageResult[T],
	fn func(context.Context) (model.StageResult[T], error),
) (model.StageResult[T], model.StageTrace) {
	ctx, span := p.tracer.Start(ctx, "pipeline.stage."+string(stage),
		trace.WithAttributes(attribute.String("stage", string(stage))))
	defer span.End()

	stageCtx, cancel := context.WithTimeout(ctx, p.cfg.StageTimeout)
	defer cancel()

	start := time.Now()
	done := make(chan stageOutcome[T], 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- stageOutcome[T]{err: fmt.Errorf("%w: %v", ErrStagePanic, r)}
			}
		}()
		res, err := fn(stageCtx)
		done <- stageOutcome[T]{res: res, err: err}
	}()

	var out stageOutcome[T]
	select {
	case out = <-done:
	case <-stageCtx.Done():
		out.err = stageCtx.Err()
	}
	elapsed := time.Since(start)

	if out.err != nil {
		out.err = stageError(ctx, stageCtx, stage, p.cfg.StageTimeout, out.err)
	}
	p.metrics.observeStage(stage, elapsed, out.err)

	tr := model.StageTrace{Stage: stage, Duration: elapsed}
	if out.err != nil {
		p.l.Warnf(ctx, "%s: stage=%s degraded: %v", LogPrefixRunStage, stage, out.err)
		span.RecordError(out.err)
		span.SetStatus(codes.Error, "stage degraded")

		res := fallback
		res.Stage = stage
		res.Degraded = true
		res.Confidence = model.ClampUnit(res.Confidence)
		res.Explain = fmt.Sprintf("%s (default after failure: %v)", fallback.Explain, out.err)

		tr.Error = out.err.Error()
		tr.Degraded = true
		return res, tr
	}

	res := out.res
	res.Stage = stage
	res.Confidence = model.ClampUnit(res.Confidence)
	span.SetAttributes(attribute.Float64("confidence", res.Confidence))
	return res, tr
}

// stageError types a raw stage failure. Caller cancellation is reported as is.
func stageError(parent, stageCtx context.Context, stage model.StageName, timeout time.Duration, err error) error {
	if parent.Err() != nil {
		return parent.Err()
	}
	if errors.Is(stageCtx.Err(), context.DeadlineExceeded) {
		return &StageTimeoutError{Stage: stage, Timeout: timeout}
	}
	var ext *ExternalServiceError
	if errors.As(err, &ext) {
		return err
	}
	return &ExternalServiceError{Stage: stage, Err: err}
}
