package pipeline

import "time"

// Log prefixes
const (
	LogPrefixProcess  = "internal.pipeline.Process"
	LogPrefixRunStage = "internal.pipeline.runStage"
	LogPrefixNotify   = "internal.pipeline.notify"
)

const (
	// DefaultStageTimeout bounds every stage call.
	DefaultStageTimeout = 30 * time.Second
	DefaultTopK         = 3
	MaxMessageRunes     = 4000

	tracerName = "customer-support-agent/internal/pipeline"
)

// Confidence reported by stages that cannot estimate one.
const (
	ConfidenceDecision    = 1.0
	ConfidencePlan        = 0.9
	ConfidenceGenericPlan = 0.5
	ConfidenceDefault     = 0.0
)

// Failure kinds used as the metrics label.
const (
	FailureTimeout   = "timeout"
	FailureCancelled = "cancelled"
	FailureExternal  = "external"
	FailurePanic     = "panic"
)
