package pipeline

import (
	"context"
	"time"

	"customer-support-agent/internal/model"
)

// IntentClassifier runs the intent stage.
type IntentClassifier interface {
	Classify(ctx context.Context, text string) (model.StageResult[model.Intent], error)
}

// Categorizer runs the category stage with the deterministic rule table.
type Categorizer interface {
	Categorize(text string) model.StageResult[model.Intent]
}

// KnowledgeSearcher ranks corpus passages for a query.
type KnowledgeSearcher interface {
	Search(ctx context.Context, query string, topK int) ([]model.KnowledgeItem, error)
}

// OrderLooker extracts an order identifier from text and fetches the record.
type OrderLooker interface {
	Lookup(ctx context.Context, text string) (model.OrderLookup, error)
}

// Planner picks a troubleshooting plan.
type Planner interface {
	Plan(category model.Intent, text string) model.Plan
}

// Observer is notified after a request completes. Observers run on their own
// goroutine and must treat the context as read-only.
type Observer interface {
	Observe(ctx context.Context, pc *model.PipelineContext)
}

// Deps are the stage collaborators. All of them are required.
type Deps struct {
	Classifier  IntentClassifier
	Categorizer Categorizer
	Knowledge   KnowledgeSearcher
	Orders      OrderLooker
	Planner     Planner
}

// Config tunes the orchestrator. Zero values take the defaults.
type Config struct {
	StageTimeout time.Duration
	TopK         int
}
