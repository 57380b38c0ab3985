package classifier

import (
	"context"

	"customer-support-agent/internal/model"
)

// Classifier maps a message onto the closed intent enumeration.
// Classify is total: text nothing matches is labelled GENERAL.
type Classifier interface {
	Classify(ctx context.Context, text string) (model.StageResult[model.Intent], error)
}
