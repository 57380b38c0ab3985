package classifier

import (
	"context"
	"fmt"
	"strings"

	"customer-support-agent/internal/lexicon"
	"customer-support-agent/internal/model"
)

// Classify implements Classifier. The context is unused; the rule table never blocks.
func (c *RuleClassifier) Classify(_ context.Context, text string) (model.StageResult[model.Intent], error) {
	res := c.Categorize(text)
	res.Stage = model.StageIntent
	return res, nil
}

// Categorize runs the rule table and reports which tags competed.
func (c *RuleClassifier) Categorize(text string) model.StageResult[model.Intent] {
	norm := lexicon.Normalize(text)

	var winner *Rule
	var hits []string
	var tags []string
	for i := range c.rules {
		matched := norm.Matches(c.rules[i].Keywords)
		if len(matched) == 0 {
			continue
		}
		tags = append(tags, c.rules[i].Tag)
		if winner == nil {
			winner = &c.rules[i]
			hits = matched
		}
	}

	if winner == nil {
		return model.NewStageResult(model.StageCategory, model.IntentGeneral, ConfidenceGeneral, "no rule matched")
	}

	explain := fmt.Sprintf("rule %s matched %s", winner.Tag, strings.Join(hits, ", "))
	if len(tags) > 1 {
		explain += fmt.Sprintf(" (precedence over %s)", strings.Join(tags[1:], ", "))
	}
	return model.NewStageResult(model.StageCategory, winner.Intent, ConfidenceMatch, explain)
}
