package escalation

import (
	"strings"

	"customer-support-agent/internal/lexicon"
	"customer-support-agent/internal/model"
)

// Reasons joined into EscalationDecision.Reason, in this order.
const (
	ReasonNegativeSentiment = "negative sentiment"
	ReasonHighUrgency       = "high urgency"
	ReasonMonetaryLoss      = "monetary loss"
	ReasonNoSelfService     = "no self-service plan"

	reasonSeparator = "; "
)

// MonetaryLossTerms only count for BILLING messages.
var MonetaryLossTerms = []string{
	"charged twice", "double charge", "double charged", "overcharged", "unauthorized", "unauthorised",
	"fraud", "fraudulent", "lost", "stolen",
}

// Decide is pure: the same inputs always give the same decision. The returned state
// is PENDING when escalating and NONE otherwise.
func Decide(mood model.Mood, category model.Intent, text string, plan model.Plan) (model.EscalationDecision, model.EscalationState) {
	var reasons []string

	negative := mood.IsNegative()
	if negative {
		reasons = append(reasons, ReasonNegativeSentiment)
	}
	if mood.Urgency == model.UrgencyHigh {
		reasons = append(reasons, ReasonHighUrgency)
	}

	var lossTerms []string
	if category == model.IntentBilling {
		lossTerms = lexicon.Normalize(text).Matches(MonetaryLossTerms)
		if len(lossTerms) > 0 {
			reasons = append(reasons, ReasonMonetaryLoss+" ("+strings.Join(lossTerms, ", ")+")")
		}
	}

	if len(reasons) == 0 {
		return model.NoEscalation(), model.EscalationStateNone
	}

	// plan only adds context once something else triggered
	if !plan.Actionable() {
		reasons = append(reasons, ReasonNoSelfService)
	}

	state, _ := Transition(model.EscalationStateNone, EventEscalate)

	level := model.EscalationTier1
	if mood.Sentiment == model.SentimentAngry || len(lossTerms) > 0 {
		level = model.EscalationTier2
	}

	return model.EscalationDecision{
		ShouldEscalate: true,
		Reason:         strings.Join(reasons, reasonSeparator),
		Level:          level,
		State:          state,
	}, state
}
