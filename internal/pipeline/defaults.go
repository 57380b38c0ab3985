package pipeline

import (
	"customer-support-agent/internal/compose"
	"customer-support-agent/internal/model"
	"customer-support-agent/internal/verify"
)

// Defaults substituted for a failed stage. Each one is a valid, neutral value.

func defaultIntent() model.StageResult[model.Intent] {
	return model.NewStageResult(model.StageIntent, model.IntentGeneral, ConfidenceDefault, "default intent GENERAL")
}

func defaultCategory() model.StageResult[model.Intent] {
	return model.NewStageResult(model.StageCategory, model.IntentGeneral, ConfidenceDefault, "default category GENERAL")
}

func defaultMood() model.StageResult[model.Mood] {
	mood := model.Mood{Sentiment: model.SentimentNeutral, Urgency: model.UrgencyLow}
	return model.NewStageResult(model.StageSentiment, mood, ConfidenceDefault, "default neutral/low")
}

func defaultKnowledge() model.StageResult[[]model.KnowledgeItem] {
	return model.NewStageResult(model.StageKnowledge, []model.KnowledgeItem{}, ConfidenceDefault, "default no passages")
}

func defaultOrder() model.StageResult[model.OrderLookup] {
	return model.NewStageResult(model.StageOrder, model.OrderLookup{}, ConfidenceDefault, "default no order")
}

func defaultPlan() model.StageResult[model.Plan] {
	plan := model.Plan{
		Name:     "generic",
		Category: model.IntentGeneral,
		Steps:    []model.Step{{Action: "Gather more information about the issue"}},
		Generic:  true,
	}
	return model.NewStageResult(model.StageTroubleshoot, plan, ConfidenceDefault, "default generic plan")
}

func defaultEscalation() model.StageResult[model.EscalationDecision] {
	return model.NewStageResult(model.StageEscalation, model.NoEscalation(), ConfidenceDefault, "default no escalation")
}

func defaultResponse() model.StageResult[string] {
	return model.NewStageResult(model.StageCompose, compose.Compose(compose.Input{}), ConfidenceDefault, "default clarification")
}

// defaultVerdict never shows the unverified response.
func defaultVerdict(response string) model.StageResult[model.Verdict] {
	safe := compose.Compose(compose.Input{})
	v := model.Verdict{
		Full:        response,
		Masked:      safe,
		Summary:     verify.Summarize(safe),
		SafetyFlags: []model.SafetyFlag{},
	}
	return model.NewStageResult(model.StageVerify, v, ConfidenceDefault, "default withheld response")
}
