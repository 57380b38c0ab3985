package classifier

import "customer-support-agent/internal/model"

// Rule maps keyword phrases to an intent. Lower Priority wins when several rules match.
type Rule struct {
	Tag      string
	Keywords []string
	Intent   model.Intent
	Priority int
}

// llmOutput is the structured answer expected from the classification service.
type llmOutput struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"` // 0-100
	Reasoning  string  `json:"reasoning"`
}
