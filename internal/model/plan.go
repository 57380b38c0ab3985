package model

// Step is one remediation action the customer is asked to take.
type Step struct {
	Action               string `json:"action" yaml:"action"`
	ExpectedOutcome      string `json:"expected_outcome" yaml:"expected_outcome"`
	ConfirmationQuestion string `json:"confirmation_question" yaml:"confirmation_question"`
}

// Plan is an ordered troubleshooting sequence. Generic marks the "gather more information" fallback.
type Plan struct {
	Name     string `json:"name"`
	Category Intent `json:"category"`
	Steps    []Step `json:"steps"`
	Generic  bool   `json:"generic"`
}

// Actionable reports whether the plan has concrete steps.
func (p Plan) Actionable() bool {
	return len(p.Steps) > 0 && !p.Generic
}
