package model

type SafetyFlag string

const (
	FlagBlockedContent SafetyFlag = "blocked_content"
	FlagPIIMasked      SafetyFlag = "pii_masked"
)

// Verdict is the verifier output. Full keeps the unmasked response for internal use only.
type Verdict struct {
	Full        string       `json:"-"`
	Masked      string       `json:"masked"`
	Summary     string       `json:"summary"`
	SafetyFlags []SafetyFlag `json:"safety_flags"`
}
