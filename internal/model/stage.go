package model

import "time"

// StageName identifies a pipeline stage.
type StageName string

const (
	StageIntent       StageName = "intent"
	StageCategory     StageName = "category"
	StageSentiment    StageName = "sentiment"
	StageKnowledge    StageName = "knowledge"
	StageOrder        StageName = "order"
	StageTroubleshoot StageName = "troubleshoot"
	StageEscalation   StageName = "escalation"
	StageCompose      StageName = "compose"
	StageVerify       StageName = "verify"
)

// StageResult is the typed output of one stage.
type StageResult[T any] struct {
	Stage      StageName `json:"stage"`
	Value      T         `json:"value"`
	Confidence float64   `json:"confidence"`
	Explain    string    `json:"explain"`
	Degraded   bool      `json:"degraded"`
}

// NewStageResult clamps confidence into [0,1].
func NewStageResult[T any](stage StageName, value T, confidence float64, explain string) StageResult[T] {
	return StageResult[T]{
		Stage:      stage,
		Value:      value,
		Confidence: ClampUnit(confidence),
		Explain:    explain,
	}
}

// ClampUnit clamps f into [0,1].
func ClampUnit(f float64) float64 {
	switch {
	case f < 0 || f != f:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// StageTrace records how one stage ran.
type StageTrace struct {
	Stage    StageName     `json:"stage"`
	Duration time.Duration `json:"duration_ns"`
	Error    string        `json:"error,omitempty"`
	Degraded bool          `json:"degraded"`
}
