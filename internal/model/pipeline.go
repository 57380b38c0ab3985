package model

// PipelineContext accumulates every stage result for one request.
// Only the pipeline orchestrator creates or writes it.
type PipelineContext struct {
	Request Request

	Intent       StageResult[Intent]
	Category     StageResult[Intent]
	Sentiment    StageResult[Mood]
	Knowledge    StageResult[[]KnowledgeItem]
	Order        StageResult[OrderLookup]
	Troubleshoot StageResult[Plan]
	Escalation   StageResult[EscalationDecision]
	Response     StageResult[string]
	Verdict      StageResult[Verdict]

	Trace []StageTrace
}

// Reply is the text shown to the customer.
func (p *PipelineContext) Reply() string {
	return p.Verdict.Value.Masked
}

// Degraded reports whether any stage fell back to its default.
func (p *PipelineContext) Degraded() bool {
	for _, t := range p.Trace {
		if t.Degraded {
			return true
		}
	}
	return false
}
