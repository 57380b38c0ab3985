package compose

import "customer-support-agent/internal/model"

// Input is everything the composer reads. It is a snapshot taken after stages 1 to 6.
type Input struct {
	Intent     model.Intent
	Category   model.Intent
	Knowledge  []model.KnowledgeItem
	Plan       model.Plan
	Order      model.OrderLookup
	Escalation model.EscalationDecision
}

// Template names the branch of the decision tree that produced a reply.
type Template string

const (
	TemplateEscalation    Template = "escalation"
	TemplateOrderStatus   Template = "order_status"
	TemplateOrderNotFound Template = "order_not_found"
	TemplateTroubleshoot  Template = "troubleshooting"
	TemplateFAQ           Template = "faq"
	TemplateClarify       Template = "clarification"
)
