// Package compose turns stage outputs into the single reply shown to the customer.
package compose

import (
	"fmt"
	"strings"

	"customer-support-agent/internal/model"
)

const (
	// NotFoundNotice is always part of the clarification for an unknown order.
	NotFoundNotice = "I couldn't find that order"

	escalationConfirmHint = "Reply \"yes\" to be connected or \"no\" to continue with automated assistance."
	clarifyText           = "Thanks for reaching out. Could you tell me a bit more about the issue so I can help?"
	orderIDExample        = "ORD12345"

	confidenceTemplate = 0.9
	confidenceClarify  = 0.5
)

// Select walks the decision tree. Exactly one template applies to any input.
func Select(in Input) Template {
	switch {
	case in.Escalation.Level != "" && in.Escalation.Level != model.EscalationNone:
		return TemplateEscalation
	case in.Order.Found():
		return TemplateOrderStatus
	case in.Order.NotFound:
		return TemplateOrderNotFound
	case in.Plan.Actionable():
		return TemplateTroubleshoot
	case len(in.Knowledge) > 0:
		return TemplateFAQ
	default:
		return TemplateClarify
	}
}

// Compose renders the selected template. Identical input gives identical output.
func Compose(in Input) string {
	switch Select(in) {
	case TemplateEscalation:
		return escalationNotice(in.Escalation, in.Category)
	case TemplateOrderStatus:
		return orderStatus(*in.Order.Record)
	case TemplateOrderNotFound:
		return orderNotFound(in.Order.Identifier)
	case TemplateTroubleshoot:
		return troubleshooting(in.Plan)
	case TemplateFAQ:
		return faq(topItem(in.Knowledge))
	default:
		return clarifyText
	}
}

// Run wraps Compose as a compose-stage result.
func Run(in Input) model.StageResult[string] {
	tpl := Select(in)
	confidence := confidenceTemplate
	if tpl == TemplateClarify || tpl == TemplateOrderNotFound {
		confidence = confidenceClarify
	}
	return model.NewStageResult(model.StageCompose, Compose(in), confidence, "template "+string(tpl))
}

func escalationNotice(d model.EscalationDecision, category model.Intent) string {
	who := "a support agent"
	if d.Level == model.EscalationTier2 {
		who = "a senior support specialist"
	}
	if category == model.IntentBilling {
		who += " from our billing team"
	}

	var sb strings.Builder
	sb.WriteString("I'm sorry for the trouble. ")
	sb.WriteString(fmt.Sprintf("I'd like to bring in %s to help with this", who))
	if d.Reason != "" {
		sb.WriteString(fmt.Sprintf(" (%s)", d.Reason))
	}
	sb.WriteString(". ")
	sb.WriteString(escalationConfirmHint)
	return sb.String()
}

func orderStatus(o model.OrderRecord) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Your order %s is currently %s.", o.OrderID, o.Status))
	if o.TrackingNumber != "" {
		sb.WriteString(fmt.Sprintf(" Tracking number: %s.", o.TrackingNumber))
	}
	if o.LastScanLocation != "" {
		sb.WriteString(fmt.Sprintf(" Last scanned at %s.", o.LastScanLocation))
	}
	if o.EstimatedDelivery != "" {
		sb.WriteString(fmt.Sprintf(" Estimated delivery: %s.", o.EstimatedDelivery))
	}
	return sb.String()
}

func orderNotFound(id string) string {
	notice := NotFoundNotice
	if id != "" {
		notice += " " + id
	}
	return fmt.Sprintf("%s. Could you double-check the order number? It usually looks like %s.", notice, orderIDExample)
}

func troubleshooting(p model.Plan) string {
	var sb strings.Builder
	sb.WriteString("Let's try to fix this together:\n")
	for i, s := range p.Steps {
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, s.Action))
		if s.ExpectedOutcome != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", s.ExpectedOutcome))
		}
		sb.WriteString("\n")
	}
	if q := p.Steps[0].ConfirmationQuestion; q != "" {
		sb.WriteString(q)
	} else {
		sb.WriteString("Did that help?")
	}
	return sb.String()
}

func faq(item model.KnowledgeItem) string {
	if item.Title == "" {
		return item.Passage
	}
	return fmt.Sprintf("%s: %s", item.Title, item.Passage)
}

// topItem returns the highest scored item, the earliest one on ties.
func topItem(items []model.KnowledgeItem) model.KnowledgeItem {
	best := items[0]
	for _, it := range items[1:] {
		if it.Score > best.Score {
			best = it
		}
	}
	return best
}
