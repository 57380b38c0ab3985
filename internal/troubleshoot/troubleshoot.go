// Package troubleshoot picks a remediation plan for a message category.
package troubleshoot

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"customer-support-agent/internal/lexicon"
	"customer-support-agent/internal/model"
)

// Plan names, also the keys of the playbook file.
const (
	PlanRouter   = "router"
	PlanApp      = "app"
	PlanBilling  = "billing"
	PlanReturns  = "returns"
	PlanDelivery = "delivery"
	PlanGeneric  = "generic"
)

var (
	routerTerms = []string{"router", "modem", "internet", "wifi", "wi-fi", "connection", "network", "offline"}
	appTerms    = []string{"app", "crash", "crashes", "crashing", "login", "log in", "password", "sign in"}
)

//go:embed playbooks.yaml
var defaultPlaybooks []byte

// Troubleshooter maps (category, text) to a plan. Plans are immutable after load.
type Troubleshooter struct {
	plans map[string][]model.Step
}

// New loads the built-in playbooks.
func New() (*Troubleshooter, error) {
	return Parse(defaultPlaybooks)
}

// Parse loads playbooks from YAML. The generic plan is required.
func Parse(data []byte) (*Troubleshooter, error) {
	plans := make(map[string][]model.Step)
	if err := yaml.Unmarshal(data, &plans); err != nil {
		return nil, fmt.Errorf("parse playbooks: %w", err)
	}
	if len(plans[PlanGeneric]) == 0 {
		return nil, fmt.Errorf("parse playbooks: %q plan is required", PlanGeneric)
	}
	return &Troubleshooter{plans: plans}, nil
}

// Plan never returns an empty plan: categories without a playbook get the
// generic "gather more information" step.
func (t *Troubleshooter) Plan(category model.Intent, text string) model.Plan {
	name := selectPlan(category, lexicon.Normalize(text))
	steps, ok := t.plans[name]
	if !ok || len(steps) == 0 {
		name = PlanGeneric
		steps = t.plans[PlanGeneric]
	}

	out := make([]model.Step, len(steps))
	copy(out, steps)
	return model.Plan{
		Name:     name,
		Category: category,
		Steps:    out,
		Generic:  name == PlanGeneric,
	}
}

func selectPlan(category model.Intent, text lexicon.Text) string {
	switch category {
	case model.IntentTechnical:
		if len(text.Matches(routerTerms)) > 0 {
			return PlanRouter
		}
		if len(text.Matches(appTerms)) > 0 {
			return PlanApp
		}
	case model.IntentBilling:
		return PlanBilling
	case model.IntentReturns:
		return PlanReturns
	case model.IntentOrderTracking:
		return PlanDelivery
	}
	return PlanGeneric
}
