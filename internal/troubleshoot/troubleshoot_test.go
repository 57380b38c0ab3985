package troubleshoot

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-support-agent/internal/model"
)

func TestPlan(t *testing.T) {
	ts, err := New()
	require.NoError(t, err)

	tests := []struct {
		name     string
		category model.Intent
		text     string
		wantName string
	}{
		{"router", model.IntentTechnical, "My router has no internet", PlanRouter},
		{"wifi", model.IntentTechnical, "wi-fi keeps dropping", PlanRouter},
		{"app", model.IntentTechnical, "the app crashes on login", PlanApp},
		{"technical without playbook", model.IntentTechnical, "my screen flickers", PlanGeneric},
		{"billing", model.IntentBilling, "charged twice", PlanBilling},
		{"returns", model.IntentReturns, "refund please", PlanReturns},
		{"delivery", model.IntentOrderTracking, "where is my parcel", PlanDelivery},
		{"faq", model.IntentFAQ, "what are your hours", PlanGeneric},
		{"general", model.IntentGeneral, "hello", PlanGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := ts.Plan(tt.category, tt.text)
			assert.Equal(t, tt.wantName, plan.Name)
			assert.NotEmpty(t, plan.Steps)
			assert.Equal(t, tt.wantName == PlanGeneric, plan.Generic)
			assert.Equal(t, tt.category, plan.Category)
		})
	}
}

func TestRouterPlanStartsWithRouter(t *testing.T) {
	ts, err := New()
	require.NoError(t, err)

	plan := ts.Plan(model.IntentTechnical, "My router has no internet")
	assert.Contains(t, strings.ToLower(plan.Steps[0].Action), "router")
	assert.True(t, plan.Actionable())
}

func TestPlanIsRestartable(t *testing.T) {
	ts, err := New()
	require.NoError(t, err)

	first := ts.Plan(model.IntentBilling, "double charge")
	first.Steps[0].Action = "mutated by caller"

	second := ts.Plan(model.IntentBilling, "double charge")
	third := ts.Plan(model.IntentBilling, "double charge")
	if diff := cmp.Diff(second, third); diff != "" {
		t.Errorf("plans differ (-second +third):\n%s", diff)
	}
	assert.NotEqual(t, "mutated by caller", second.Steps[0].Action)
}

func TestParseRequiresGeneric(t *testing.T) {
	_, err := Parse([]byte("router:\n  - action: reboot\n"))
	assert.ErrorContains(t, err, "generic")

	_, err = Parse([]byte("{not yaml"))
	assert.Error(t, err)

	ts, err := Parse([]byte("generic:\n  - action: tell me more\n"))
	require.NoError(t, err)
	plan := ts.Plan(model.IntentTechnical, "router down")
	assert.Equal(t, PlanGeneric, plan.Name, "missing playbooks fall back to generic")
}
