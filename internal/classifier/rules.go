package classifier

import (
	"cmp"
	"slices"

	"customer-support-agent/internal/model"
)

// DefaultRules is the ordered rule table. Precedence:
// RETURNS > BILLING > TECHNICAL > ORDER_TRACKING > PRODUCT_INFO > FAQ > GENERAL.
var DefaultRules = []Rule{
	{
		Tag:      "returns",
		Intent:   model.IntentReturns,
		Priority: 1,
		Keywords: []string{
			"refund", "refunds", "refunded", "return", "returns", "returning", "send back", "send it back",
			"exchange", "money back", "rma",
		},
	},
	{
		Tag:      "billing",
		Intent:   model.IntentBilling,
		Priority: 2,
		Keywords: []string{
			"charge", "charged", "charges", "charging", "billing", "bill", "billed", "invoice", "payment",
			"paid", "pay", "overcharged", "credit card", "transaction", "subscription", "fee",
		},
	},
	{
		Tag:      "technical",
		Intent:   model.IntentTechnical,
		Priority: 3,
		Keywords: []string{
			"router", "modem", "internet", "wifi", "wi-fi", "connection", "connect", "network", "not working",
			"error", "crash", "crashes", "crashing", "login", "log in", "password", "app", "bug", "broken",
			"reset", "install", "setup", "firmware",
		},
	},
	{
		Tag:      "shipping",
		Intent:   model.IntentOrderTracking,
		Priority: 4,
		Keywords: []string{
			"order", "orders", "track", "tracking", "shipped", "shipping", "shipment", "delivery", "delivered",
			"package", "parcel", "arrive", "arrived", "courier", "where is my",
		},
	},
	{
		Tag:      "product",
		Intent:   model.IntentProductInfo,
		Priority: 5,
		Keywords: []string{
			"product", "products", "price", "cost", "stock", "in stock", "available", "availability", "specs",
			"specifications", "warranty", "features", "compatible", "size", "color", "model",
		},
	},
	{
		Tag:      "faq",
		Intent:   model.IntentFAQ,
		Priority: 6,
		Keywords: []string{
			"how do i", "how to", "how can i", "policy", "policies", "hours", "open", "faq", "contact",
			"account", "membership",
		},
	},
}

// RuleClassifier labels text with the first matching rule by priority.
// It is deterministic and never fails.
type RuleClassifier struct {
	rules []Rule
}

var _ Classifier = (*RuleClassifier)(nil)

// NewRules creates a rule classifier. A nil table means DefaultRules.
func NewRules(rules []Rule) *RuleClassifier {
	if rules == nil {
		rules = DefaultRules
	}
	return &RuleClassifier{rules: sortedByPriority(rules)}
}

// sortedByPriority keeps equal priorities in table order and leaves rules untouched.
func sortedByPriority(rules []Rule) []Rule {
	out := slices.Clone(rules)
	slices.SortStableFunc(out, func(a, b Rule) int {
		return cmp.Compare(a.Priority, b.Priority)
	})
	return out
}
