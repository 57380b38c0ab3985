package model

// Intent is the closed set of labels the classifier may produce.
type Intent string

const (
	IntentOrderTracking Intent = "ORDER_TRACKING"
	IntentReturns       Intent = "RETURNS"
	IntentProductInfo   Intent = "PRODUCT_INFO"
	IntentFAQ           Intent = "FAQ"
	IntentBilling       Intent = "BILLING"
	IntentTechnical     Intent = "TECHNICAL"
	IntentGeneral       Intent = "GENERAL"
)

// Intents lists every valid label.
var Intents = []Intent{
	IntentOrderTracking,
	IntentReturns,
	IntentProductInfo,
	IntentFAQ,
	IntentBilling,
	IntentTechnical,
	IntentGeneral,
}

// Valid reports whether i belongs to the closed enumeration.
func (i Intent) Valid() bool {
	for _, known := range Intents {
		if i == known {
			return true
		}
	}
	return false
}

// ParseIntent maps raw service output onto the enumeration. Unknown labels become GENERAL.
func ParseIntent(raw string) (Intent, bool) {
	i := Intent(normalizeLabel(raw))
	if i.Valid() {
		return i, true
	}
	return IntentGeneral, false
}

func normalizeLabel(raw string) string {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= 'a' && c <= 'z':
			out = append(out, c-'a'+'A')
		case c == ' ' || c == '-':
			out = append(out, '_')
		case c == '"' || c == '\'' || c == '\t' || c == '\n' || c == '\r':
		default:
			out = append(out, c)
		}
	}
	return string(out)
}
