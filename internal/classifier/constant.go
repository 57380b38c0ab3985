package classifier

// Log prefixes
const (
	LogPrefixClassify = "internal.classifier.Classify"
)

// Confidence reported by the rule table.
const (
	ConfidenceMatch   = 0.9
	ConfidenceGeneral = 0.5
)

// LLM classifier configuration
const (
	LLMTemperature = 0.1
	LLMMaxTokens   = 256

	PromptClassifySystem = `You label customer-support messages for an online store.

Allowed intents:
- ORDER_TRACKING: where is my order, shipping status, delivery dates
- RETURNS: refunds, returns, exchanges
- PRODUCT_INFO: product features, price, stock, compatibility
- FAQ: store policies, opening hours, how-to questions
- BILLING: charges, invoices, payments
- TECHNICAL: devices, apps, connectivity or login problems
- GENERAL: anything else

Answer with JSON only:
{"intent": "<one allowed intent>", "confidence": 0-100, "reasoning": "<short reason>"}`

	PromptClassifyUser = "Message: %q"
)

// Explanations attached to LLM fallbacks
const (
	ExplainLLMFailed      = "classification service failed, used rule table"
	ExplainEmptyResponse  = "empty classification response, used rule table"
	ExplainUnparseable    = "unparseable classification response, used rule table"
	ExplainRemappedFormat = "service returned unknown label %q, remapped to GENERAL"
)
