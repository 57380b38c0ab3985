package llmprovider

import "time"

const (
	ProviderGenAI     = "genai"
	ProviderAnthropic = "anthropic"
	ProviderDeepSeek  = "deepseek"
	ProviderQwen      = "qwen"

	// ProviderGemini is accepted in config as an alias of ProviderGenAI.
	ProviderGemini = "gemini"
)

const jsonMIMEType = "application/json"

const (
	defaultRetryDelay      = time.Second
	defaultMaxTotalTimeout = 30 * time.Second
)
