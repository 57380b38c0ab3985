package openaicompat

import "time"

// Base URLs of OpenAI-compatible chat completion services.
const (
	DeepSeekBaseURL = "https://api.deepseek.com/v1"
	QwenBaseURL     = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
)

const (
	defaultTimeout  = 60 * time.Second
	completionsPath = "/chat/completions"

	responseFormatJSON = "json_object"
)
