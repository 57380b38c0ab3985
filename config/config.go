package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Support pipeline
	Classifier ClassifierConfig
	Knowledge  KnowledgeConfig
	OrderStore OrderStoreConfig
	Pipeline   PipelineConfig
	Escalation EscalationConfig
	Session    SessionConfig

	// External services
	Telegram TelegramConfig
	Voyage   VoyageConfig
	GenAI    GenAIConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port           int
	Mode           string
	AllowedOrigins []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ClassifierConfig selects how the intent stage classifies text: "rules" or "llm".
type ClassifierConfig struct {
	Mode string
}

type KnowledgeConfig struct {
	Strategy   string // keyword, tfidf, embedding
	CorpusPath string // empty means the embedded default corpus
	TopK       int
	Embedder   string // voyage, genai
	CacheSize  int
}

type OrderStoreConfig struct {
	DSN  string
	Seed bool
}

type PipelineConfig struct {
	StageTimeout time.Duration
}

type EscalationConfig struct {
	Timeout time.Duration
}

type SessionConfig struct {
	TTL             time.Duration
	MaxSessions     int
	RateLimitPerMin int
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

type VoyageConfig struct {
	APIKey string
	Model  string
}

type GenAIConfig struct {
	APIKey         string
	EmbeddingModel string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // Global timeout for entire fallback chain
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// HasEnabledProvider reports whether at least one LLM provider is switched on.
func (c LLMConfig) HasEnabledProvider() bool {
	for _, p := range c.Providers {
		if p.Enabled {
			return true
		}
	}
	return false
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

// LoadFile loads configuration from an explicit path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.AllowedOrigins = v.GetStringSlice("http_server.allowed_origins")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Support pipeline
	cfg.Classifier.Mode = v.GetString("classifier.mode")
	cfg.Knowledge.Strategy = v.GetString("knowledge.strategy")
	cfg.Knowledge.CorpusPath = v.GetString("knowledge.corpus_path")
	cfg.Knowledge.TopK = v.GetInt("knowledge.top_k")
	cfg.Knowledge.Embedder = v.GetString("knowledge.embedder")
	cfg.Knowledge.CacheSize = v.GetInt("knowledge.cache_size")
	cfg.OrderStore.DSN = v.GetString("order_store.dsn")
	cfg.OrderStore.Seed = v.GetBool("order_store.seed")
	cfg.Pipeline.StageTimeout = v.GetDuration("pipeline.stage_timeout")
	cfg.Escalation.Timeout = v.GetDuration("escalation.timeout")
	cfg.Session.TTL = v.GetDuration("session.ttl")
	cfg.Session.MaxSessions = v.GetInt("session.max_sessions")
	cfg.Session.RateLimitPerMin = v.GetInt("session.rate_limit_per_min")

	// External services
	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	if tgToken := v.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	cfg.Voyage.APIKey = v.GetString("voyage.api_key")
	cfg.Voyage.Model = v.GetString("voyage.model")
	if voyageKey := v.GetString("voyage_api_key"); voyageKey != "" {
		cfg.Voyage.APIKey = voyageKey
	}

	cfg.GenAI.APIKey = expandEnvVar(v, v.GetString("genai.api_key"))
	cfg.GenAI.EmbeddingModel = v.GetString("genai.embedding_model")
	if genaiKey := v.GetString("gemini_api_key"); genaiKey != "" && cfg.GenAI.APIKey == "" {
		cfg.GenAI.APIKey = genaiKey
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")

	if v.IsSet("llm.providers") {
		providersRaw := v.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// An LLM-backed classifier needs at least one provider; rules mode needs none.
	if cfg.Classifier.Mode == ClassifierModeLLM {
		if err := validateLLMConfig(&cfg.LLM); err != nil {
			return nil, fmt.Errorf("classifier.mode=llm: %w", err)
		}
	}

	if err := validateSupportConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

const (
	ClassifierModeRules = "rules"
	ClassifierModeLLM   = "llm"

	minEscalationTimeout = 2 * time.Minute
	maxEscalationTimeout = 5 * time.Minute
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("classifier.mode", ClassifierModeRules)
	v.SetDefault("knowledge.strategy", "tfidf")
	v.SetDefault("knowledge.top_k", 3)
	v.SetDefault("knowledge.embedder", "voyage")
	v.SetDefault("knowledge.cache_size", 512)
	v.SetDefault("order_store.dsn", "file:data/ecommerce.db?_pragma=busy_timeout(5000)")
	v.SetDefault("order_store.seed", true)
	v.SetDefault("pipeline.stage_timeout", "30s")
	v.SetDefault("escalation.timeout", "3m")
	v.SetDefault("session.ttl", "30m")
	v.SetDefault("session.max_sessions", 10000)
	v.SetDefault("session.rate_limit_per_min", 30)
	v.SetDefault("voyage.model", "voyage-3")
	v.SetDefault("genai.embedding_model", "text-embedding-004")

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 3)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s") // Default: 60 seconds for entire fallback chain
}

func validateSupportConfig(cfg *Config) error {
	switch cfg.Classifier.Mode {
	case ClassifierModeRules, ClassifierModeLLM:
	default:
		return fmt.Errorf("classifier.mode must be %q or %q, got %q", ClassifierModeRules, ClassifierModeLLM, cfg.Classifier.Mode)
	}
	if cfg.Pipeline.StageTimeout <= 0 {
		return fmt.Errorf("pipeline.stage_timeout must be positive")
	}
	if cfg.Escalation.Timeout < minEscalationTimeout || cfg.Escalation.Timeout > maxEscalationTimeout {
		return fmt.Errorf("escalation.timeout must be between %s and %s, got %s",
			minEscalationTimeout, maxEscalationTimeout, cfg.Escalation.Timeout)
	}
	if cfg.Knowledge.TopK <= 0 {
		return fmt.Errorf("knowledge.top_k must be positive")
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := v.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
