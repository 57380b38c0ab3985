package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "environment:\n  name: test\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Environment.Name != "test" {
		t.Errorf("expected environment test, got %s", cfg.Environment.Name)
	}
	if cfg.Classifier.Mode != ClassifierModeRules {
		t.Errorf("expected rules mode by default, got %s", cfg.Classifier.Mode)
	}
	if cfg.Pipeline.StageTimeout != 30*time.Second {
		t.Errorf("expected 30s stage timeout, got %s", cfg.Pipeline.StageTimeout)
	}
	if cfg.Escalation.Timeout != 3*time.Minute {
		t.Errorf("expected 3m escalation timeout, got %s", cfg.Escalation.Timeout)
	}
	if cfg.Session.TTL != 30*time.Minute {
		t.Errorf("expected 30m session ttl, got %s", cfg.Session.TTL)
	}
	if cfg.Knowledge.TopK != 3 {
		t.Errorf("expected top_k 3, got %d", cfg.Knowledge.TopK)
	}
}

func TestLoadFile_Providers(t *testing.T) {
	t.Setenv("TEST_GEMINI_KEY", "secret")
	body := `
classifier:
  mode: llm
llm:
  providers:
    - name: gemini
      enabled: true
      priority: 1
      api_key: "${TEST_GEMINI_KEY}"
      model: gemini-2.5-flash
`
	cfg, err := LoadFile(writeConfig(t, body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.LLM.Providers) != 1 {
		t.Fatalf("expected 1 provider, got %d", len(cfg.LLM.Providers))
	}
	if cfg.LLM.Providers[0].APIKey != "secret" {
		t.Errorf("expected expanded api key, got %q", cfg.LLM.Providers[0].APIKey)
	}
	if !cfg.LLM.HasEnabledProvider() {
		t.Error("expected an enabled provider")
	}
}

func TestLoadFile_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "llm mode without providers", body: "classifier:\n  mode: llm\n"},
		{name: "unknown classifier mode", body: "classifier:\n  mode: magic\n"},
		{name: "escalation timeout too short", body: "escalation:\n  timeout: 10s\n"},
		{name: "escalation timeout too long", body: "escalation:\n  timeout: 10m\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFile(writeConfig(t, tt.body)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
