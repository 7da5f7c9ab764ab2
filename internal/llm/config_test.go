package llm

import (
	"strings"
	"testing"
)

// clearProviderEnv blanks every API key variable so the surrounding
// environment cannot leak into resolution tests.
func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"INTERVU_LLM_PROVIDER",
		"INTERVU_ANTHROPIC_API_KEY", "INTERVU_ANTHROPIC_MODEL",
		"INTERVU_OPENAI_API_KEY", "INTERVU_OPENAI_MODEL", "INTERVU_OPENAI_BASE_URL",
		"INTERVU_GEMINI_API_KEY", "INTERVU_GEMINI_MODEL",
		"INTERVU_OPENROUTER_API_KEY", "INTERVU_OPENROUTER_MODEL",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(name, "")
	}
}

func TestResolveConfigExplicitProvider(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("INTERVU_LLM_PROVIDER", "openrouter")
	t.Setenv("INTERVU_OPENROUTER_API_KEY", "or-key")

	cfg, err := ResolveConfig(DefaultConfig())
	if err != nil {
		t.Fatalf("ResolveConfig: %v", err)
	}
	if cfg.Provider != "openrouter" {
		t.Errorf("provider = %q, want openrouter", cfg.Provider)
	}
	if cfg.OpenRouter.APIKey != "or-key" {
		t.Errorf("API key = %q, want or-key", cfg.OpenRouter.APIKey)
	}
}

func TestResolveConfigAutoSelectsKeyedProvider(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("INTERVU_OPENROUTER_API_KEY", "or-key")

	cfg, err := ResolveConfig(DefaultConfig())
	if err != nil {
		t.Fatalf("ResolveConfig: %v", err)
	}
	if cfg.Provider != "openrouter" {
		t.Errorf("provider = %q, want openrouter", cfg.Provider)
	}
}

func TestResolveConfigBareKeyFallback(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPENAI_API_KEY", "bare-key")

	cfg, err := ResolveConfig(DefaultConfig())
	if err != nil {
		t.Fatalf("ResolveConfig: %v", err)
	}
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "bare-key" {
		t.Errorf("API key = %q, want bare-key", cfg.OpenAI.APIKey)
	}
}

func TestResolveConfigEnvModelOverride(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("INTERVU_OPENAI_API_KEY", "oa-key")
	t.Setenv("INTERVU_OPENAI_MODEL", "gpt-4.1-mini")

	cfg, err := ResolveConfig(DefaultConfig())
	if err != nil {
		t.Fatalf("ResolveConfig: %v", err)
	}
	if cfg.OpenAI.Model != "gpt-4.1-mini" {
		t.Errorf("model = %q, want gpt-4.1-mini", cfg.OpenAI.Model)
	}
}

func TestResolveConfigEnvOverridesBase(t *testing.T) {
	clearProviderEnv(t)
	base := DefaultConfig()
	base.Provider = "openai"
	base.OpenAI.APIKey = "file-key"
	t.Setenv("INTERVU_OPENAI_API_KEY", "env-key")

	cfg, err := ResolveConfig(base)
	if err != nil {
		t.Fatalf("ResolveConfig: %v", err)
	}
	if cfg.OpenAI.APIKey != "env-key" {
		t.Errorf("API key = %q, want env-key", cfg.OpenAI.APIKey)
	}
}

func TestResolveConfigExplicitProviderMissingKey(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("INTERVU_LLM_PROVIDER", "gemini")

	_, err := ResolveConfig(DefaultConfig())
	if err == nil {
		t.Fatal("expected error for provider without key")
	}
	// The error names the variable the user must set.
	if !strings.Contains(err.Error(), "INTERVU_GEMINI_API_KEY") {
		t.Errorf("error = %q, want mention of INTERVU_GEMINI_API_KEY", err)
	}
}

func TestResolveConfigNothingConfigured(t *testing.T) {
	clearProviderEnv(t)

	if _, err := ResolveConfig(DefaultConfig()); err == nil {
		t.Fatal("expected error when no key is configured")
	}
}
