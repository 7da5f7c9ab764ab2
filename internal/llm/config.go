package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "anthropic", "openai", "gemini", "openrouter", "mock".
	// Empty means auto-select: ResolveConfig picks the first provider
	// holding an API key.
	Provider string `mapstructure:"provider"`

	Anthropic  AnthropicConfig  `mapstructure:"anthropic"`
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
	Gemini     GeminiConfig     `mapstructure:"gemini"`
	OpenRouter OpenRouterConfig `mapstructure:"openrouter"`
	Retry      RetryConfig      `mapstructure:"retry"`

	// Timeout is the maximum duration for a single LLM request
	// (including retries). Default: 30s.
	Timeout time.Duration `mapstructure:"timeout"`
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string `mapstructure:"api-key"`
	Model  string `mapstructure:"model"` // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string `mapstructure:"api-key"`
	Model   string `mapstructure:"model"`    // Default: "gpt-4o-mini"
	BaseURL string `mapstructure:"base-url"` // Optional. Override for compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string `mapstructure:"api-key"`
	Model  string `mapstructure:"model"` // Default: "gemini-flash"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string `mapstructure:"api-key"`
	Model   string `mapstructure:"model"`    // Default: "meta-llama/llama-3-70b-instruct"
	BaseURL string `mapstructure:"base-url"` // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max-attempts"`
	InitialWait time.Duration `mapstructure:"initial-wait"`
	MaxWait     time.Duration `mapstructure:"max-wait"`
	Multiplier  float64       `mapstructure:"multiplier"`
}

// DefaultConfig returns a Config with sensible defaults. Provider is
// left empty so that ResolveConfig auto-selects from whichever API key
// is configured.
func DefaultConfig() Config {
	return Config{
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model: "meta-llama/llama-3-70b-instruct",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// overlayEnv returns a copy of c with the INTERVU_* environment
// variables applied on top. Unset variables leave fields unchanged.
func (c Config) overlayEnv() Config {
	cfg := c

	if p := os.Getenv("INTERVU_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	if k := os.Getenv("INTERVU_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("INTERVU_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := os.Getenv("INTERVU_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("INTERVU_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("INTERVU_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("INTERVU_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("INTERVU_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	if k := os.Getenv("INTERVU_OPENROUTER_API_KEY"); k != "" {
		cfg.OpenRouter.APIKey = k
	}
	if m := os.Getenv("INTERVU_OPENROUTER_MODEL"); m != "" {
		cfg.OpenRouter.Model = m
	}

	return cfg
}

// ResolveConfig settles the effective configuration. INTERVU_*
// environment variables overlay base (defaults plus any config-file
// values). A provider named explicitly, by INTERVU_LLM_PROVIDER or in
// base, must carry its API key. Otherwise the first provider with a
// configured key is selected, in Gemini, OpenAI, Anthropic, OpenRouter
// order, probing the bare *_API_KEY env var names last.
func ResolveConfig(base Config) (Config, error) {
	cfg := base.overlayEnv()

	if cfg.Provider != "" {
		if err := cfg.Validate(); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}

	if picked, ok := cfg.autoSelect(); ok {
		return picked, nil
	}

	return Config{}, fmt.Errorf("no LLM provider configured " +
		"(set INTERVU_<PROVIDER>_API_KEY, a bare *_API_KEY, or an llm section in the config file)")
}

// autoSelect picks the first provider with a key already configured,
// then falls back to the bare API key env var names.
func (c Config) autoSelect() (Config, bool) {
	cfg := c

	switch {
	case cfg.Gemini.APIKey != "":
		cfg.Provider = "gemini"
	case cfg.OpenAI.APIKey != "":
		cfg.Provider = "openai"
	case cfg.Anthropic.APIKey != "":
		cfg.Provider = "anthropic"
	case cfg.OpenRouter.APIKey != "":
		cfg.Provider = "openrouter"
	}
	if cfg.Provider != "" {
		return cfg, true
	}

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return cfg, false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("INTERVU_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("INTERVU_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("INTERVU_GEMINI_API_KEY is required for the gemini provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("INTERVU_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
