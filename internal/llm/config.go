package llm

import (
	"fmt"
	"os"
)

// Config holds LLM provider configuration.
type Config struct {
	// Provider selects the provider: "anthropic", "openai", "gemini",
	// "openrouter" or "mock".
	Provider string `yaml:"provider"`

	Anthropic  AnthropicConfig  `yaml:"anthropic"`
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	OpenRouter OpenRouterConfig `yaml:"openrouter"`

	// MaxTokens caps each classification answer.
	MaxTokens int `yaml:"max_tokens"`
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"` // Optional, for OpenAI-compatible APIs
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		MaxTokens:  64,
	}
}

// ApplyEnv overrides fields from GRADECAST_* environment variables.
func (c *Config) ApplyEnv() {
	setFromEnv(&c.Provider, "GRADECAST_LLM_PROVIDER")

	setFromEnv(&c.Anthropic.APIKey, "GRADECAST_ANTHROPIC_API_KEY")
	setFromEnv(&c.Anthropic.Model, "GRADECAST_ANTHROPIC_MODEL")

	setFromEnv(&c.OpenAI.APIKey, "GRADECAST_OPENAI_API_KEY")
	setFromEnv(&c.OpenAI.Model, "GRADECAST_OPENAI_MODEL")
	setFromEnv(&c.OpenAI.BaseURL, "GRADECAST_OPENAI_BASE_URL")

	setFromEnv(&c.Gemini.APIKey, "GRADECAST_GEMINI_API_KEY")
	setFromEnv(&c.Gemini.Model, "GRADECAST_GEMINI_MODEL")

	setFromEnv(&c.OpenRouter.APIKey, "GRADECAST_OPENROUTER_API_KEY")
	setFromEnv(&c.OpenRouter.Model, "GRADECAST_OPENROUTER_MODEL")
}

// Discover fills in the first API key found in the vendors' standard
// environment variables when no key is configured for the selected provider.
// It reports whether a usable key is now present.
func (c *Config) Discover() bool {
	if c.Validate() == nil {
		return true
	}

	probes := []struct {
		env      string
		provider string
		key      *string
	}{
		{"ANTHROPIC_API_KEY", "anthropic", &c.Anthropic.APIKey},
		{"OPENAI_API_KEY", "openai", &c.OpenAI.APIKey},
		{"GEMINI_API_KEY", "gemini", &c.Gemini.APIKey},
		{"OPENROUTER_API_KEY", "openrouter", &c.OpenRouter.APIKey},
	}
	for _, p := range probes {
		if k := os.Getenv(p.env); k != "" {
			c.Provider = p.provider
			*p.key = k
			return true
		}
	}
	return false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("GRADECAST_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("GRADECAST_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GRADECAST_GEMINI_API_KEY is required for the gemini provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("GRADECAST_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
