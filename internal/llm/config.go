package llm

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Provider names accepted by NewProvider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config holds provider selection and connection settings.
type Config struct {
	// Provider selects the vendor adapter: one of the Provider*
	// constants above.
	Provider string

	// APIKey authenticates against the selected vendor.
	APIKey string

	// Model overrides the vendor's default model when non-empty.
	Model string

	// BaseURL overrides the API endpoint for OpenAI-compatible
	// providers. Ignored by others.
	BaseURL string

	// Retry controls backoff for transient failures.
	Retry RetryConfig

	// Timeout bounds each individual completion call.
	Timeout time.Duration
}

// RetryConfig controls the retry decorator.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetryConfig returns sensible retry defaults.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 500 * time.Millisecond,
		MaxWait:     10 * time.Second,
		Multiplier:  2.0,
	}
}

// DefaultConfig returns settings suitable for interactive tutoring:
// modest retries and a timeout long enough for full lesson generation.
func DefaultConfig() Config {
	return Config{
		Provider: ProviderAnthropic,
		Retry:    DefaultRetryConfig(),
		Timeout:  90 * time.Second,
	}
}

// ConfigFromEnv builds a Config from TUTORBOT_LLM_* environment
// variables, falling back to the vendor's conventional key variable
// when TUTORBOT_LLM_API_KEY is unset.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("TUTORBOT_LLM_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("TUTORBOT_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("TUTORBOT_LLM_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("TUTORBOT_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			cfg.Retry.MaxAttempts = n
		}
	}
	if v := os.Getenv("TUTORBOT_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	cfg.APIKey = os.Getenv("TUTORBOT_LLM_API_KEY")
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv(vendorKeyVar(cfg.Provider))
	}
	return cfg
}

// DiscoverConfig returns ConfigFromEnv if it explicitly names a
// provider, otherwise probes the conventional vendor key variables
// and picks the first one that is set.
func DiscoverConfig() Config {
	if os.Getenv("TUTORBOT_LLM_PROVIDER") != "" {
		return ConfigFromEnv()
	}

	cfg := DefaultConfig()
	for _, name := range []string{ProviderAnthropic, ProviderOpenAI, ProviderGemini, ProviderOpenRouter} {
		if key := os.Getenv(vendorKeyVar(name)); key != "" {
			cfg.Provider = name
			cfg.APIKey = key
			break
		}
	}
	return cfg
}

func vendorKeyVar(provider string) string {
	switch provider {
	case ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderGemini:
		return "GEMINI_API_KEY"
	case ProviderOpenRouter:
		return "OPENROUTER_API_KEY"
	}
	return ""
}

// Validate reports configuration problems before any network call.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderAnthropic, ProviderOpenAI, ProviderGemini, ProviderOpenRouter:
		if c.APIKey == "" {
			return fmt.Errorf("llm: %s provider requires an API key", c.Provider)
		}
	case ProviderMock:
	case "":
		return fmt.Errorf("llm: provider not set")
	default:
		return fmt.Errorf("llm: unknown provider %q", c.Provider)
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("llm: retry attempts must be at least 1, got %d", c.Retry.MaxAttempts)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("llm: timeout must be positive, got %v", c.Timeout)
	}
	return nil
}
