// Package llm provides a vendor-neutral interface to large language
// model providers for tutoring content generation.
package llm

import "context"

// Request describes a single free-text completion request. The bot
// sends one self-contained prompt per call; there is no multi-turn
// conversation state on the provider side.
type Request struct {
	// System sets the assistant persona and output conventions.
	System string

	// Prompt is the user-level instruction, e.g. a topic to explain
	// or a freeform question from a student.
	Prompt string

	// MaxTokens caps the response length. Zero means provider default.
	MaxTokens int

	// Temperature controls sampling randomness, in [0, 1].
	Temperature float64
}

// Usage reports token consumption for a single call.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Response is the provider's answer to a Request.
type Response struct {
	// Text is the raw completion text. Callers parse it downstream;
	// the provider layer makes no guarantees about its shape.
	Text string

	Usage      Usage
	Model      string
	StopReason string
}

// Provider is implemented by each vendor adapter.
type Provider interface {
	// Complete performs a single completion call. The returned error
	// is one of the typed errors in this package where the failure
	// class is known (rate limit, unavailable, truncation), otherwise
	// a wrapped vendor error.
	Complete(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the resolved model identifier in use.
	ModelID() string
}

// resolveModel maps a friendly model name to a provider model ID.
// Unknown names pass through unchanged so direct model IDs work.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
