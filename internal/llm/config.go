// Package llm wraps the generative AI provider behind a small client
// interface with tiered model selection.
package llm

// ModelTier names a capability level rather than a concrete model, so
// callers ask for "advanced" and the config decides what that means.
type ModelTier string

const (
	// TierLite is for simple tasks: classification, short rewrites
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: structured output, summarization
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex reasoning: resume extraction, email drafting
	TierAdvanced ModelTier = "advanced"
)

// Provider identifies an LLM vendor.
type Provider string

const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider (future)
	ProviderOpenAI Provider = "openai"
	// ProviderAnthropic is the Anthropic/Claude provider (future)
	ProviderAnthropic Provider = "anthropic"
)

// Config maps tiers to provider model names.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default configuration (currently Gemini).
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration.
// Resume extraction and email drafting both run on the advanced tier;
// the lighter tiers exist so callers can trade quality for quota.
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-1.5-flash-8b",
			TierStandard: "gemini-1.5-flash",
			TierAdvanced: "gemini-1.5-pro",
		},
	}
}

// GetModel resolves a tier to a model name, degrading through standard and
// lite when the requested tier is unconfigured. Empty means no model at all.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of the config with one tier remapped. The
// receiver is never mutated; shared default configs stay shared.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	clone := &Config{
		Provider: c.Provider,
		Models:   make(map[ModelTier]string, len(c.Models)+1),
	}
	for k, v := range c.Models {
		clone.Models[k] = v
	}
	clone.Models[tier] = model
	return clone
}
