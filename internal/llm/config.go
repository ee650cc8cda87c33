// Package llm provides centralized LLM configuration and client abstractions.
// This package enables easy switching between model tiers and future multi-provider support.
package llm

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: short outreach messages, subject lines
	TierLite ModelTier = "lite"
	// TierStandard is for moderate tasks: emails, structured rewriting
	TierStandard ModelTier = "standard"
	// TierAdvanced is for the substantive artifacts: resume, cover letter
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return "" // No model configured
}

// modelPricing is USD per 1M tokens (prompt, output), used only for the
// cost column in the usage tracker. Approximate by design.
var modelPricing = map[string][2]float64{
	"gemini-2.5-flash-lite": {0.10, 0.40},
	"gemini-2.5-flash":      {0.30, 2.50},
	"gemini-2.5-pro":        {1.25, 10.00},
}

// EstimateCost converts a token count pair into an approximate USD cost for
// the given model. Unknown models cost zero.
func EstimateCost(model string, promptTokens, outputTokens int32) float64 {
	pricing, ok := modelPricing[model]
	if !ok {
		return 0
	}
	const perMillion = 1_000_000
	return float64(promptTokens)/perMillion*pricing[0] +
		float64(outputTokens)/perMillion*pricing[1]
}
