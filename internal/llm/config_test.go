package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.NotEmpty(t, cfg.GetModel(TierLite))
	assert.NotEmpty(t, cfg.GetModel(TierStandard))
	assert.NotEmpty(t, cfg.GetModel(TierAdvanced))
}

func TestGetModel_FallbackChain(t *testing.T) {
	cfg := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{TierLite: "lite-model"},
	}
	// Advanced not configured: falls through standard to lite.
	assert.Equal(t, "lite-model", cfg.GetModel(TierAdvanced))

	empty := &Config{Provider: ProviderGemini}
	assert.Equal(t, "", empty.GetModel(TierAdvanced))
}

func TestEstimateCost(t *testing.T) {
	// 1M prompt tokens at flash pricing.
	cost := EstimateCost("gemini-2.5-flash", 1_000_000, 0)
	assert.InDelta(t, 0.30, cost, 1e-9)

	cost = EstimateCost("gemini-2.5-flash", 0, 1_000_000)
	assert.InDelta(t, 2.50, cost, 1e-9)

	assert.Zero(t, EstimateCost("unknown-model", 1000, 1000))
}

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"json code block", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"generic code block", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"language identifier", "```javascript\n{\"a\": 1}\n```", `{"a": 1}`},
		{"plain JSON", `{"a": 1}`, `{"a": 1}`},
		{"surrounding whitespace", "  {\"a\": 1}  ", `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}
