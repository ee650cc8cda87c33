package validation

import (
	"testing"

	"github.com/arjunmehta/aply/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func precheckProfile() *types.Profile {
	return &types.Profile{
		Name: "Test User",
		Employment: []types.Employment{
			{Company: "Finleap Connect", Title: "Engineer", Domain: "fintech"},
			{Company: "Shop Co", Title: "Engineer", Domain: "e-commerce"},
		},
		Skills: []string{"Go", "Kubernetes"},
		Facts: types.FactSheet{
			RealCompanies:  []string{"Finleap Connect", "Shop Co"},
			AvoidedDomains: []string{"energy_trading", "gambling"},
		},
	}
}

func TestPrecheck_Proceed(t *testing.T) {
	p := precheckProfile()
	analysis := &types.JobAnalysis{
		Domains:    []string{"fintech"},
		FocusAreas: []string{"backend"},
	}

	result := Precheck(p, analysis)

	assert.Equal(t, types.DecisionProceed, result.Decision)
	assert.Equal(t, []string{"fintech"}, result.MatchedDomains)
	assert.Contains(t, result.FocusOverlap, "backend")
	assert.Empty(t, result.Violations)
}

func TestPrecheck_AbortOnAvoidedDomain(t *testing.T) {
	p := precheckProfile()
	// Pure energy-trading role with no technical focus the profile supports.
	analysis := &types.JobAnalysis{
		Domains:    []string{"energy_trading"},
		FocusAreas: []string{"ai_ml"},
	}

	result := Precheck(p, analysis)

	assert.Equal(t, types.DecisionAbort, result.Decision)
	require.NotEmpty(t, result.Violations)
	assert.Equal(t, "domain_mismatch", result.Violations[0].Type)
	assert.Equal(t, "error", result.Violations[0].Severity)
	assert.NotEmpty(t, result.Recommendations)
}

func TestPrecheck_WarningsOnPartialOverlap(t *testing.T) {
	p := precheckProfile()
	// Avoided domain but the backend focus is supported.
	analysis := &types.JobAnalysis{
		Domains:    []string{"energy_trading"},
		FocusAreas: []string{"backend"},
	}

	result := Precheck(p, analysis)

	assert.Equal(t, types.DecisionProceedWithWarnings, result.Decision)
	require.NotEmpty(t, result.Violations)
	assert.Equal(t, "warning", result.Violations[0].Severity)
}

func TestPrecheck_ExperienceGapWarning(t *testing.T) {
	p := precheckProfile()
	analysis := &types.JobAnalysis{
		FocusAreas: []string{"mobile"},
	}

	result := Precheck(p, analysis)

	assert.Equal(t, types.DecisionProceedWithWarnings, result.Decision)
	require.Len(t, result.Violations, 1)
	assert.Equal(t, "experience_gap", result.Violations[0].Type)
}

func TestPrecheck_NoSignalsProceeds(t *testing.T) {
	p := precheckProfile()
	result := Precheck(p, &types.JobAnalysis{})
	assert.Equal(t, types.DecisionProceed, result.Decision)
}

func TestNormalizeDomain(t *testing.T) {
	assert.Equal(t, "energy_trading", normalizeDomain("Energy Trading"))
	assert.Equal(t, "energy_trading", normalizeDomain("energy-trading"))
	assert.Equal(t, "e_commerce", normalizeDomain("e-commerce"))
}
