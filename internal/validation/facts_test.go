package validation

import (
	"testing"

	"github.com/arjunmehta/aply/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func factTestProfile() *types.Profile {
	return &types.Profile{
		Name: "Test User",
		Employment: []types.Employment{
			{
				Company: "Finleap Connect",
				Title:   "Engineer",
				Achievements: []types.Achievement{
					{Text: "Handled 2M requests/day", Metrics: []string{"2M requests/day"}},
				},
			},
		},
		Facts: types.FactSheet{
			RealCompanies:       []string{"Finleap Connect", "Infosys"},
			FabricatedCompanies: []string{"TechCorp", "DataDyne"},
			RealMetrics:         []string{"35%"},
		},
	}
}

func TestCheckFacts_FabricatedCompanyFlagged(t *testing.T) {
	p := factTestProfile()
	text := "At Finleap Connect and later at TechCorp I built systems."

	violations := CheckFacts("resume", text, p)

	var found bool
	for _, v := range violations {
		if v.Type == "fabricated_company" {
			found = true
			assert.Equal(t, "error", v.Severity)
			assert.Contains(t, v.Details, "TechCorp")
		}
	}
	assert.True(t, found, "expected fabricated_company violation")
}

func TestCheckFacts_CaseInsensitiveDenylist(t *testing.T) {
	p := factTestProfile()
	violations := CheckFacts("resume", "Previously at DATADYNE and Finleap Connect.", p)

	require.NotEmpty(t, violations)
	assert.Equal(t, "fabricated_company", violations[0].Type)
}

func TestCheckFabricated_NoRealCompanyRequirement(t *testing.T) {
	p := factTestProfile()

	// Denylist hit is flagged even in text with no employer mention at all.
	violations := CheckFabricated("linkedin_followup", "Following up on my DataDyne experience.", p)
	require.Len(t, violations, 1)
	assert.Equal(t, "fabricated_company", violations[0].Type)
	assert.Equal(t, "linkedin_followup", violations[0].Artifact)

	// Clean text produces nothing: the allowlist rule is CheckFacts' job.
	assert.Empty(t, CheckFabricated("email", "Hi, I applied for the backend role.", p))
}

func TestCheckFacts_RequiresRealCompany(t *testing.T) {
	p := factTestProfile()
	violations := CheckFacts("cover_letter", "I am an engineer with many skills.", p)

	var found bool
	for _, v := range violations {
		if v.Type == "missing_real_company" {
			found = true
			assert.Equal(t, "error", v.Severity)
		}
	}
	assert.True(t, found, "expected missing_real_company violation")
}

func TestCheckFacts_CleanContentPasses(t *testing.T) {
	p := factTestProfile()
	text := "At Finleap Connect I scaled APIs to 2M requests/day and improved latency by 35%."

	violations := CheckFacts("resume", text, p)
	assert.Empty(t, violations)
}

func TestCheckFacts_UnverifiedMetricWarns(t *testing.T) {
	p := factTestProfile()
	text := "At Finleap Connect I improved revenue by 87% and saved $4M."

	violations := CheckFacts("resume", text, p)

	var metricViolations []types.Violation
	for _, v := range violations {
		if v.Type == "unverified_metric" {
			metricViolations = append(metricViolations, v)
		}
	}
	require.Len(t, metricViolations, 2)
	for _, v := range metricViolations {
		assert.Equal(t, "warning", v.Severity)
	}
}

func TestMetricKnown_Containment(t *testing.T) {
	known := []string{"2M requests/day", "35%"}

	assert.True(t, metricKnown("2M", known))
	assert.True(t, metricKnown("35%", known))
	assert.True(t, metricKnown("35 %", known))
	assert.False(t, metricKnown("87%", known))
}
